package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// trackFields - название, исполнитель, альбом и длительность в том виде, как их ввел пользователь
type trackFields [4]string

// createAddCommand создает команду add с привязкой к экземпляру приложения
func (app *Application) createAddCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "add [title] [artist] [album] [duration]",
		Short: "Add a track to the playlist",
		Long: `Add a track to the end of the playlist. Empty artist and album become "Unknown",
a non-numeric duration becomes 0. Without arguments the fields are asked interactively.`,
		Args: cobra.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			var fields trackFields
			if len(args) == 0 {
				lines := newLineReader(cmd.InOrStdin())
				defer lines.close()

				var err error
				if fields, err = promptTrack(ctx, lines, w); err != nil {
					return fmt.Errorf("ошибка ввода: %w", err)
				}
			} else {
				copy(fields[:], args)
			}

			if err := app.addTrack(w, fields); err != nil {
				return err
			}
			return app.autosave(w)
		},
	}
}

func (app *Application) addTrack(w io.Writer, fields trackFields) error {
	t, err := app.Manager.Add(fields[0], fields[1], fields[2], fields[3])
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "✅ Добавлен: %s — %s\n", t.Title, t.Artist)
	return nil
}

// promptTrack построчно запрашивает поля нового трека.
// Если ввод закончился после названия, недостающие поля остаются пустыми.
func promptTrack(ctx context.Context, lines *lineReader, w io.Writer) (trackFields, error) {
	prompts := trackFields{"Название: ", "Исполнитель: ", "Альбом: ", "Длительность (сек): "}

	var fields trackFields
	for i, prompt := range prompts {
		fmt.Fprint(w, prompt)
		line, err := lines.next(ctx)
		if errors.Is(err, io.EOF) && i > 0 {
			fmt.Fprintln(w)
			return fields, nil
		}
		if err != nil {
			return fields, err
		}
		fields[i] = line
	}
	return fields, nil
}
