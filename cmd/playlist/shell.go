package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

const shellHelp = `
Команды:
 add        - добавить трек
 list       - показать все треки
 remove N   - удалить трек N (с 1)
 search X   - искать X в названии, исполнителе и альбоме
 shuffle    - перемешать плейлист
 sort title - сортировать по названию
 sort artist- сортировать по исполнителю, затем по названию
 sort dur   - сортировать по длительности
 play N     - воспроизвести трек N (имитация)
 save [f]   - сохранить плейлист в файл (по умолчанию: %[1]s)
 load [f]   - дописать треки из файла (по умолчанию: %[1]s)
 clear      - очистить плейлист
 help       - показать эту справку
 quit       - сохранить и выйти
`

// createShellCommand создает команду shell с привязкой к экземпляру приложения
func (app *Application) createShellCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive shell",
		Long:  `Read commands line by line. The playlist is saved on quit, exit and end of input.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.runShell(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runShell выполняет команды, пока не встретит quit/exit, конец ввода или отмену контекста.
// В любом из этих случаев плейлист сохраняется в файл по умолчанию.
func (app *Application) runShell(ctx context.Context, in io.Reader, out io.Writer) error {
	lines := newLineReader(in)
	defer lines.close()

	fmt.Fprintln(out, "🎶 Менеджер плейлистов")
	fmt.Fprintf(out, "Введите 'help' для списка команд. Загружено треков: %d.\n", app.Manager.Len())

	for {
		fmt.Fprint(out, "\n> ")
		line, err := lines.next(ctx)
		if err != nil {
			if !errors.Is(err, io.EOF) && ctx.Err() == nil {
				app.Logger.WithError(err).Warn("Ошибка чтения команды")
			}
			fmt.Fprintln(out)
			break
		}
		if line == "" {
			continue
		}
		if quit := app.execShellLine(ctx, lines, out, line); quit {
			break
		}
	}

	if err := app.SaveData(); err != nil {
		return fmt.Errorf("ошибка сохранения данных: %w", err)
	}
	fmt.Fprintf(out, "💾 Сохранено в %s. Пока!\n", app.Manager.Path())
	return nil
}

// execShellLine выполняет одну команду; возвращает true, если пора выходить
func (app *Application) execShellLine(ctx context.Context, lines *lineReader, out io.Writer, line string) bool {
	fields := strings.Fields(line)
	command := strings.ToLower(fields[0])
	args := fields[1:]

	var err error
	switch command {
	case "add":
		var input trackFields
		if input, err = promptTrack(ctx, lines, out); err == nil {
			err = app.addTrack(out, input)
		}

	case "list":
		app.listTracks(out)

	case "remove":
		if position, ok := app.shellPosition(out, command, args); ok {
			err = app.removeTrack(out, position)
		}

	case "search":
		// Термин - весь остаток строки, включая пробелы
		term := strings.TrimSpace(line[len(fields[0]):])
		if term == "" {
			fmt.Fprint(out, "Что искать: ")
			term, err = lines.next(ctx)
		}
		if err == nil {
			app.searchTracks(out, term)
		}

	case "shuffle":
		app.shuffleTracks(out)

	case "sort":
		if len(args) == 0 {
			fmt.Fprintln(out, "sort title | artist | dur")
			break
		}
		err = app.sortTracks(out, args[0])

	case "play":
		if position, ok := app.shellPosition(out, command, args); ok {
			err = app.Manager.Play(ctx, position)
		}

	case "save":
		err = app.saveTo(out, optionalArg(args))

	case "load":
		_, err = app.loadFrom(out, optionalArg(args))

	case "clear":
		app.clearTracks(out)

	case "help":
		fmt.Fprintf(out, shellHelp, app.Manager.Path())

	case "quit", "exit":
		return true

	default:
		fmt.Fprintf(out, "❓ Неизвестная команда: %s. Введите 'help' для списка команд.\n", fields[0])
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(out, "❌ Ошибка: %v\n", err)
	}
	return ctx.Err() != nil
}

// shellPosition разбирает позицию из аргументов команды shell и проверяет диапазон
func (app *Application) shellPosition(out io.Writer, command string, args []string) (int, bool) {
	size := app.Manager.Len()
	if len(args) > 0 {
		if position, err := strconv.Atoi(args[0]); err == nil && position >= 1 && position <= size {
			return position, true
		}
	}
	fmt.Fprintf(out, "❌ Неверный номер. Использование: %s N (1..%d)\n", command, size)
	return 0, false
}

// lineReader читает строки в отдельной горутине, чтобы ожидание ввода
// прерывалось отменой контекста
type lineReader struct {
	lines chan string
	stop  chan struct{}
	err   error // Заполняется до закрытия lines
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{
		lines: make(chan string),
		stop:  make(chan struct{}),
	}
	go lr.run(bufio.NewReader(r))
	return lr
}

func (lr *lineReader) run(reader *bufio.Reader) {
	defer close(lr.lines)

	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			select {
			case lr.lines <- strings.TrimSpace(line):
			case <-lr.stop:
				return
			}
		}
		if err != nil {
			lr.err = err
			return
		}
	}
}

// next возвращает следующую строку без пробелов по краям.
// По окончании ввода возвращается io.EOF.
func (lr *lineReader) next(ctx context.Context) (string, error) {
	select {
	case line, ok := <-lr.lines:
		if !ok {
			if lr.err != nil {
				return "", lr.err
			}
			return "", io.EOF
		}
		return line, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// close освобождает горутину чтения
func (lr *lineReader) close() {
	close(lr.stop)
}
