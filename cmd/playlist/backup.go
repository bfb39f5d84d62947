package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-playlist/internal/data"
	"github.com/hazadus/go-playlist/internal/s3"
)

// backupTimeout ограничивает обмен с S3
const backupTimeout = 2 * time.Minute

// backupService выгружает и загружает файл плейлиста; реализуется s3.Backup
type backupService interface {
	Push(ctx context.Context, localPath string) (string, error)
	Pull(ctx context.Context, localPath string) (int64, error)
}

// createPushCommand создает команду push с привязкой к экземпляру приложения
func (app *Application) createPushCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Back up the playlist file to S3",
		Long:  `Save the playlist and upload the file to the configured S3 bucket under <aws_prefix>/<file name>.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pushCtx, cancel := context.WithTimeout(ctx, backupTimeout)
			defer cancel()
			return app.pushPlaylist(pushCtx, cmd.OutOrStdout())
		},
	}
}

// createPullCommand создает команду pull с привязкой к экземпляру приложения
func (app *Application) createPullCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Restore the playlist file from S3",
		Long:  `Download the playlist file from S3, replace the local file and reload the playlist from it.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pullCtx, cancel := context.WithTimeout(ctx, backupTimeout)
			defer cancel()
			return app.pullPlaylist(pullCtx, cmd.OutOrStdout())
		},
	}
}

func (app *Application) pushPlaylist(ctx context.Context, w io.Writer) error {
	backup, err := app.backup()
	if err != nil {
		return err
	}

	if err := app.SaveData(); err != nil {
		return fmt.Errorf("ошибка сохранения данных: %w", err)
	}

	path, err := data.ExpandPath(app.Manager.Path())
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "📤 Выгружаем %s в бакет %s\n", path, app.Config.AwsBucketName)
	url, err := backup.Push(ctx, path)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "✅ Плейлист выгружен: %s\n", url)
	return nil
}

func (app *Application) pullPlaylist(ctx context.Context, w io.Writer) error {
	backup, err := app.backup()
	if err != nil {
		return err
	}

	path, err := data.ExpandPath(app.Manager.Path())
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "📥 Загружаем %s из бакета %s\n", path, app.Config.AwsBucketName)
	size, err := backup.Pull(ctx, path)
	if err != nil {
		return err
	}

	// Локальный файл заменен: перечитываем плейлист целиком
	app.Manager.Clear()
	if _, err := app.Manager.Load(""); err != nil {
		return err
	}

	fmt.Fprintf(w, "✅ Получено %d байт, треков в плейлисте: %d\n", size, app.Manager.Len())
	return nil
}

// backup возвращает клиент резервного копирования, создавая его из конфигурации при первом обращении
func (app *Application) backup() (backupService, error) {
	if app.Backup != nil {
		return app.Backup, nil
	}

	backup, err := s3.NewBackup(&s3.Config{
		Region:     app.Config.AwsRegion,
		AccessKey:  app.Config.AwsAccessKey,
		SecretKey:  app.Config.AwsSecretKey,
		Endpoint:   app.Config.AwsEndpoint,
		BucketName: app.Config.AwsBucketName,
		Prefix:     app.Config.AwsPrefix,
	}, app.Logger)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания S3 клиента: %w", err)
	}

	app.Backup = backup
	return backup, nil
}
