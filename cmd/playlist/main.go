package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hazadus/go-playlist/internal/config"
	"github.com/hazadus/go-playlist/internal/logging"
	"github.com/hazadus/go-playlist/internal/player"
	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/track"
	"github.com/hazadus/go-playlist/internal/youtube"
)

// Application содержит зависимости приложения
type Application struct {
	Config  *config.Config
	Manager *track.Manager
	Player  *player.Simulator
	Logger  *logrus.Logger

	Resolver *youtube.Resolver // Создается при первом обращении, если не задан
	Backup   backupService     // Создается из конфигурации при первом обращении, если не задан

	configPath   string // Значение флага --config
	playlistFile string // Значение флага --file
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := &Application{}
	rootCmd := app.createRootCommand(ctx)

	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// setup загружает конфигурацию, создает логгер, плеер и менеджер треков,
// затем подгружает файл плейлиста по умолчанию
func (app *Application) setup(out io.Writer) error {
	cfg, err := config.LoadConfig(app.configPath)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}
	if app.playlistFile != "" {
		cfg.PlaylistFile = app.playlistFile
	}

	app.Config = cfg
	app.Logger = logging.New(cfg.LogLevel, os.Stderr)
	app.Player = player.NewSimulator(out, time.Duration(cfg.PlayDemoSeconds)*time.Second)
	app.Manager = track.NewManager(playlist.NewCollection(), app.Player, app.Logger, cfg.PlaylistFile)

	// Нечитаемый файл не мешает работе: начинаем с пустого плейлиста
	if _, err := app.Manager.LoadStartup(); err != nil {
		fmt.Fprintf(out, "⚠️  Не удалось загрузить %s: %v\n", cfg.PlaylistFile, err)
	}

	app.Logger.WithFields(logrus.Fields{
		"file":   cfg.PlaylistFile,
		"tracks": app.Manager.Len(),
	}).Debug("Приложение инициализировано")
	return nil
}

// SaveData сохраняет плейлист в файл по умолчанию
func (app *Application) SaveData() error {
	return app.Manager.Save("")
}

// autosave сохраняет плейлист после изменяющей команды, если это разрешено в конфигурации
func (app *Application) autosave(w io.Writer) error {
	if app.Config == nil || !app.Config.Autosave {
		return nil
	}
	if err := app.SaveData(); err != nil {
		return fmt.Errorf("ошибка сохранения данных: %w", err)
	}
	fmt.Fprintf(w, "💾 Сохранено в %s\n", app.Manager.Path())
	return nil
}
