// Package player содержит имитацию воспроизведения треков
package player

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/utils"
)

// DefaultLimit - максимальная длительность имитации по умолчанию
const DefaultLimit = 5 * time.Second

// Simulator имитирует воспроизведение: печатает трек и блокируется на
// min(длительность, limit). Звук не выводится.
type Simulator struct {
	out   io.Writer
	limit time.Duration
	sleep func(ctx context.Context, d time.Duration) error
}

// NewSimulator создает новый имитатор воспроизведения
func NewSimulator(out io.Writer, limit time.Duration) *Simulator {
	if limit < 0 {
		limit = 0
	}
	return &Simulator{
		out:   out,
		limit: limit,
		sleep: sleepContext,
	}
}

// DemoLength возвращает, сколько будет длиться имитация для трека
func (s *Simulator) DemoLength(t playlist.Track) time.Duration {
	if t.Duration <= 0 {
		return 0
	}
	d := time.Duration(t.Duration) * time.Second
	if d > s.limit {
		return s.limit
	}
	return d
}

// Play печатает информацию о треке и блокирует вызывающего на время имитации.
// Отмена контекста прерывает ожидание.
func (s *Simulator) Play(ctx context.Context, t playlist.Track) error {
	demo := s.DemoLength(t)

	fmt.Fprintf(s.out, "🎵 Сейчас играет: %s — %s [%s] (демо %d сек)\n",
		t.Title, t.Artist, utils.FormatTrackDuration(t.Duration), int(demo/time.Second))

	if demo == 0 {
		return nil
	}
	if err := s.sleep(ctx, demo); err != nil {
		fmt.Fprintln(s.out, "⏹️  Воспроизведение прервано")
		return err
	}
	return nil
}

// sleepContext ждет d или отмены контекста
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
