package player

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hazadus/go-playlist/internal/playlist"
)

// newRecordingSimulator создает имитатор, который записывает запрошенные паузы вместо ожидания
func newRecordingSimulator(limit time.Duration) (*Simulator, *bytes.Buffer, *[]time.Duration) {
	var out bytes.Buffer
	var waits []time.Duration
	s := NewSimulator(&out, limit)
	s.sleep = func(_ context.Context, d time.Duration) error {
		waits = append(waits, d)
		return nil
	}
	return s, &out, &waits
}

func TestDemoLength(t *testing.T) {
	s := NewSimulator(&bytes.Buffer{}, DefaultLimit)

	tests := []struct {
		duration int
		expected time.Duration
	}{
		{0, 0},
		{-10, 0},
		{3, 3 * time.Second},
		{5, 5 * time.Second},
		{6, 5 * time.Second},
		{340, 5 * time.Second},
	}

	for _, test := range tests {
		result := s.DemoLength(playlist.Track{Duration: test.duration})
		if result != test.expected {
			t.Errorf("DemoLength(%d) = %v; expected %v", test.duration, result, test.expected)
		}
	}
}

func TestPlayWaitsCappedDuration(t *testing.T) {
	s, out, waits := newRecordingSimulator(DefaultLimit)

	track := playlist.Track{Title: "Song A", Artist: "Artist X", Album: "Album 1", Duration: 125}
	if err := s.Play(context.Background(), track); err != nil {
		t.Fatalf("Неожиданная ошибка: %v", err)
	}

	if len(*waits) != 1 || (*waits)[0] != 5*time.Second {
		t.Errorf("Ожидалось одно ожидание 5s, получено %v", *waits)
	}

	expected := "🎵 Сейчас играет: Song A — Artist X [2:05] (демо 5 сек)"
	if !strings.Contains(out.String(), expected) {
		t.Errorf("Вывод не содержит '%s': %s", expected, out.String())
	}
}

func TestPlayZeroDurationDoesNotWait(t *testing.T) {
	s, _, waits := newRecordingSimulator(DefaultLimit)

	if err := s.Play(context.Background(), playlist.Track{Title: "Silence"}); err != nil {
		t.Fatalf("Неожиданная ошибка: %v", err)
	}
	if len(*waits) != 0 {
		t.Errorf("Для нулевой длительности ожидание не нужно, получено %v", *waits)
	}
}

func TestPlayZeroLimit(t *testing.T) {
	s, _, waits := newRecordingSimulator(0)

	if err := s.Play(context.Background(), playlist.Track{Title: "Song", Duration: 100}); err != nil {
		t.Fatalf("Неожиданная ошибка: %v", err)
	}
	if len(*waits) != 0 {
		t.Errorf("При нулевом лимите ожидание не нужно, получено %v", *waits)
	}
}

func TestPlayCancelled(t *testing.T) {
	var out bytes.Buffer
	s := NewSimulator(&out, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Play(ctx, playlist.Track{Title: "Song", Duration: 30})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Ожидалась context.Canceled, получено: %v", err)
	}
	if !strings.Contains(out.String(), "прервано") {
		t.Errorf("Вывод не сообщает о прерывании: %s", out.String())
	}
}

func TestSleepContextCompletes(t *testing.T) {
	start := time.Now()
	if err := sleepContext(context.Background(), 10*time.Millisecond); err != nil {
		t.Fatalf("Неожиданная ошибка: %v", err)
	}
	if time.Since(start) < 10*time.Millisecond {
		t.Error("sleepContext вернулся раньше времени")
	}
}
