// Package metadata извлекает данные трека из локальных аудиофайлов для импорта в плейлист
package metadata

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
	"github.com/gopxl/beep/mp3"

	"github.com/hazadus/go-playlist/internal/playlist"
)

// Extractor извлекает метаданные из аудио файлов
type Extractor struct{}

// NewExtractor создает новый экстрактор метаданных
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractTrack собирает трек из файла: теги (или имя файла) и длительность.
// Длительность считается только для MP3; если ее не удалось получить, она равна 0.
func (e *Extractor) ExtractTrack(filePath string) (playlist.Track, error) {
	if _, err := os.Stat(filePath); err != nil {
		return playlist.Track{}, fmt.Errorf("ошибка получения информации о файле: %w", err)
	}

	t := e.ExtractFromFile(filePath)
	if strings.EqualFold(filepath.Ext(filePath), ".mp3") {
		if d, err := e.GetDuration(filePath); err == nil {
			t.Duration = int(d.Round(time.Second) / time.Second)
		}
	}
	return t, nil
}

// ExtractFromReader извлекает метаданные из io.ReadSeeker
func (e *Extractor) ExtractFromReader(reader io.ReadSeeker, source string) playlist.Track {
	// Сбрасываем reader в начало
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return e.getDefaultMetadata(source)
	}

	metadata, err := tag.ReadFrom(reader)
	if err != nil {
		return e.getDefaultMetadata(source)
	}

	t := playlist.Track{
		Artist: metadata.Artist(),
		Title:  metadata.Title(),
		Album:  metadata.Album(),
	}
	// Теги есть, но название пустое: берем его из имени файла
	if strings.TrimSpace(t.Title) == "" {
		fallback := e.getDefaultMetadata(source)
		t.Title = fallback.Title
		if t.Artist == "" {
			t.Artist = fallback.Artist
		}
	}
	return t
}

// ExtractFromFile извлекает метаданные из файла
func (e *Extractor) ExtractFromFile(filePath string) playlist.Track {
	file, err := os.Open(filePath)
	if err != nil {
		return e.getDefaultMetadata(filePath)
	}
	defer file.Close()

	return e.ExtractFromReader(file, filePath)
}

// GetDuration получает длительность MP3 файла
func (e *Extractor) GetDuration(filePath string) (time.Duration, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	streamer, format, err := mp3.Decode(file)
	if err != nil {
		return 0, fmt.Errorf("ошибка декодирования MP3: %w", err)
	}
	defer streamer.Close()

	return format.SampleRate.D(streamer.Len()), nil
}

// getDefaultMetadata возвращает метаданные на основе имени файла в формате "Artist - Title".
// Если формат не распознан, исполнитель остается пустым.
func (e *Extractor) getDefaultMetadata(source string) playlist.Track {
	fileName := filepath.Base(source)
	nameWithoutExt := strings.TrimSuffix(fileName, filepath.Ext(fileName))

	parts := strings.Split(nameWithoutExt, " - ")
	if len(parts) >= 2 {
		return playlist.Track{
			Artist: strings.TrimSpace(parts[0]),
			Title:  strings.TrimSpace(strings.Join(parts[1:], " - ")),
		}
	}

	return playlist.Track{
		Title: nameWithoutExt,
	}
}
