// Package data загружает плейлист из файла и сохраняет его обратно
package data

import (
	"fmt"
	"os"
	"strings"

	"github.com/hazadus/go-playlist/internal/codec"
	"github.com/hazadus/go-playlist/internal/playlist"
)

// DefaultFile - файл плейлиста по умолчанию
const DefaultFile = "playlist.csv"

// ExpandPath раскрывает тильду в начале пути в домашнюю директорию
func ExpandPath(filePath string) (string, error) {
	if !strings.HasPrefix(filePath, "~") {
		return filePath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return strings.Replace(filePath, "~", home, 1), nil
}

// LoadFile дописывает треки из файла в конец коллекции и возвращает их количество.
// Ошибка открытия оборачивается, так что errors.Is(err, fs.ErrNotExist) продолжает работать.
func LoadFile(filePath string, c *playlist.Collection) (int, error) {
	path, err := ExpandPath(filePath)
	if err != nil {
		return 0, err
	}

	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("ошибка открытия файла плейлиста: %w", err)
	}
	defer file.Close()

	n, err := codec.DecodeInto(file, c)
	if err != nil {
		return n, fmt.Errorf("ошибка чтения файла плейлиста: %w", err)
	}
	return n, nil
}

// SaveFile записывает коллекцию в файл, перезаписывая его
func SaveFile(filePath string, c *playlist.Collection) error {
	path, err := ExpandPath(filePath)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ошибка создания файла плейлиста: %w", err)
	}

	if err := codec.Encode(file, c.Tracks()); err != nil {
		file.Close()
		return fmt.Errorf("ошибка записи файла плейлиста: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("ошибка записи файла плейлиста: %w", err)
	}
	return nil
}
