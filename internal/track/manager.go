// Package track содержит логику управления треками плейлиста
package track

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/hazadus/go-playlist/internal/codec"
	"github.com/hazadus/go-playlist/internal/data"
	"github.com/hazadus/go-playlist/internal/playlist"
)

// Unknown подставляется вместо незаполненного исполнителя или альбома
const Unknown = "Unknown"

// ErrTitleRequired возвращается при добавлении трека без названия
var ErrTitleRequired = errors.New("название трека обязательно")

// Player воспроизводит трек; реализуется player.Simulator
type Player interface {
	Play(ctx context.Context, t playlist.Track) error
}

// Manager управляет треками в приложении.
// Позиции в его методах нумеруются с единицы, как их видит пользователь.
type Manager struct {
	collection *playlist.Collection
	player     Player
	logger     *logrus.Logger
	path       string
}

// NewManager создает новый экземпляр Manager
func NewManager(collection *playlist.Collection, player Player, logger *logrus.Logger, path string) *Manager {
	if path == "" {
		path = data.DefaultFile
	}
	return &Manager{
		collection: collection,
		player:     player,
		logger:     logger,
		path:       path,
	}
}

// Path возвращает файл плейлиста по умолчанию
func (m *Manager) Path() string {
	return m.path
}

// Collection возвращает управляемую коллекцию
func (m *Manager) Collection() *playlist.Collection {
	return m.collection
}

// ListTracks возвращает список всех треков
func (m *Manager) ListTracks() []playlist.Track {
	return m.collection.Tracks()
}

// Len возвращает количество треков
func (m *Manager) Len() int {
	return m.collection.Len()
}

// Add добавляет трек из пользовательского ввода.
// Пустые исполнитель и альбом заменяются на Unknown, нечисловая длительность - на 0.
func (m *Manager) Add(title, artist, album, durationText string) (playlist.Track, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return playlist.Track{}, ErrTitleRequired
	}

	t := playlist.Track{
		Title:    title,
		Artist:   orUnknown(artist),
		Album:    orUnknown(album),
		Duration: codec.ParseDuration(durationText),
	}
	m.collection.AddTrack(t)

	m.logger.WithFields(logrus.Fields{
		"title":  t.Title,
		"artist": t.Artist,
		"size":   m.collection.Len(),
	}).Debug("Трек добавлен")
	return t, nil
}

// AddTrack добавляет готовый трек (например, из тегов файла), применяя те же правила заполнения
func (m *Manager) AddTrack(t playlist.Track) (playlist.Track, error) {
	title := strings.TrimSpace(t.Title)
	if title == "" {
		return playlist.Track{}, ErrTitleRequired
	}
	t.Title = title
	t.Artist = orUnknown(t.Artist)
	t.Album = orUnknown(t.Album)
	m.collection.AddTrack(t)

	m.logger.WithField("title", t.Title).Debug("Трек добавлен")
	return t, nil
}

// Remove удаляет трек по позиции (с единицы) и возвращает его
func (m *Manager) Remove(position int) (playlist.Track, error) {
	t, err := m.collection.At(position - 1)
	if err != nil {
		return playlist.Track{}, m.positionError(position)
	}
	if err := m.collection.RemoveAt(position - 1); err != nil {
		return playlist.Track{}, m.positionError(position)
	}

	m.logger.WithField("position", position).Debug("Трек удален")
	return t, nil
}

// Get возвращает трек по позиции (с единицы)
func (m *Manager) Get(position int) (playlist.Track, error) {
	t, err := m.collection.At(position - 1)
	if err != nil {
		return playlist.Track{}, m.positionError(position)
	}
	return t, nil
}

// Search ищет треки по подстроке; позиции в результате нумеруются с нуля
func (m *Manager) Search(term string) []playlist.Match {
	matches := m.collection.Search(term)
	m.logger.WithFields(logrus.Fields{
		"term":    term,
		"matches": len(matches),
	}).Debug("Поиск выполнен")
	return matches
}

// Sort сортирует плейлист по ключу из пользовательского ввода
func (m *Manager) Sort(keyText string) (playlist.SortKey, error) {
	key, err := playlist.ParseSortKey(keyText)
	if err != nil {
		return "", err
	}
	if err := m.collection.SortBy(key); err != nil {
		return "", err
	}

	m.logger.WithField("key", key).Debug("Плейлист отсортирован")
	return key, nil
}

// Shuffle перемешивает плейлист
func (m *Manager) Shuffle() {
	m.collection.Shuffle()
	m.logger.Debug("Плейлист перемешан")
}

// Clear очищает плейлист
func (m *Manager) Clear() {
	m.collection.Clear()
	m.logger.Debug("Плейлист очищен")
}

// Play имитирует воспроизведение трека по позиции (с единицы)
func (m *Manager) Play(ctx context.Context, position int) error {
	t, err := m.Get(position)
	if err != nil {
		return err
	}
	return m.player.Play(ctx, t)
}

// Load дописывает треки из файла; пустой путь означает файл по умолчанию
func (m *Manager) Load(path string) (int, error) {
	if path == "" {
		path = m.path
	}
	n, err := data.LoadFile(path, m.collection)
	if err != nil {
		m.logger.WithError(err).WithField("path", path).Warn("Не удалось загрузить плейлист")
		return n, err
	}

	m.logger.WithFields(logrus.Fields{
		"path":   path,
		"loaded": n,
	}).Info("Плейлист загружен")
	return n, nil
}

// LoadStartup загружает файл по умолчанию, если он существует
func (m *Manager) LoadStartup() (int, error) {
	n, err := m.Load("")
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	return n, err
}

// Save сохраняет плейлист; пустой путь означает файл по умолчанию
func (m *Manager) Save(path string) error {
	if path == "" {
		path = m.path
	}
	if err := data.SaveFile(path, m.collection); err != nil {
		m.logger.WithError(err).WithField("path", path).Warn("Не удалось сохранить плейлист")
		return err
	}

	m.logger.WithFields(logrus.Fields{
		"path":   path,
		"tracks": m.collection.Len(),
	}).Info("Плейлист сохранен")
	return nil
}

// positionError формирует ошибку для позиции, которой нет в плейлисте
func (m *Manager) positionError(position int) error {
	return fmt.Errorf("%w: %d (допустимо 1..%d)", playlist.ErrIndexOutOfRange, position, m.collection.Len())
}

func orUnknown(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unknown
	}
	return s
}
