package playlist

import (
	"cmp"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"time"
)

var (
	// ErrIndexOutOfRange возвращается при обращении к несуществующей позиции
	ErrIndexOutOfRange = errors.New("позиция вне диапазона")
	// ErrUnknownSortKey возвращается для неизвестного ключа сортировки
	ErrUnknownSortKey = errors.New("неизвестный ключ сортировки")
)

// SortKey определяет порядок сортировки коллекции
type SortKey string

// Поддерживаемые ключи сортировки
const (
	SortTitle    SortKey = "title"
	SortArtist   SortKey = "artist"
	SortDuration SortKey = "duration"
)

// ParseSortKey разбирает ключ сортировки без учета регистра.
// "dur" - сокращение для длительности.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "title":
		return SortTitle, nil
	case "artist":
		return SortArtist, nil
	case "dur", "duration":
		return SortDuration, nil
	}
	return "", fmt.Errorf("%w: '%s'", ErrUnknownSortKey, s)
}

// Collection - упорядоченный изменяемый список треков.
// Не предназначена для конкурентного доступа.
type Collection struct {
	tracks []Track
	rng    *rand.Rand
}

// NewCollection создает пустую коллекцию с генератором, засеянным один раз от часов
func NewCollection() *Collection {
	return NewCollectionWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewCollectionWithRand создает пустую коллекцию с переданным генератором случайных чисел
func NewCollectionWithRand(rng *rand.Rand) *Collection {
	return &Collection{
		tracks: make([]Track, 0),
		rng:    rng,
	}
}

// Add добавляет новый трек в конец коллекции
func (c *Collection) Add(title, artist, album string, duration int) {
	c.AddTrack(Track{
		Title:    title,
		Artist:   artist,
		Album:    album,
		Duration: duration,
	})
}

// AddTrack добавляет готовый трек в конец коллекции
func (c *Collection) AddTrack(t Track) {
	c.tracks = append(c.tracks, t)
}

// RemoveAt удаляет трек по позиции (с нуля), сдвигая последующие влево
func (c *Collection) RemoveAt(index int) error {
	if index < 0 || index >= len(c.tracks) {
		return fmt.Errorf("%w: %d (размер %d)", ErrIndexOutOfRange, index, len(c.tracks))
	}
	c.tracks = slices.Delete(c.tracks, index, index+1)
	return nil
}

// At возвращает трек по позиции (с нуля)
func (c *Collection) At(index int) (Track, error) {
	if index < 0 || index >= len(c.tracks) {
		return Track{}, fmt.Errorf("%w: %d (размер %d)", ErrIndexOutOfRange, index, len(c.tracks))
	}
	return c.tracks[index], nil
}

// Len возвращает количество треков
func (c *Collection) Len() int {
	return len(c.tracks)
}

// Tracks возвращает копию всех треков в текущем порядке
func (c *Collection) Tracks() []Track {
	result := make([]Track, len(c.tracks))
	copy(result, c.tracks)
	return result
}

// Clear удаляет все треки
func (c *Collection) Clear() {
	clear(c.tracks)
	c.tracks = c.tracks[:0]
}

// Search ищет подстроку term без учета регистра (ASCII) в названии, исполнителе или альбоме
func (c *Collection) Search(term string) []Match {
	needle := lowerASCII(term)
	matches := make([]Match, 0)
	for i, t := range c.tracks {
		if strings.Contains(lowerASCII(t.Title), needle) ||
			strings.Contains(lowerASCII(t.Artist), needle) ||
			strings.Contains(lowerASCII(t.Album), needle) {
			matches = append(matches, Match{Position: i, Track: t})
		}
	}
	return matches
}

// SortBy полностью переупорядочивает коллекцию по ключу. Сортировка нестабильная.
func (c *Collection) SortBy(key SortKey) error {
	var compare func(a, b Track) int
	switch key {
	case SortTitle:
		compare = func(a, b Track) int {
			return compareFold(a.Title, b.Title)
		}
	case SortArtist:
		compare = func(a, b Track) int {
			if r := compareFold(a.Artist, b.Artist); r != 0 {
				return r
			}
			return compareFold(a.Title, b.Title)
		}
	case SortDuration:
		compare = func(a, b Track) int {
			return cmp.Compare(a.Duration, b.Duration)
		}
	default:
		return fmt.Errorf("%w: '%s'", ErrUnknownSortKey, key)
	}
	slices.SortFunc(c.tracks, compare)
	return nil
}

// Shuffle перемешивает треки алгоритмом Фишера-Йетса
func (c *Collection) Shuffle() {
	if len(c.tracks) < 2 {
		return
	}
	for i := len(c.tracks) - 1; i > 0; i-- {
		j := c.rng.Intn(i + 1)
		c.tracks[i], c.tracks[j] = c.tracks[j], c.tracks[i]
	}
}

// lowerASCII приводит к нижнему регистру только латиницу, остальные байты не трогает
func lowerASCII(s string) string {
	b := []byte(s)
	for i, ch := range b {
		if 'A' <= ch && ch <= 'Z' {
			b[i] = ch + ('a' - 'A')
		}
	}
	return string(b)
}

// compareFold сравнивает строки побайтно без учета регистра ASCII
func compareFold(a, b string) int {
	return strings.Compare(lowerASCII(a), lowerASCII(b))
}
