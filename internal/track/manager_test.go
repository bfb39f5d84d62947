package track

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/hazadus/go-playlist/internal/logging"
	"github.com/hazadus/go-playlist/internal/playlist"
)

// fakePlayer запоминает воспроизведенные треки
type fakePlayer struct {
	played []playlist.Track
	err    error
}

func (p *fakePlayer) Play(_ context.Context, t playlist.Track) error {
	p.played = append(p.played, t)
	return p.err
}

func newTestManager(t *testing.T) (*Manager, *fakePlayer) {
	t.Helper()
	player := &fakePlayer{}
	collection := playlist.NewCollectionWithRand(rand.New(rand.NewSource(1)))
	path := filepath.Join(t.TempDir(), "playlist.csv")
	return NewManager(collection, player, logging.Discard(), path), player
}

func TestAddTrack(t *testing.T) {
	manager, _ := newTestManager(t)

	track, err := manager.Add("Test Title", "Test Artist", "Test Album", "180")
	if err != nil {
		t.Fatalf("Ошибка при добавлении трека: %v", err)
	}

	tracks := manager.ListTracks()
	if len(tracks) != 1 {
		t.Fatalf("Ожидался 1 трек, получено %d", len(tracks))
	}
	if tracks[0] != track {
		t.Errorf("Ожидался трек %+v, получено %+v", track, tracks[0])
	}
	if track.Duration != 180 {
		t.Errorf("Ожидалась длительность 180, получено %d", track.Duration)
	}
}

func TestAddDefaults(t *testing.T) {
	manager, _ := newTestManager(t)

	track, err := manager.Add("  Title  ", "", "   ", "not a number")
	if err != nil {
		t.Fatalf("Ошибка при добавлении трека: %v", err)
	}

	if track.Title != "Title" {
		t.Errorf("Ожидалось название без пробелов: Title, получено: %q", track.Title)
	}
	if track.Artist != Unknown {
		t.Errorf("Ожидался Artist: %s, получено: %s", Unknown, track.Artist)
	}
	if track.Album != Unknown {
		t.Errorf("Ожидался Album: %s, получено: %s", Unknown, track.Album)
	}
	if track.Duration != 0 {
		t.Errorf("Ожидалась длительность 0, получено %d", track.Duration)
	}
}

func TestAddRequiresTitle(t *testing.T) {
	manager, _ := newTestManager(t)

	if _, err := manager.Add("   ", "Artist", "Album", "10"); !errors.Is(err, ErrTitleRequired) {
		t.Errorf("Ожидалась ErrTitleRequired, получено: %v", err)
	}
	if _, err := manager.AddTrack(playlist.Track{Artist: "Artist"}); !errors.Is(err, ErrTitleRequired) {
		t.Errorf("Ожидалась ErrTitleRequired для AddTrack, получено: %v", err)
	}
	if manager.Len() != 0 {
		t.Errorf("Трек без названия не должен добавляться, получено %d", manager.Len())
	}
}

func TestAddDuplicateTrack(t *testing.T) {
	manager, _ := newTestManager(t)

	manager.Add("Title", "Artist", "Album", "60")
	manager.Add("Title", "Artist", "Album", "60")

	// Система позволяет дубликаты
	if manager.Len() != 2 {
		t.Errorf("Ожидалось 2 трека после добавления дубликата, получено %d", manager.Len())
	}
}

func TestRemoveOneBased(t *testing.T) {
	manager, _ := newTestManager(t)
	manager.Add("Title 1", "Artist 1", "", "1")
	manager.Add("Title 2", "Artist 2", "", "2")
	manager.Add("Title 3", "Artist 3", "", "3")

	removed, err := manager.Remove(1)
	if err != nil {
		t.Fatalf("Ошибка при удалении трека: %v", err)
	}
	if removed.Title != "Title 1" {
		t.Errorf("Ожидалось удаление Title 1, удален %s", removed.Title)
	}

	tracks := manager.ListTracks()
	if len(tracks) != 2 || tracks[0].Title != "Title 2" || tracks[1].Title != "Title 3" {
		t.Errorf("Неверный порядок после удаления: %+v", tracks)
	}
}

func TestRemoveInvalidPosition(t *testing.T) {
	manager, _ := newTestManager(t)
	manager.Add("Title", "Artist", "Album", "1")

	for _, position := range []int{0, -1, 2} {
		if _, err := manager.Remove(position); !errors.Is(err, playlist.ErrIndexOutOfRange) {
			t.Errorf("Remove(%d): ожидалась ErrIndexOutOfRange, получено: %v", position, err)
		}
	}
	if manager.Len() != 1 {
		t.Errorf("Плейлист не должен меняться, получено %d треков", manager.Len())
	}
}

func TestFindTrack(t *testing.T) {
	manager, _ := newTestManager(t)
	manager.Add("Hey Jude", "The Beatles", "The Beatles 1967-1970", "431")
	manager.Add("Bohemian Rhapsody", "Queen", "A Night at the Opera", "355")
	manager.Add("Let It Be", "The Beatles", "Let It Be", "243")

	matches := manager.Search("beatles")
	if len(matches) != 2 {
		t.Fatalf("Ожидалось 2 совпадения, получено %d", len(matches))
	}
	if matches[1].Position != 2 {
		t.Errorf("Ожидалась позиция 2, получено %d", matches[1].Position)
	}

	track, err := manager.Get(2)
	if err != nil {
		t.Errorf("Ошибка при поиске трека по позиции: %v", err)
	}
	if track.Artist != "Queen" {
		t.Errorf("Ожидался Artist: Queen, получено: %s", track.Artist)
	}

	if _, err := manager.Get(999); err == nil {
		t.Error("Ожидалась ошибка при поиске несуществующего трека")
	}
}

func TestSort(t *testing.T) {
	manager, _ := newTestManager(t)
	manager.Add("B", "Artist", "Album", "300")
	manager.Add("A", "Artist", "Album", "100")

	key, err := manager.Sort("dur")
	if err != nil {
		t.Fatalf("Ошибка сортировки: %v", err)
	}
	if key != playlist.SortDuration {
		t.Errorf("Ожидался ключ duration, получено %s", key)
	}
	if first, _ := manager.Get(1); first.Title != "A" {
		t.Errorf("Первым должен быть самый короткий трек, получено %s", first.Title)
	}

	if _, err := manager.Sort("album"); !errors.Is(err, playlist.ErrUnknownSortKey) {
		t.Errorf("Ожидалась ErrUnknownSortKey, получено: %v", err)
	}
}

func TestShuffleAndClear(t *testing.T) {
	manager, _ := newTestManager(t)
	for _, title := range []string{"A", "B", "C", "D"} {
		manager.Add(title, "", "", "0")
	}

	manager.Shuffle()
	if manager.Len() != 4 {
		t.Errorf("Перемешивание изменило размер плейлиста: %d", manager.Len())
	}

	manager.Clear()
	if manager.Len() != 0 {
		t.Errorf("Ожидался пустой плейлист, получено %d", manager.Len())
	}
}

func TestPlay(t *testing.T) {
	manager, player := newTestManager(t)
	manager.Add("Song A", "Artist X", "Album 1", "125")

	if err := manager.Play(context.Background(), 1); err != nil {
		t.Fatalf("Ошибка воспроизведения: %v", err)
	}
	if len(player.played) != 1 || player.played[0].Title != "Song A" {
		t.Errorf("Ожидалось воспроизведение Song A, получено %+v", player.played)
	}

	if err := manager.Play(context.Background(), 2); !errors.Is(err, playlist.ErrIndexOutOfRange) {
		t.Errorf("Ожидалась ErrIndexOutOfRange, получено: %v", err)
	}
	if len(player.played) != 1 {
		t.Errorf("Несуществующий трек не должен воспроизводиться")
	}
}

func TestSaveAndLoad(t *testing.T) {
	manager, _ := newTestManager(t)
	manager.Add("Song A", "Artist X", "Album 1", "125")
	manager.Add("Song B", "Artist Y", "Album 2", "340")

	if err := manager.Save(""); err != nil {
		t.Fatalf("Ошибка сохранения: %v", err)
	}

	other := NewManager(playlist.NewCollection(), &fakePlayer{}, logging.Discard(), manager.Path())
	n, err := other.LoadStartup()
	if err != nil {
		t.Fatalf("Ошибка загрузки: %v", err)
	}
	if n != 2 || other.Len() != 2 {
		t.Fatalf("Ожидалось 2 трека, загружено %d", n)
	}

	original, loaded := manager.ListTracks(), other.ListTracks()
	for i := range original {
		if original[i] != loaded[i] {
			t.Errorf("Трек %d: ожидался %+v, получено %+v", i, original[i], loaded[i])
		}
	}
}

func TestLoadStartupMissingFile(t *testing.T) {
	manager, _ := newTestManager(t)

	n, err := manager.LoadStartup()
	if err != nil {
		t.Errorf("Отсутствующий файл при запуске не должен быть ошибкой: %v", err)
	}
	if n != 0 {
		t.Errorf("Ожидалось 0 треков, получено %d", n)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	manager, _ := newTestManager(t)

	if _, err := manager.Load(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("Ожидалась ошибка загрузки несуществующего файла")
	}
}

func TestSaveToExplicitPath(t *testing.T) {
	manager, _ := newTestManager(t)
	manager.Add("Song", "Artist", "Album", "1")

	path := filepath.Join(t.TempDir(), "other.csv")
	if err := manager.Save(path); err != nil {
		t.Fatalf("Ошибка сохранения: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Файл не создан: %v", err)
	}
	if _, err := os.Stat(manager.Path()); err == nil {
		t.Error("Файл по умолчанию не должен создаваться при сохранении в другой путь")
	}
}
