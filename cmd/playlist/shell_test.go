package main

import (
	"context"
	"io"
	"strings"
	"testing"
)

// TestShellSession проверяет сценарий работы с интерактивной оболочкой
func TestShellSession(t *testing.T) {
	app, out := createTestApplication(t)

	input := strings.Join([]string{
		"add",
		"Song A", "Artist A", "Album A", "200",
		"ADD",
		"Song B", "", "", "100",
		"",
		"list",
		"sort dur",
		"search song b",
		"remove 9",
		"play 1",
		"foo",
		"quit",
		"list",
	}, "\n") + "\n"

	if err := app.runShell(context.Background(), strings.NewReader(input), out); err != nil {
		t.Fatalf("Ошибка оболочки: %v", err)
	}

	expectedStrings := []string{
		"Загружено треков: 0",
		"✅ Добавлен: Song A — Artist A",
		"✅ Добавлен: Song B — Unknown",
		"📚 Треков в плейлисте: 2",
		"🔤 Отсортировано по duration.",
		"  1) Song B",
		"❌ Неверный номер. Использование: remove N (1..2)",
		"🎵 Сейчас играет: Song B — Unknown [1:40]",
		"❓ Неизвестная команда: foo",
		"💾 Сохранено в " + app.Manager.Path() + ". Пока!",
	}
	for _, expected := range expectedStrings {
		if !strings.Contains(out.String(), expected) {
			t.Errorf("Вывод оболочки не содержит '%s':\n%s", expected, out.String())
		}
	}

	// Команды после quit не выполняются
	if strings.Count(out.String(), "📚 Треков в плейлисте") != 1 {
		t.Error("Команда list после quit не должна выполняться")
	}

	expected := "title,artist,album,duration_seconds\n" +
		"Song B,Unknown,Unknown,100\n" +
		"Song A,Artist A,Album A,200\n"
	if content := readPlaylistFile(t, app); content != expected {
		t.Errorf("Неверное содержимое файла:\n%q\nожидалось:\n%q", content, expected)
	}
}

// TestShellSavesOnEOF проверяет сохранение при окончании ввода
func TestShellSavesOnEOF(t *testing.T) {
	app, out := createTestApplication(t)
	addTestTracks(t, app)

	if err := app.runShell(context.Background(), strings.NewReader("remove 1"), out); err != nil {
		t.Fatalf("Ошибка оболочки: %v", err)
	}

	content := readPlaylistFile(t, app)
	if strings.Contains(content, "Bohemian") || !strings.Contains(content, "Imagine") {
		t.Errorf("Неверное содержимое файла после EOF: %q", content)
	}
}

// TestShellSortAndSearchPrompts проверяет подсказки при неполных командах
func TestShellSortAndSearchPrompts(t *testing.T) {
	app, out := createTestApplication(t)
	addTestTracks(t, app)

	input := "sort\nsort year\nsearch\nqueen\nexit\n"
	if err := app.runShell(context.Background(), strings.NewReader(input), out); err != nil {
		t.Fatalf("Ошибка оболочки: %v", err)
	}

	expectedStrings := []string{
		"sort title | artist | dur",
		"❌ Ошибка: неизвестный ключ сортировки: 'year'",
		"Что искать: ",
		"  1) Bohemian Rhapsody",
	}
	for _, expected := range expectedStrings {
		if !strings.Contains(out.String(), expected) {
			t.Errorf("Вывод оболочки не содержит '%s':\n%s", expected, out.String())
		}
	}
}

// TestShellCanceledContext проверяет выход с сохранением при отмене контекста
func TestShellCanceledContext(t *testing.T) {
	app, out := createTestApplication(t)
	addTestTracks(t, app)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Ввод никогда не заканчивается, выход возможен только по отмене
	reader, writer := io.Pipe()
	defer writer.Close()

	if err := app.runShell(ctx, reader, out); err != nil {
		t.Fatalf("Ошибка оболочки: %v", err)
	}
	if !strings.Contains(readPlaylistFile(t, app), "Imagine") {
		t.Error("Плейлист должен быть сохранен при отмене")
	}
}

func TestHelpMentionsPlaylistFile(t *testing.T) {
	app, out := createTestApplication(t)

	if err := app.runShell(context.Background(), strings.NewReader("help\n"), out); err != nil {
		t.Fatalf("Ошибка оболочки: %v", err)
	}
	if !strings.Contains(out.String(), "save [f]   - сохранить плейлист в файл (по умолчанию: "+app.Manager.Path()+")") {
		t.Errorf("Справка должна упоминать файл по умолчанию:\n%s", out.String())
	}
}

// TestShellAddTitleOnly проверяет добавление трека, когда ввод закончился после названия
func TestShellAddTitleOnly(t *testing.T) {
	app, out := createTestApplication(t)

	if err := app.runShell(context.Background(), strings.NewReader("add\nSong Only\n"), out); err != nil {
		t.Fatalf("Ошибка оболочки: %v", err)
	}

	if strings.Contains(out.String(), "❌ Ошибка") {
		t.Errorf("Неожиданная ошибка в выводе:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "✅ Добавлен: Song Only — Unknown") {
		t.Errorf("Трек должен быть добавлен:\n%s", out.String())
	}

	expected := "title,artist,album,duration_seconds\nSong Only,Unknown,Unknown,0\n"
	if content := readPlaylistFile(t, app); content != expected {
		t.Errorf("Неверное содержимое файла:\n%q\nожидалось:\n%q", content, expected)
	}
}
