// Package codec кодирует плейлист в текстовый формат с разделителем-запятой и разбирает его обратно.
//
// Формат:
//
//	title,artist,album,duration_seconds
//	<title>,<artist>,<album>,<duration>
//
// Поле берется в двойные кавычки, только если содержит запятую или кавычку;
// кавычки внутри поля удваиваются. Переводы строк внутри полей не поддерживаются.
package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hazadus/go-playlist/internal/playlist"
)

// Header - строка заголовка, которая всегда пишется при сохранении
const Header = "title,artist,album,duration_seconds"

// maxFields - сколько полей читается из записи; остальное в строке игнорируется
const maxFields = 4

// Encode записывает заголовок и по одной строке на трек
func Encode(w io.Writer, tracks []playlist.Track) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(Header + "\n"); err != nil {
		return fmt.Errorf("ошибка записи заголовка: %w", err)
	}

	for _, t := range tracks {
		line := EscapeField(t.Title) + "," +
			EscapeField(t.Artist) + "," +
			EscapeField(t.Album) + "," +
			strconv.Itoa(t.Duration) + "\n"
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("ошибка записи трека: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("ошибка записи данных: %w", err)
	}
	return nil
}

// EscapeField экранирует поле по правилу минимального квотирования
func EscapeField(s string) string {
	if !strings.ContainsAny(s, `,"`) {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Decode разбирает текст в список треков.
// Некорректные строки не прерывают разбор; ошибка возвращается только при сбое чтения.
func Decode(r io.Reader) ([]playlist.Track, error) {
	tracks := make([]playlist.Track, 0)
	br := bufio.NewReader(r)
	first := true

	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return tracks, fmt.Errorf("ошибка чтения данных: %w", err)
		}
		if line == "" && errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")

		if first {
			first = false
			if IsHeader(line) {
				if errors.Is(err, io.EOF) {
					break
				}
				continue
			}
		}

		if t, ok := DecodeRecord(line); ok {
			tracks = append(tracks, t)
		}

		if errors.Is(err, io.EOF) {
			break
		}
	}

	return tracks, nil
}

// DecodeInto дописывает разобранные треки в конец коллекции и возвращает их количество
func DecodeInto(r io.Reader, c *playlist.Collection) (int, error) {
	tracks, err := Decode(r)
	for _, t := range tracks {
		c.AddTrack(t)
	}
	return len(tracks), err
}

// IsHeader определяет строку заголовка: в ней есть и "title", и "artist"
func IsHeader(line string) bool {
	return strings.Contains(line, "title") && strings.Contains(line, "artist")
}

// DecodeRecord разбирает одну строку. ok == false, если первое поле пустое.
func DecodeRecord(line string) (playlist.Track, bool) {
	var fields [maxFields]string
	rest, more := line, true
	for i := range fields {
		fields[i], rest, more = ReadField(rest, more)
	}

	if fields[0] == "" {
		return playlist.Track{}, false
	}

	return playlist.Track{
		Title:    fields[0],
		Artist:   fields[1],
		Album:    fields[2],
		Duration: ParseDuration(fields[3]),
	}, true
}

// ReadField читает одно поле из начала s.
// Возвращает поле, остаток строки и признак того, что после поля есть еще данные.
// Поле в кавычках читается до закрывающей кавычки ("" внутри означает "),
// все после нее до запятой отбрасывается. Незакрытая кавычка читается до конца строки.
func ReadField(s string, more bool) (field, rest string, hasMore bool) {
	if !more || s == "" {
		return "", "", false
	}

	var b strings.Builder
	i := 0

	if s[0] == '"' {
		i = 1
		for i < len(s) {
			if s[i] == '"' {
				if i+1 < len(s) && s[i+1] == '"' {
					b.WriteByte('"')
					i += 2
					continue
				}
				i++
				break
			}
			b.WriteByte(s[i])
			i++
		}
		for i < len(s) && s[i] != ',' {
			i++
		}
	} else {
		for i < len(s) && s[i] != ',' {
			b.WriteByte(s[i])
			i++
		}
	}

	if i < len(s) && s[i] == ',' {
		i++
	}

	rest = s[i:]
	return b.String(), rest, rest != ""
}

// ParseDuration снисходительно разбирает целое число: пробелы в начале, знак и
// самый длинный префикс из цифр. При неудаче (и при переполнении) возвращает 0.
func ParseDuration(s string) int {
	s = strings.TrimLeft(s, " \t\n\v\f\r")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
