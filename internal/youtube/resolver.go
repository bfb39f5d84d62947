// Package youtube получает данные трека по ссылке на видео YouTube
package youtube

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/kkdai/youtube/v2"

	"github.com/hazadus/go-playlist/internal/playlist"
)

// Album - альбом, который получают треки, добавленные с YouTube
const Album = "YouTube"

var (
	videoIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([a-zA-Z0-9_-]{11})`),
		regexp.MustCompile(`(?:youtube\.com/embed/)([a-zA-Z0-9_-]{11})`),
		regexp.MustCompile(`(?:youtube\.com/v/)([a-zA-Z0-9_-]{11})`),
	}
	bareIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
)

// VideoFetcher получает описание видео по ID; реализуется youtube.Client
type VideoFetcher interface {
	GetVideoContext(ctx context.Context, id string) (*youtube.Video, error)
}

// Resolver превращает ссылки YouTube в треки плейлиста
type Resolver struct {
	client VideoFetcher
}

// NewResolver создает Resolver с клиентом YouTube по умолчанию
func NewResolver() *Resolver {
	return NewResolverWithClient(&youtube.Client{})
}

// NewResolverWithClient создает Resolver с переданным клиентом
func NewResolverWithClient(client VideoFetcher) *Resolver {
	return &Resolver{client: client}
}

// Lookup загружает описание видео и собирает из него трек
func (r *Resolver) Lookup(ctx context.Context, url string) (playlist.Track, error) {
	videoID, err := ExtractVideoID(url)
	if err != nil {
		return playlist.Track{}, fmt.Errorf("ошибка извлечения ID видео: %w", err)
	}

	video, err := r.client.GetVideoContext(ctx, videoID)
	if err != nil {
		return playlist.Track{}, fmt.Errorf("ошибка получения информации о видео: %w", err)
	}

	return TrackFromVideo(video), nil
}

// TrackFromVideo отображает видео на трек: автор канала становится исполнителем
func TrackFromVideo(video *youtube.Video) playlist.Track {
	artist := strings.TrimSuffix(strings.TrimSpace(video.Author), " - Topic")
	return playlist.Track{
		Title:    strings.TrimSpace(video.Title),
		Artist:   artist,
		Album:    Album,
		Duration: int(video.Duration.Round(time.Second) / time.Second),
	}
}

// ExtractVideoID извлекает ID видео из различных форматов YouTube URL
func ExtractVideoID(url string) (string, error) {
	for _, re := range videoIDPatterns {
		matches := re.FindStringSubmatch(url)
		if len(matches) > 1 {
			return matches[1], nil
		}
	}

	// Если это просто ID видео (11 символов)
	if bareIDPattern.MatchString(url) {
		return url, nil
	}

	return "", fmt.Errorf("не удалось извлечь ID видео из URL: %s", url)
}
