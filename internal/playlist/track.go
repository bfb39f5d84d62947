// Package playlist содержит упорядоченную коллекцию треков и операции над ней
package playlist

// Track описывает одну композицию в плейлисте.
// Идентичности у трека нет: его положение в коллекции и есть его адрес.
type Track struct {
	Title    string
	Artist   string
	Album    string
	Duration int // Длительность в секундах
}

// Match - трек, найденный поиском, вместе с его позицией (с нуля)
type Match struct {
	Position int
	Track    Track
}
