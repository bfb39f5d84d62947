// Package logging настраивает диагностический логгер приложения
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New создает логгер с текстовым форматом и заданным уровнем.
// Неизвестный уровень заменяется на warn.
func New(level string, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.WarnLevel
	}
	logger.SetLevel(parsed)

	return logger
}

// Discard возвращает логгер, который ничего не пишет. Удобен в тестах.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
