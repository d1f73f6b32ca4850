package utils

import "github.com/sirupsen/logrus"

var levels = map[string]logrus.Level{
	"debug":   logrus.DebugLevel,
	"info":    logrus.InfoLevel,
	"warning": logrus.WarnLevel,
	"error":   logrus.ErrorLevel,
	"fatal":   logrus.FatalLevel,
}

// Log доступен и до InitLogger, чтобы тесты и ранний старт не падали на nil
var Log = logrus.New()

func InitLogger(logLevel string) *logrus.Logger {
	Log = logrus.New()

	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	level, ok := levels[logLevel]
	if !ok {
		level = logrus.ErrorLevel
	}

	Log.SetLevel(level)

	return Log
}
