package utils

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestStringNotEmptyCoalesce(t *testing.T) {
	require.Equal(t, "b", StringNotEmptyCoalesce("", "b", "c"))
	require.Equal(t, "", StringNotEmptyCoalesce("", ""))
	require.Equal(t, "", StringNotEmptyCoalesce())
}

func TestSanitizeFileName(t *testing.T) {
	require.Equal(t, "a_b_c_.mp4", SanitizeFileName(`a/b"c?.mp4`))
	require.Equal(t, "video.mp4", SanitizeFileName("video.mp4"))
}

func TestFormatSecondsToMMSS(t *testing.T) {
	require.Equal(t, "00:00", FormatSecondsToMMSS(0))
	require.Equal(t, "01:15", FormatSecondsToMMSS(75))
	require.Equal(t, "61:01", FormatSecondsToMMSS(3661))
	require.Equal(t, "00:00", FormatSecondsToMMSS(-5))
}

func TestInitLogger(t *testing.T) {
	tests := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"info":    logrus.InfoLevel,
		"warning": logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"fatal":   logrus.FatalLevel,
		"":        logrus.ErrorLevel,
		"verbose": logrus.ErrorLevel,
	}

	for level, want := range tests {
		log := InitLogger(level)
		require.Same(t, Log, log)
		require.Equal(t, want, log.GetLevel(), level)
	}
}
