package utils

import (
	"fmt"
	"regexp"
)

var unsafeFileChars = regexp.MustCompile(`[\/\?<>\\:\*\|"]`)

func StringNotEmptyCoalesce(args ...string) string {
	for _, elem := range args {
		if len(elem) > 0 {
			return elem
		}
	}

	return ""
}

// SanitizeFileName заменяет символы, недопустимые в имени файла и в Content-Disposition
func SanitizeFileName(name string) string {
	return unsafeFileChars.ReplaceAllString(name, "_")
}

// FormatSecondsToMMSS 75 -> "01:15"
func FormatSecondsToMMSS(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
