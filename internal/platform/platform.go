// Package platform определяет видеоплатформу по ссылке.
package platform

import (
	"net/url"
	"strings"
)

type Platform string

const (
	Unknown  Platform = "unknown"
	YouTube  Platform = "youtube"
	Facebook Platform = "facebook"
	TikTok   Platform = "tiktok"
)

type rule struct {
	platform  Platform
	fragments []string
}

// Порядок важен: первое совпадение побеждает
var rules = []rule{
	{YouTube, []string{"youtube.com", "youtu.be"}},
	{Facebook, []string{"facebook.com", "fb.watch"}},
	{TikTok, []string{"tiktok.com"}},
}

// Схемы, у которых обязательно должен быть хост
var hostSchemes = map[string]struct{}{
	"http":  {},
	"https": {},
	"ftp":   {},
	"ws":    {},
	"wss":   {},
}

// All возвращает известные платформы в порядке проверки
func All() []Platform {
	res := make([]Platform, 0, len(rules))
	for _, r := range rules {
		res = append(res, r.platform)
	}

	return res
}

func (p Platform) String() string {
	return string(p)
}

// LooksLikeURL проверяет, что строка является абсолютным URL
func LooksLikeURL(s string) bool {
	_, ok := parseAbsolute(s)

	return ok
}

// Detect определяет платформу только по хосту ссылки.
// Ссылки без схемы повторно разбираются с префиксом https://
func Detect(s string) Platform {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unknown
	}

	u, ok := parseAbsolute(s)
	if !ok {
		u, ok = parseAbsolute("https://" + s)
		if !ok {
			return Unknown
		}
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return Unknown
	}

	for _, r := range rules {
		for _, fragment := range r.fragments {
			if strings.Contains(host, fragment) {
				return r.platform
			}
		}
	}

	return Unknown
}

// Parse нормализует платформу, присланную клиентом. Пустая строка остаётся пустой
func Parse(s string) Platform {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	for _, r := range rules {
		if string(r.platform) == s {
			return r.platform
		}
	}

	return Unknown
}

func parseAbsolute(s string) (*url.URL, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}

	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return nil, false
	}

	if _, ok := hostSchemes[u.Scheme]; ok && u.Host == "" {
		return nil, false
	}

	return u, true
}
