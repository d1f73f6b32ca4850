package facebook

import (
	"bytes"
	"html"
	"strconv"
	"strings"
)

// findMetaContent ищет <meta property="prop" content="..."> без полноценного html парсера.
// Facebook отдаёт og-теги в <head>, поэтому линейного прохода достаточно
func findMetaContent(htmlBytes []byte, prop string) (string, bool) {
	propLower := strings.ToLower(prop)

	for idx := 0; idx < len(htmlBytes); {
		lt := bytes.IndexByte(htmlBytes[idx:], '<')
		if lt == -1 {
			break
		}

		lt += idx

		if lt+5 > len(htmlBytes) || !bytes.EqualFold(htmlBytes[lt+1:lt+5], []byte("meta")) {
			idx = lt + 1

			continue
		}

		rt := bytes.IndexByte(htmlBytes[lt:], '>')
		if rt == -1 {
			break
		}

		rt += lt
		seg := htmlBytes[lt : rt+1] // сегмент с тегом <meta ...>

		if v, ok := attrValue(seg, "property"); ok && strings.EqualFold(v, propLower) {
			if content, ok := attrValue(seg, "content"); ok {
				return html.UnescapeString(content), true
			}
		}

		idx = rt + 1
	}

	return "", false
}

// attrValue достаёт значение атрибута name="..." / name='...' / name=... из тега
func attrValue(seg []byte, name string) (string, bool) {
	segLower := bytes.ToLower(seg) // тег обычно короткий
	key := []byte(name + "=")

	for from := 0; from < len(segLower); {
		i := bytes.Index(segLower[from:], key)
		if i == -1 {
			return "", false
		}

		i += from

		// property= не должен совпасть с og:property= и подобным
		if i > 0 && !isSpace(segLower[i-1]) {
			from = i + len(key)

			continue
		}

		pos := i + len(key)
		if pos >= len(seg) {
			return "", false
		}

		quote := seg[pos]
		if quote != '"' && quote != '\'' {
			end := pos
			for end < len(seg) && !isSpace(seg[end]) && seg[end] != '>' && seg[end] != '/' {
				end++
			}

			return string(seg[pos:end]), true
		}

		end := pos + 1
		for end < len(seg) && seg[end] != quote {
			if seg[end] == '\\' {
				end++
			}

			end++
		}

		if end >= len(seg) {
			return "", false
		}

		return string(seg[pos+1 : end]), true
	}

	return "", false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func metaInt(htmlBytes []byte, prop string) int {
	v, ok := findMetaContent(htmlBytes, prop)
	if !ok {
		return 0
	}

	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}

	return int(n)
}
