package woldoc

import (
	"net/url"
	"strconv"
	"strings"
)

// BibleChapterHost is the only host accepted by IsBibleChapterURL.
const BibleChapterHost = "wol.jw.org"

// BuildChapterLinks generates one absolute URL per chapter in [first, last].
// The last path segment of templateURL (fragment removed) is replaced with
// each chapter number and the result is prefixed with origin and lang.
// An empty range yields an empty slice.
func BuildChapterLinks(origin, templateURL string, first, last int, lang string) []string {
	links := []string{}
	if first > last {
		return links
	}

	path, _, _ := strings.Cut(templateURL, "#")
	segments := strings.Split(path, "/")
	prefix := origin + "/" + strings.Trim(lang, "/")

	for chapter := first; chapter <= last; chapter++ {
		segments[len(segments)-1] = strconv.Itoa(chapter)
		joined := strings.Join(segments, "/")
		if !strings.HasPrefix(joined, "/") {
			joined = "/" + joined
		}
		links = append(links, prefix+joined)
	}
	return links
}

// LanguagePrefix returns the locale segment of a site-relative href
// ("/es/wol/..." yields "es"), or "" when there is none.
func LanguagePrefix(href string) string {
	trimmed := strings.TrimPrefix(href, "/")
	lang, _, found := strings.Cut(trimmed, "/")
	if !found {
		return ""
	}
	return lang
}

// IsBibleChapterURL reports whether rawURL addresses one chapter of the
// study Bible, e.g. https://wol.jw.org/es/wol/b/r4/lp-s/nwtsty/19/70.
func IsBibleChapterURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if u.Host != BibleChapterHost {
		return false
	}

	parts := strings.Split(u.Path, "/")
	if len(parts) != 9 || parts[0] != "" {
		return false
	}
	if len(parts[1]) != 2 {
		return false
	}
	if !strings.HasPrefix(parts[5], "lp") || parts[6] != "nwtsty" {
		return false
	}
	return isDigits(parts[7]) && isDigits(parts[8])
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
