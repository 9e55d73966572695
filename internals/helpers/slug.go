// file: internals/helpers/slug.go
package helper

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reHyphen   = regexp.MustCompile(`-+`)
)

// Slugify turns free text into a [a-z0-9-] slug: compress "-", trim the
// ends, enforce maxLen (default 100 if <= 0), fallback "item". Used for
// export filenames, so two teachers named "Aña" and "Ana" may collapse
// to the same slug — the filename helper adds a uniquifier on top.
func Slugify(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = 100
	}
	s = strings.ToLower(strings.TrimSpace(s))

	s = reNonAlnum.ReplaceAllString(s, "-")
	s = reHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if s == "" {
		s = "item"
	}
	if utf8.RuneCountInString(s) > maxLen {
		rs := []rune(s)
		s = strings.Trim(string(rs[:maxLen]), "-")
	}
	return s
}
