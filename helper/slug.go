package helper

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9-]+`)
	multiHyphen     = regexp.MustCompile(`-{2,}`)
)

// Slugify converts an arbitrary Unicode string into a URL-safe ASCII slug:
// accents are decomposed and stripped, everything is lowercased, and any
// run of non-alphanumeric characters collapses into a single hyphen.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	result = strings.ToLower(result)

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, result)

	result = nonAlphanumeric.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}

// GenerateReadableSlug builds the public identifier for a catalog record:
// the slugified name plus a 6-hex-char token derived from the name and
// the current time, so two records with the same name never collide.
func GenerateReadableSlug(name string) string {
	return GenerateReadableSlugAt(name, time.Now())
}

func GenerateReadableSlugAt(name string, now time.Time) string {
	sum := md5.Sum([]byte(name + strconv.FormatInt(now.UnixNano(), 10)))
	hash := hex.EncodeToString(sum[:])[:6]
	return Slugify(name) + "-" + hash
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
