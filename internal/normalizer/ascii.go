package normalizer

import (
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripDiacritics loại bỏ dấu (combining marks) một cách an toàn
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	out, _, _ := transform.String(t, s)
	return out
}

// isMn kiểm tra rune có phải combining mark không
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

// foldASCII transliterates the input to plain ASCII. Diacritic stripping
// covers the common Latin cases; unidecode picks up the rest (đ, ß, ...)
// that are not built from combining marks.
func foldASCII(s string) string {
	if isASCII(s) {
		return s
	}
	stripped := StripDiacritics(s)
	if isASCII(stripped) {
		return stripped
	}
	return unidecode.Unidecode(stripped)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
