// Package normalizer canonicalizes free-form US address text so that two
// spellings of the same address compare equal byte-for-byte.
package normalizer

import (
	"regexp"
	"strings"
)

var (
	reNonAlnum = regexp.MustCompile(`[^A-Z0-9]`)
	reSpaces   = regexp.MustCompile(`\s+`)

	rules = mustRules()
)

func mustRules() *Rules {
	r, err := LoadRules()
	if err != nil {
		// Embedded data; a failure here is a build defect.
		panic(err)
	}
	return r
}

// Normalize trả về dạng chuẩn hóa của một địa chỉ: uppercase ASCII, không
// dấu câu, viết tắt thống nhất, khoảng trắng đơn.
//
// Empty input yields empty output; the function is pure and idempotent.
//
// Pipeline:
//  1. fold non-ASCII letters to ASCII, uppercase
//  2. full state names -> USPS codes (leading-space bounded, multi-word,
//     applied before punctuation is stripped so the space marker survives)
//  3. every non [A-Z0-9] rune -> space, collapse runs
//  4. state pass again over the collapsed form, so names that punctuation
//     had split ("NEW-YORK") still resolve and the result is a fixpoint
//  5. per-token abbreviation table (STREET -> ST, BOULEVARD -> BLVD, ...)
func Normalize(address string) string {
	if address == "" {
		return ""
	}

	working := strings.ToUpper(foldASCII(address))
	working = replaceStates(" " + working)
	working = reNonAlnum.ReplaceAllString(working, " ")
	working = reSpaces.ReplaceAllString(working, " ")
	working = replaceStates(working)

	fields := strings.Fields(working)
	for i, tok := range fields {
		fields[i] = abbreviate(tok)
	}
	return strings.Join(fields, " ")
}

// replaceStates substitutes " NAME" -> " ABBR" in rule order. Only the
// leading space is required, matching the source system: a state name
// followed by punctuation ("FLORIDA,") is still caught.
func replaceStates(s string) string {
	for _, st := range rules.States {
		s = strings.ReplaceAll(s, " "+st.Name, " "+st.Abbr)
	}
	return s
}

var abbrevByToken = buildAbbrevLookup()

func buildAbbrevLookup() map[string]string {
	m := make(map[string]string, len(rules.Abbreviations))
	for _, ab := range rules.Abbreviations {
		if _, ok := m[ab.From]; !ok {
			m[ab.From] = ab.To
		}
	}
	return m
}

func abbreviate(token string) string {
	if to, ok := abbrevByToken[token]; ok {
		return to
	}
	return token
}
