package proxy

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ReadableName turns an operation name into a sentence:
// shouldBeVisible -> "Should be visible".
func ReadableName(name string) string {
	words := splitCamelCase(capitalize(name))
	if len(words) == 0 {
		return ""
	}
	for i := 1; i < len(words); i++ {
		words[i] = uncapitalize(words[i])
	}
	return strings.Join(words, " ")
}

// setterProperty returns the property of a "set<Property>" operation
func setterProperty(name string) (string, bool) {
	if len(name) <= 3 || !strings.EqualFold(name[:3], "set") {
		return "", false
	}
	return uncapitalize(name[3:]), true
}

type charType int

const (
	charUpper charType = iota
	charLower
	charDigit
	charOther
)

func typeOf(r rune) charType {
	switch {
	case unicode.IsUpper(r):
		return charUpper
	case unicode.IsLower(r):
		return charLower
	case unicode.IsDigit(r):
		return charDigit
	}
	return charOther
}

// splitCamelCase splits on character type changes. An upper case letter
// followed by lower case letters starts a new word, so "HTMLParser" gives
// "HTML", "Parser".
func splitCamelCase(s string) []string {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}

	var words []string
	start := 0
	current := typeOf(runes[0])
	for pos := 1; pos < len(runes); pos++ {
		t := typeOf(runes[pos])
		if t == current {
			continue
		}
		if t == charLower && current == charUpper {
			newStart := pos - 1
			if newStart != start {
				words = append(words, string(runes[start:newStart]))
				start = newStart
			}
		} else {
			words = append(words, string(runes[start:pos]))
			start = pos
		}
		current = t
	}
	return append(words, string(runes[start:]))
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func uncapitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
