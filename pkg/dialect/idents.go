package dialect

import (
	"strings"
	"unicode"
)

// Returns true if the first rune of text is an uppercase letter
func StartsUpper(text string) bool {
	for _, r := range text {
		return unicode.IsUpper(r)
	}

	return false
}

// Uppercases every letter that follows a non-letter and lowercases the rest
func titleCase(text string) string {
	var b strings.Builder
	previousIsLetter := false

	for _, r := range text {
		if unicode.IsLetter(r) {
			if previousIsLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			previousIsLetter = true
		} else {
			b.WriteRune(r)
			previousIsLetter = false
		}
	}

	return b.String()
}

func alphanumeric(text string) []rune {
	runes := make([]rune, 0, len(text))

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			runes = append(runes, r)
		}
	}

	return runes
}

func firstRune(text string) rune {
	for _, r := range text {
		return r
	}

	return 0
}

// Converts a tag like "Type-Declaration" into "typeDeclaration"
func CamelCase(text string) string {
	if text == "" {
		return ""
	}

	rest := alphanumeric(titleCase(text))
	if len(rest) > 0 {
		rest = rest[1:]
	}

	return string(unicode.ToLower(firstRune(text))) + string(rest)
}

// Converts a tag like "Type-Declaration" into "TypeDeclaration". Only the first rune changes case
func PascalCase(text string) string {
	if text == "" {
		return ""
	}

	rest := alphanumeric(text)
	if len(rest) > 0 {
		rest = rest[1:]
	}

	return string(unicode.ToUpper(firstRune(text))) + string(rest)
}
