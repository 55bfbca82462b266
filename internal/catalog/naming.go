package catalog

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ToSnakeCase converts PascalCase to snake_case by inserting an underscore
// before every uppercase rune except the first and lowercasing the result.
// Empty and single-character inputs pass through unchanged apart from case.
func ToSnakeCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)

	for i, r := range name {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// ToPascalCase converts snake_case to PascalCase by capitalizing the first
// rune of every underscore-separated segment.
func ToPascalCase(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	for _, segment := range strings.Split(name, "_") {
		if segment == "" {
			continue
		}
		first, size := utf8.DecodeRuneInString(segment)
		b.WriteRune(unicode.ToUpper(first))
		b.WriteString(strings.ToLower(segment[size:]))
	}

	return b.String()
}

// TitleWords uppercases the first letter of every alphabetic run and
// lowercases the rest, so "image url" becomes "Image Url" and "imageUrl"
// becomes "Imageurl". Used for generated descriptions and event labels.
func TitleWords(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inWord := false
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r):
			b.WriteRune(r)
			inWord = false
		case inWord:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToUpper(r))
			inWord = true
		}
	}

	return b.String()
}
