package common

import (
	"go/token"
	"strings"
	"unicode"
)

// initialisms are kept upper case in generated identifiers.
var initialisms = map[string]bool{
	"api": true,
	"id":  true,
	"ip":  true,
	"uid": true,
	"url": true,
}

func words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})
}

func titleWord(word string) string {
	lower := strings.ToLower(word)
	if initialisms[lower] {
		return strings.ToUpper(lower)
	}
	return strings.ToUpper(lower[:1]) + lower[1:]
}

// ToPascalCase converts a snake_case descriptor name into an exported Go
// identifier. Example: "host_banner_url" -> "HostBannerURL".
func ToPascalCase(s string) string {
	var result strings.Builder
	for _, word := range words(s) {
		result.WriteString(titleWord(word))
	}
	return result.String()
}

// ToCamelCase converts a snake_case descriptor name into an unexported Go
// identifier. Example: "server_id" -> "serverID", "id" -> "id".
func ToCamelCase(s string) string {
	ws := words(s)
	if len(ws) == 0 {
		return ""
	}
	var result strings.Builder
	result.WriteString(strings.ToLower(ws[0]))
	for _, word := range ws[1:] {
		result.WriteString(titleWord(word))
	}
	return result.String()
}

// ToSnakeCase converts a Go identifier into snake_case.
func ToSnakeCase(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		isUpper := r >= 'A' && r <= 'Z'

		if i > 0 && isUpper {
			prevIsLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'
			// End of an acronym: "URLValue" -> "url_value".
			nextIsLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if prevIsLower || nextIsLower {
				b.WriteByte('_')
			}
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// Receiver returns the method receiver name used for a generated type.
func Receiver(typeName string) string {
	if typeName == "" {
		return ""
	}
	return strings.ToLower(typeName[:1])
}

// IsIdentifier reports whether name can be used as a Go identifier.
func IsIdentifier(name string) bool {
	return token.IsIdentifier(name)
}
