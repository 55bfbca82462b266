package catalog

import (
	"fmt"
	"strings"
)

// typeSynonyms maps accepted type tokens (lowercased) to canonical kinds
var typeSynonyms = map[string]PropertyType{
	"string":  TypeString,
	"str":     TypeString,
	"number":  TypeNumber,
	"num":     TypeNumber,
	"double":  TypeNumber,
	"float":   TypeNumber,
	"int":     TypeInteger,
	"integer": TypeInteger,
	"bool":    TypeBoolean,
	"boolean": TypeBoolean,
}

// ParseProperties parses a comma-separated list of name:type tokens like
// "title:string,price:number,imageUrl:string?" into an ordered property list.
// A trailing ? marks the property optional. Tokens without a colon are
// skipped rather than rejected, and unrecognized types resolve to string,
// so malformed input never aborts generation.
func ParseProperties(input string) []Property {
	if strings.TrimSpace(input) == "" {
		return nil
	}

	var properties []Property
	for _, token := range strings.Split(input, ",") {
		token = strings.TrimSpace(token)

		name, typeToken, ok := strings.Cut(token, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		typeToken = strings.TrimSpace(typeToken)

		optional := strings.HasSuffix(typeToken, "?")
		if optional {
			typeToken = strings.TrimSuffix(typeToken, "?")
		}

		properties = append(properties, Property{
			Name:        name,
			Type:        ResolveType(typeToken),
			Optional:    optional,
			Description: TitleWords(strings.ReplaceAll(name, "_", " ")),
		})
	}

	return properties
}

// ResolveType maps a type token to a canonical kind. Matching is
// case-insensitive and unknown tokens fall back to string.
func ResolveType(token string) PropertyType {
	if t, ok := typeSynonyms[strings.ToLower(token)]; ok {
		return t
	}
	return TypeString
}

// ParseNameList splits a comma-separated list of names, trimming
// surrounding whitespace. An empty input yields nil.
func ParseNameList(input string) []string {
	if strings.TrimSpace(input) == "" {
		return nil
	}

	parts := strings.Split(input, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		names = append(names, strings.TrimSpace(part))
	}
	return names
}

// ValidateRequired checks that every required name refers to a declared
// property. The default generation path does not call this; it backs the
// opt-in strict mode.
func ValidateRequired(properties []Property, required []string) error {
	declared := make(map[string]bool, len(properties))
	for _, p := range properties {
		declared[p.Name] = true
	}

	var unknown []string
	for _, name := range required {
		if !declared[name] {
			unknown = append(unknown, name)
		}
	}

	if len(unknown) > 0 {
		return fmt.Errorf("required names not declared as properties: %s", strings.Join(unknown, ", "))
	}
	return nil
}
