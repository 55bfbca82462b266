package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSnakeCase(t *testing.T) {
	// Test: PascalCase and camelCase convert to snake_case
	tests := []struct {
		in   string
		want string
	}{
		{"ProductCard", "product_card"},
		{"RatingStar", "rating_star"},
		{"imageUrl", "image_url"},
		{"BookingForm", "booking_form"},
		{"Simple", "simple"},
		{"lower", "lower"},
		{"X", "x"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ToSnakeCase(tt.in))
		})
	}
}

func TestToPascalCase(t *testing.T) {
	// Test: snake_case converts to PascalCase
	tests := []struct {
		in   string
		want string
	}{
		{"product_card", "ProductCard"},
		{"rating_star", "RatingStar"},
		{"simple", "Simple"},
		{"x", "X"},
		{"", ""},
		{"double__underscore", "DoubleUnderscore"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ToPascalCase(tt.in))
		})
	}
}

func TestNamingRoundTrip(t *testing.T) {
	// Test: snake -> pascal -> snake is the identity for lowercase word identifiers
	inputs := []string{"product_card", "rating_star", "booking_form", "a", "two_part_name"}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, in, ToSnakeCase(ToPascalCase(in)))
		})
	}
}

func TestTitleWords(t *testing.T) {
	// Test: First letter of each alphabetic run uppercased, rest lowered
	tests := []struct {
		in   string
		want string
	}{
		{"rating changed", "Rating Changed"},
		{"imageUrl", "Imageurl"},
		{"check in date", "Check In Date"},
		{"abc3de", "Abc3De"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleWords(tt.in))
		})
	}
}
