package intel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/buattool/ipintel/intel"
)

func TestIsIP(t *testing.T) {
	testData := map[string]bool{
		"8.8.8.8":              true,
		"1.0.0.1":              true,
		"255.255.255.255":      true,
		"::1":                  true,
		"2606:4700:4700::1111": true,
		"fe80::1%eth0":         false,
		"256.1.1.1":            false,
		"1.1.1":                false,
		"8.8.8.8.":             false,
		"example.com":          false,
		"":                     false,
		" 8.8.8.8":             false,
	}

	for value, expected := range testData {
		value := value
		expected := expected

		t.Run(value, func(t *testing.T) {
			assert.Equal(t, expected, intel.IsIP(value))
		})
	}
}
