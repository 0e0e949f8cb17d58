//go:build unit
// +build unit

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToInt(t *testing.T) {
	assert.Equal(t, 30, ConvertToInt("30"))
	assert.Equal(t, 0, ConvertToInt("not-a-number"))
	assert.Equal(t, 0, ConvertToInt(""))
}

func TestParsePenceFromDecimal(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		expected  int64
		shouldErr bool
	}{
		{name: "two fraction digits", value: "12.34", expected: 1234},
		{name: "no fraction", value: "12", expected: 1200},
		{name: "one fraction digit", value: "12.3", expected: 1230},
		{name: "extra fraction digits truncated", value: "12.345", expected: 1234},
		{name: "sub-pound amount", value: "0.1", expected: 10},
		{name: "float-hostile amount", value: "19.99", expected: 1999},
		{name: "negative amount", value: "-5.25", expected: -525},
		{name: "leading plus", value: "+5.25", expected: 525},
		{name: "whitespace", value: " 47.00 ", expected: 4700},
		{name: "empty string", value: "", shouldErr: true},
		{name: "bare dot", value: ".", shouldErr: true},
		{name: "not a number", value: "abc", shouldErr: true},
		{name: "sign inside fraction", value: "12.-3", shouldErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pence, err := ParsePenceFromDecimal(tc.value)
			if tc.shouldErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, pence)
		})
	}
}
