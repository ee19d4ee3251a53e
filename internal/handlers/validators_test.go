package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGSTINPattern(t *testing.T) {
	valid := []string{
		"27AAPFU0939F1ZV",
		"29AABCU9603R1ZJ",
		"07AABCS1429B1Z1",
	}
	for _, g := range valid {
		assert.True(t, gstinPattern.MatchString(g), "expected %s to be valid", g)
	}

	invalid := []string{
		"",
		"27AAPFU0939F1Z",    // too short
		"27AAPFU0939F1ZVX",  // too long
		"27aapfu0939f1zv",   // lowercase
		"AAAAPFU0939F1ZV",   // state code must be digits
		"27AAPFU0939F0ZV",   // entity number cannot be 0
		"27AAPFU0939F1XV",   // 14th character must be Z
	}
	for _, g := range invalid {
		assert.False(t, gstinPattern.MatchString(g), "expected %s to be invalid", g)
	}
}
