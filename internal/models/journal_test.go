package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidMood(t *testing.T) {
	for _, m := range Moods {
		assert.True(t, ValidMood(string(m)), "expected %q to be valid", m)
	}

	for _, s := range []string{"", "angry", "Happy", "very happy", "VERY-HAPPY", "calm "} {
		assert.False(t, ValidMood(s), "expected %q to be invalid", s)
	}
}
