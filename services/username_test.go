package services

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsernamePrefix(t *testing.T) {
	assert.Equal(t, "dana", usernamePrefix("Danaryya"))
	assert.Equal(t, "dan", usernamePrefix("Dan"))
	assert.Equal(t, "user", usernamePrefix(""))
	assert.Equal(t, "user", usernamePrefix("   "))
	assert.Equal(t, "anaï", usernamePrefix("Anaïs"))
}

func TestUsernameCandidate(t *testing.T) {
	pattern := regexp.MustCompile(`^dana\d{4}$`)
	for i := 0; i < 50; i++ {
		candidate := usernameCandidate("Danaryya")
		assert.Regexp(t, pattern, candidate)
	}
}

func TestRandomDigitsLength(t *testing.T) {
	assert.Len(t, randomDigits(4), 4)
	assert.Regexp(t, `^\d{6}$`, randomDigits(6))
}
