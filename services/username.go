package services

import (
	"math/rand"
	"strings"
)

// usernamePrefix derives the fixed part of a generated username: the
// lowercase first four letters of the first name, or "user" when the
// name is empty. Collisions regenerate only the digit suffix.
func usernamePrefix(firstName string) string {
	name := strings.TrimSpace(firstName)
	if name == "" {
		return "user"
	}
	runes := []rune(strings.ToLower(name))
	if len(runes) > 4 {
		runes = runes[:4]
	}
	return string(runes)
}

func randomDigits(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + rand.Intn(10)))
	}
	return b.String()
}

func usernameCandidate(firstName string) string {
	return usernamePrefix(firstName) + randomDigits(4)
}
