package services

import (
	"fmt"

	"github.com/gosimple/slug"
)

// uniqueSlug derives a URL slug from a title and bumps a numeric suffix
// until the store reports it free. The store's unique index remains the
// final authority; a concurrent insert still surfaces as a conflict.
func uniqueSlug(title string, exists func(string) (bool, error)) (string, error) {
	base := slug.Make(title)
	if base == "" {
		base = "post"
	}

	candidate := base
	for i := 2; ; i++ {
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
