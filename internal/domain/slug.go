package domain

import (
	"math/rand"
	"strings"
)

// Slugify lowercases the name, collapses every non-alphanumeric run into a
// single dash and trims leading/trailing dashes.
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

const suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// SlugSuffix returns a short random disambiguating suffix. Uniqueness is still
// enforced by the store; callers retry on conflict.
func SlugSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return string(b)
}

// NewEntitySlug derives a URL-safe slug from the entity name plus a random
// 4-character suffix, e.g. "acme-robotics-k3f9".
func NewEntitySlug(name string) string {
	base := Slugify(name)
	if base == "" {
		base = "entity"
	}
	return base + "-" + SlugSuffix(4)
}
