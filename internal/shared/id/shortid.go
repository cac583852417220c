package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the default length for generated short IDs
	DefaultLength = 12
)

// Prefixes for different entity types (Stripe-style)
const (
	PrefixOrganization = "org"
	PrefixActivity     = "act"
	PrefixService      = "svc"
	PrefixPlan         = "plan"
	PrefixSubscription = "sub"
	PrefixAnnouncement = "ann"
	PrefixUser         = "usr"
)

// Generate creates a random short ID with the specified length using Base62
// encoding. The generated ID is cryptographically random and URL-safe.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// MustGenerate creates a random short ID and panics on error.
func MustGenerate(length int) string {
	id, err := Generate(length)
	if err != nil {
		panic(err)
	}
	return id
}

// GenerateWithPrefix creates a prefixed ID in the format
// "prefix_randomstring", following the Stripe-style ID pattern.
func GenerateWithPrefix(prefix string, length int) (string, error) {
	id, err := Generate(length)
	if err != nil {
		return "", err
	}
	return prefix + "_" + id, nil
}

// MustGenerateWithPrefix creates a prefixed ID and panics on error.
func MustGenerateWithPrefix(prefix string, length int) string {
	id, err := GenerateWithPrefix(prefix, length)
	if err != nil {
		panic(err)
	}
	return id
}

// ValidatePrefix checks that the given ID carries the expected prefix and a
// non-empty Base62 suffix.
func ValidatePrefix(id, prefix string) error {
	want := prefix + "_"
	if !strings.HasPrefix(id, want) {
		return fmt.Errorf("invalid ID %q: expected prefix %q", id, want)
	}
	suffix := strings.TrimPrefix(id, want)
	if suffix == "" {
		return fmt.Errorf("invalid ID %q: empty suffix", id)
	}
	for _, r := range suffix {
		if !strings.ContainsRune(alphabet, r) {
			return fmt.Errorf("invalid ID %q: illegal character %q", id, r)
		}
	}
	return nil
}
