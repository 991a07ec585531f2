// Package password wraps bcrypt hashing for stored credentials.
package password

import "golang.org/x/crypto/bcrypt"

// DefaultCost is the bcrypt work factor used unless configuration overrides
// it. 10 keeps login latency reasonable while staying expensive to brute-force.
const DefaultCost = 10

type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns a self-describing bcrypt hash (salt and cost embedded).
func (h *Hasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Check reports whether plaintext matches the stored hash. A mismatch is a
// normal false result, never an error. Comparison is constant-time inside
// bcrypt; hashes must never be compared as plain strings.
func (h *Hasher) Check(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
