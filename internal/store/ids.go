package store

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
)

// newRandomID returns prefix-<suffix> where suffix is 8 chars of base32
// (lowercase, no padding). 8 chars base32 ~= 40 bits of space, which is
// collision-resistant enough for a local task collection; uniqueness is
// still verified against the loaded DB before use.
func newRandomID(prefix string) (string, error) {
	var b [5]byte // 40 bits -> 8 base32 chars
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	suffix := strings.ToLower(enc.EncodeToString(b[:]))
	return prefix + "-" + suffix, nil
}

func idExists(db *DB, id string) bool {
	for _, t := range db.Tasks {
		if t.ID == id {
			return true
		}
	}
	return false
}

// NextID produces a fresh unique id for the given prefix.
func (s Store) NextID(db *DB, prefix string) string {
	const maxAttempts = 10
	for i := 0; i < maxAttempts; i++ {
		id, err := newRandomID(prefix)
		if err != nil {
			break
		}
		if !idExists(db, id) {
			return id
		}
	}
	// Extremely unlikely fallback: sequential suffix keyed off collection size.
	n := len(db.Tasks) + 1
	for {
		id := fmt.Sprintf("%s-%d", prefix, n)
		if !idExists(db, id) {
			return id
		}
		n++
	}
}
