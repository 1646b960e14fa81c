package tools

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// UUIDVersion is a generator choice.
type UUIDVersion int

const (
	UUIDv1 UUIDVersion = iota
	UUIDv4
	UUIDv6
	UUIDv7

	uuidVersionCount
)

var uuidVersionNames = [uuidVersionCount]string{
	UUIDv1: "v1 (time)",
	UUIDv4: "v4 (random)",
	UUIDv6: "v6 (sortable time)",
	UUIDv7: "v7 (unix time)",
}

// UUIDVersionNames returns the selector labels.
func UUIDVersionNames() []string {
	return uuidVersionNames[:]
}

// NewUUIDs generates n UUIDs of version v.
func NewUUIDs(n int, v UUIDVersion) ([]uuid.UUID, error) {
	gen := uuid.NewRandom
	switch v {
	case UUIDv1:
		gen = uuid.NewUUID
	case UUIDv6:
		gen = uuid.NewV6
	case UUIDv7:
		gen = uuid.NewV7
	}

	ids := make([]uuid.UUID, 0, n)
	for k := 0; k < n; k++ {
		id, err := gen()
		if err != nil {
			return nil, fmt.Errorf("generate uuid: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// FormatUUID prints id in the canonical form, optionally without hyphens or
// in uppercase.
func FormatUUID(id uuid.UUID, hyphens, upper bool) string {
	s := id.String()
	if !hyphens {
		s = strings.ReplaceAll(s, "-", "")
	}
	if upper {
		s = strings.ToUpper(s)
	}
	return s
}

// ParseUUIDs reads one UUID per line. Blank lines are skipped; failures
// counts the lines that did not parse.
func ParseUUIDs(text string) (ids []uuid.UUID, failures int) {
	for _, line := range splitLines(text) {
		id, err := uuid.Parse(line)
		if err != nil {
			failures++
			continue
		}
		ids = append(ids, id)
	}
	return ids, failures
}

// NewULIDs generates n ULIDs, monotonic within the same millisecond.
func NewULIDs(n int) []ulid.ULID {
	ids := make([]ulid.ULID, 0, n)
	for k := 0; k < n; k++ {
		ids = append(ids, ulid.Make())
	}
	return ids
}

// FormatULID prints id in Crockford base32.
func FormatULID(id ulid.ULID, upper bool) string {
	s := id.String()
	if !upper {
		s = strings.ToLower(s)
	}
	return s
}

// ParseULIDs reads one ULID per line, like ParseUUIDs.
func ParseULIDs(text string) (ids []ulid.ULID, failures int) {
	for _, line := range splitLines(text) {
		id, err := ulid.ParseStrict(line)
		if err != nil {
			failures++
			continue
		}
		ids = append(ids, id)
	}
	return ids, failures
}

func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
