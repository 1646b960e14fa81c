package msg

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// PageID identifies one of the registered tools.
type PageID int

const (
	PageUUID PageID = iota
	PageULID
	PageBase64
	PageURL
	PageHash
	PageUnixTime
	PageNumberBase

	pageCount
)

var pageInfo = [pageCount]struct {
	label string
	name  string
}{
	PageUUID:       {"UUID", "uuid"},
	PageULID:       {"ULID", "ulid"},
	PageBase64:     {"Base64", "base64"},
	PageURL:        {"URL encode", "url"},
	PageHash:       {"Hash", "hash"},
	PageUnixTime:   {"Unix time", "unixtime"},
	PageNumberBase: {"Number base", "numberbase"},
}

// AllPages returns every registered page in list order.
func AllPages() []PageID {
	ids := make([]PageID, 0, pageCount)
	for id := PageID(0); id < pageCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Valid reports whether p is a registered page.
func (p PageID) Valid() bool {
	return p >= 0 && p < pageCount
}

// String returns the label shown in the page list.
func (p PageID) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Page(%d)", int(p))
	}
	return pageInfo[p].label
}

// Name returns the identifier used in config files and flags.
func (p PageID) Name() string {
	if !p.Valid() {
		return ""
	}
	return pageInfo[p].name
}

// ParsePageID resolves a page by its Name, case-insensitively.
func ParsePageID(name string) (PageID, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for id := PageID(0); id < pageCount; id++ {
		if pageInfo[id].name == name {
			return id, nil
		}
	}
	if s, ok := Suggest(name); ok {
		return 0, fmt.Errorf("unknown page %q, did you mean %q?", name, s.Name())
	}
	return 0, fmt.Errorf("unknown page %q", name)
}

// maxSuggestDistance is the largest edit distance Suggest accepts.
const maxSuggestDistance = 2

// Suggest returns the page whose name is closest to name, if any is within
// two edits. Ties go to the earlier page.
func Suggest(name string) (PageID, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	best, bestDist := PageID(0), maxSuggestDistance+1
	for id := PageID(0); id < pageCount; id++ {
		if d := levenshtein.ComputeDistance(name, pageInfo[id].name); d < bestDist {
			best, bestDist = id, d
		}
	}
	return best, bestDist <= maxSuggestDistance
}
