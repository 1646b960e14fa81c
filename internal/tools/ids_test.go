package tools

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUIDs(t *testing.T) {
	tests := []struct {
		version UUIDVersion
		want    uuid.Version
	}{
		{UUIDv1, 1},
		{UUIDv4, 4},
		{UUIDv6, 6},
		{UUIDv7, 7},
	}

	for _, tt := range tests {
		t.Run(UUIDVersionNames()[tt.version], func(t *testing.T) {
			ids, err := NewUUIDs(3, tt.version)
			require.NoError(t, err)
			require.Len(t, ids, 3)
			for _, id := range ids {
				assert.Equal(t, tt.want, id.Version())
			}
			assert.NotEqual(t, ids[0], ids[1])
		})
	}
}

func TestFormatUUID(t *testing.T) {
	id := uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e")

	assert.Equal(t, "0f8fad5b-d9cb-469f-a165-70867728950e", FormatUUID(id, true, false))
	assert.Equal(t, "0F8FAD5B-D9CB-469F-A165-70867728950E", FormatUUID(id, true, true))
	assert.Equal(t, "0f8fad5bd9cb469fa16570867728950e", FormatUUID(id, false, false))
}

func TestParseUUIDs(t *testing.T) {
	text := "0f8fad5b-d9cb-469f-a165-70867728950e\n\nnot-a-uuid\n0F8FAD5BD9CB469FA16570867728950E\r\nzzz\n"

	ids, failures := ParseUUIDs(text)

	assert.Len(t, ids, 2)
	assert.Equal(t, ids[0], ids[1])
	assert.Equal(t, 2, failures)
}

func TestULIDs(t *testing.T) {
	ids := NewULIDs(5)
	require.Len(t, ids, 5)

	for i := 1; i < len(ids); i++ {
		assert.Equal(t, -1, ids[i-1].Compare(ids[i]), "ulids are monotonic")
	}

	upper := FormatULID(ids[0], true)
	assert.Len(t, upper, 26)
	assert.Equal(t, strings.ToLower(upper), FormatULID(ids[0], false))

	parsed, failures := ParseULIDs(strings.ToLower(upper) + "\ninvalid\n" + upper)
	assert.Equal(t, 1, failures)
	require.Len(t, parsed, 2)
	assert.Equal(t, ids[0], parsed[0])
	assert.Equal(t, ids[0], parsed[1])
}
