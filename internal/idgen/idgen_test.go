package idgen

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nanoIDPattern = regexp.MustCompile(`^[0-9a-z]+$`)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		scheme  string
		wantErr bool
	}{
		{name: "default", scheme: ""},
		{name: "nanoid", scheme: SchemeNanoID},
		{name: "uuid", scheme: SchemeUUID},
		{name: "unknown", scheme: "sequential", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := New(tt.scheme)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			id, err := gen.NewID()
			require.NoError(t, err)
			assert.NotEmpty(t, id)
		})
	}
}

func TestNanoID_Format(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	gen := NewNanoID(func() time.Time { return now })

	id, err := gen.NewID()
	require.NoError(t, err)

	prefix := strconv.FormatInt(now.UnixMilli(), 36)
	assert.True(t, strings.HasPrefix(id, prefix), "id %q must start with time part %q", id, prefix)
	assert.Len(t, id, len(prefix)+randomLength)
	assert.Regexp(t, nanoIDPattern, id)
}

func TestNanoID_UniqueWithinSameMillisecond(t *testing.T) {
	// Время заморожено: уникальность обеспечивает только случайная часть
	gen := NewNanoID(func() time.Time { return time.UnixMilli(42) })

	const n = 10000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id, err := gen.NewID()
		require.NoError(t, err)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestUUID_IsVersion7(t *testing.T) {
	id, err := UUID{}.NewID()
	require.NoError(t, err)

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}
