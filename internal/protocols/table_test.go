package protocols

import (
	"schanctl/internal/types"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllCanonicalOrder(t *testing.T) {
	assert.Equal(t, []types.Protocol{
		types.SSL20, types.SSL30, types.TLS10, types.TLS11, types.TLS12,
	}, All())
}

func TestPathTotalAndInjective(t *testing.T) {
	seen := map[string]types.Protocol{}
	for _, p := range All() {
		path := Path(p)
		require.NotEmpty(t, path)
		assert.True(t, strings.HasPrefix(path, Root+"/"))
		assert.True(t, strings.HasSuffix(path, "/Server"))
		if prev, dup := seen[path]; dup {
			t.Fatalf("path %q shared by %s and %s", path, prev, p)
		}
		seen[path] = p
	}
	assert.Len(t, seen, 5)
}

func TestParseAllKeepsOrderAndDuplicates(t *testing.T) {
	got, err := ParseAll([]string{"tls12", "ssl30", "tls12"})
	require.NoError(t, err)
	assert.Equal(t, []types.Protocol{types.TLS12, types.SSL30, types.TLS12}, got)
}

func TestParseAllRejectsUnknown(t *testing.T) {
	_, err := ParseAll([]string{"ssl30", "tls13"})
	assert.ErrorIs(t, err, types.ErrInvalidProtocol)
}
