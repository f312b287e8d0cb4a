package protocols

import (
	"context"
	"os"
	"path/filepath"
	"schanctl/internal/backends/memory"
	"schanctl/internal/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePolicy(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.yml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}

func TestLoadPolicy(t *testing.T) {
	path := writePolicy(t, `
rules:
  - protocol: SSL 3.0
    status: Disabled
  - protocol: tls12
    status: enabled
`)
	pol, err := LoadPolicy(path)
	require.NoError(t, err)
	assert.Len(t, pol.Rules, 2)
}

func TestLoadPolicyRejectsUnknownProtocol(t *testing.T) {
	path := writePolicy(t, `
rules:
  - protocol: TLS 1.3
    status: Enabled
`)
	_, err := LoadPolicy(path)
	assert.ErrorIs(t, err, types.ErrInvalidProtocol)
}

func TestLoadPolicyRejectsEmptyDocument(t *testing.T) {
	path := writePolicy(t, "rules: []\n")
	_, err := LoadPolicy(path)
	assert.Error(t, err)
}

func TestPolicyApply(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	path := writePolicy(t, `
rules:
  - protocol: SSL 2.0
    status: Disabled
  - protocol: SSL 3.0
    status: Disabled
  - protocol: TLS 1.2
    status: Enabled
`)
	pol, err := LoadPolicy(path)
	require.NoError(t, err)
	require.NoError(t, pol.Apply(ctx, store))

	results, err := GetState(ctx, store, nil)
	require.NoError(t, err)
	assert.Equal(t, types.StateDisabled, results[0].State)
	assert.Equal(t, types.StateDisabled, results[1].State)
	assert.Equal(t, types.StateDefault, results[2].State)
	assert.Equal(t, types.StateDefault, results[3].State)
	assert.Equal(t, types.StateEnabled, results[4].State)
}

func TestPolicyApplyLastRuleWins(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	path := writePolicy(t, `
rules:
  - protocol: TLS 1.0
    status: Enabled
  - protocol: TLS 1.0
    status: Disabled
`)
	pol, err := LoadPolicy(path)
	require.NoError(t, err)
	require.NoError(t, pol.Apply(ctx, store))

	results, err := GetState(ctx, store, []types.Protocol{types.TLS10})
	require.NoError(t, err)
	assert.Equal(t, types.StateDisabled, results[0].State)
}
