package pub

import (
	"context"
	"testing"

	schantypes "schanctl/internal/types"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturePublisher struct {
	arn     string
	payload []byte
}

func (c *capturePublisher) PublishRaw(ctx context.Context, arn string, payload []byte) error {
	c.arn = arn
	c.payload = payload
	return nil
}

func TestSnapshotRoundTrip(t *testing.T) {
	in := []schantypes.QueryResult{
		{Protocol: schantypes.SSL30, State: schantypes.StateDisabled},
		{Protocol: schantypes.TLS12, State: schantypes.StateEnabled},
	}
	encoded, err := EncodeSnapshot(in)
	require.NoError(t, err)
	require.NotEmpty(t, encoded)

	out, err := DecodeSnapshot(encoded)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeSnapshotRejectsGarbage(t *testing.T) {
	_, err := DecodeSnapshot("not base64!!")
	assert.Error(t, err)
}

func TestPublishChange(t *testing.T) {
	cp := &capturePublisher{}
	rec := NewChangeRecord(
		[]Change{{Protocol: schantypes.SSL30, Status: schantypes.StateDisabled}},
		[]schantypes.QueryResult{{Protocol: schantypes.SSL30, State: schantypes.StateDisabled}},
	)
	require.NoError(t, PublishChange(context.Background(), cp, "arn:aws:sns:us-east-1:0:audit", rec))

	assert.Equal(t, "arn:aws:sns:us-east-1:0:audit", cp.arn)

	var got ChangeRecord
	require.NoError(t, json.Unmarshal(cp.payload, &got))
	assert.Equal(t, rec.Changes, got.Changes)
	assert.NotZero(t, got.AppliedAt)

	snap, err := DecodeSnapshot(got.Snapshot)
	require.NoError(t, err)
	assert.Equal(t, schantypes.StateDisabled, snap[0].State)
}
