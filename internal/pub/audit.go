package pub

import (
	"context"
	"encoding/base64"
	"os"
	"time"

	"schanctl/internal/ports"
	schantypes "schanctl/internal/types"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"
	log "github.com/sirupsen/logrus"
)

// AuditTopicEnvKey names the SNS topic ARN audit records are published to.
// Unset means auditing is off.
const AuditTopicEnvKey = "AUDIT_SNS_ARN"

var enc, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
var dec, _ = zstd.NewReader(nil)

// Change is one applied protocol-status transition.
type Change struct {
	Protocol schantypes.Protocol `json:"protocol"`
	Status   schantypes.State    `json:"status"`
}

// ChangeRecord is the audit payload sent after a successful write. Snapshot
// is the full post-change state of all five protocols, encoded with
// EncodeSnapshot to keep the message small.
type ChangeRecord struct {
	Host      string   `json:"host"`
	AppliedAt int64    `json:"applied_at"`
	Changes   []Change `json:"changes"`
	Snapshot  string   `json:"snapshot,omitempty"`
}

// NewChangeRecord stamps a record with the local hostname and current time.
func NewChangeRecord(changes []Change, snapshot []schantypes.QueryResult) ChangeRecord {
	host, _ := os.Hostname()
	rec := ChangeRecord{
		Host:      host,
		AppliedAt: time.Now().Unix(),
		Changes:   changes,
	}
	if len(snapshot) > 0 {
		if s, err := EncodeSnapshot(snapshot); err == nil {
			rec.Snapshot = s
		} else {
			log.WithError(err).Warn("snapshot encoding failed, sending record without it")
		}
	}
	return rec
}

// PublishChange sends the record to arn as JSON. Audit failures are never
// fatal to the write that triggered them; the caller logs and moves on.
func PublishChange(ctx context.Context, p ports.Publisher, arn string, rec ChangeRecord) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return p.PublishRaw(ctx, arn, b)
}

// EncodeSnapshot encodes the results as JSON, compresses and base64-url encodes them.
func EncodeSnapshot(results []schantypes.QueryResult) (string, error) {
	s, err := json.Marshal(results)
	if err != nil {
		return "", err
	}
	b := enc.EncodeAll(s, make([]byte, 0, len(s)))
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// DecodeSnapshot decodes the base64-url encoded, compressed snapshot back into results.
func DecodeSnapshot(in string) ([]schantypes.QueryResult, error) {
	b, err := base64.RawURLEncoding.DecodeString(in)
	if err != nil {
		return nil, err
	}
	out, err := dec.DecodeAll(b, nil)
	if err != nil {
		return nil, err
	}
	var results []schantypes.QueryResult
	if err := json.Unmarshal(out, &results); err != nil {
		return nil, err
	}
	return results, nil
}
