package ports

import "context"

// Publisher fans out audit records for applied configuration changes.
type Publisher interface {
	PublishRaw(ctx context.Context, arn string, payload []byte) error
}
