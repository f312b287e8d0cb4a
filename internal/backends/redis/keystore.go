// Package redis keeps protocol flag entries in Redis, one key per store path.
// Useful as a central desired-state store for a fleet and as the integration
// test backend. Paths are embedded verbatim in the key name.
package redis

import (
	"context"
	"errors"
	"fmt"
	"schanctl/internal/types"
	"strconv"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const (
	flagKeyNameTemplate = "_schanctl_flag_%s"
	flagKeyScanPattern  = "_schanctl_flag_*"
)

type KeyStore struct {
	cli *redis.Client
}

func NewKeyStore(cli *redis.Client) *KeyStore {
	return &KeyStore{cli: cli}
}

func (s *KeyStore) GetFlag(ctx context.Context, path string) (uint32, error) {
	out := s.cli.Get(ctx, getFlagKey(path))
	if out.Err() != nil {
		if errors.Is(out.Err(), redis.Nil) {
			return 0, types.ErrNotFound
		}
		return 0, out.Err()
	}
	v, err := strconv.ParseUint(out.Val(), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid flag value %q: %w", out.Val(), err)
	}
	return uint32(v), nil
}

func (s *KeyStore) SetFlag(ctx context.Context, path string, value uint32) error {
	out := s.cli.Set(ctx, getFlagKey(path), strconv.FormatUint(uint64(value), 10), 0)
	return out.Err()
}

func (s *KeyStore) DeleteKey(ctx context.Context, path string) error {
	out := s.cli.Del(ctx, getFlagKey(path))
	if out.Err() != nil {
		return out.Err()
	}
	if out.Val() == 0 {
		return types.ErrNotFound
	}
	return nil
}

func (s *KeyStore) ClearAll(ctx context.Context) error {
	out := s.cli.Keys(ctx, flagKeyScanPattern)
	if out.Err() != nil {
		return out.Err()
	}
	keys := out.Val()
	if len(keys) == 0 {
		return nil
	}
	outDel := s.cli.Del(ctx, keys...)
	if outDel.Err() != nil {
		log.Error(outDel.Err())
	}
	return outDel.Err()
}

func getFlagKey(path string) string {
	return fmt.Sprintf(flagKeyNameTemplate, path)
}
