package protocols

import (
	"context"
	"errors"
	"schanctl/internal/ports"
	"schanctl/internal/types"

	log "github.com/sirupsen/logrus"
)

// SetState applies target to each requested protocol, independently and in
// order. There is no cross-protocol transaction: the first failure halts
// processing and already-applied changes stay in place.
//
// Target Default deletes the entry; deleting an entry that does not exist
// fails with types.ErrNotConfigured so the caller can tell "already Default"
// apart from a real store error. Enabled/Disabled overwrite the flag entry,
// creating intermediate structure as needed.
//
// SetState only mutates the store. The restart-required notice and the
// restart trigger are composed by the caller, so tests and dry callers can
// apply configuration without ever touching a restart primitive.
func SetState(ctx context.Context, store ports.KeyStore, ids []types.Protocol, target types.State) error {
	for _, p := range ids {
		if err := applyOne(ctx, store, p, target); err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"protocol": p.String(),
			"status":   target.String(),
		}).Info("protocol status applied")
	}
	return nil
}

func applyOne(ctx context.Context, store ports.KeyStore, p types.Protocol, target types.State) error {
	path := Path(p)
	if target == types.StateDefault {
		err := store.DeleteKey(ctx, path)
		if errors.Is(err, types.ErrNotFound) {
			return types.Err(types.ErrNotConfigured, nil, "%s has no explicit entry", p)
		}
		if err != nil {
			return types.Err(types.ErrStoreAccess, err, "delete %s", p)
		}
		return nil
	}

	flag, err := target.FlagFor()
	if err != nil {
		return err
	}
	if err := store.SetFlag(ctx, path, flag); err != nil {
		return types.Err(types.ErrStoreAccess, err, "write %s", p)
	}
	return nil
}
