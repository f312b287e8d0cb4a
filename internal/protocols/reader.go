package protocols

import (
	"context"
	"errors"
	"schanctl/internal/ports"
	"schanctl/internal/types"
)

// GetState classifies the server-side enablement of each requested protocol.
// An empty request means all five, canonical order. Duplicates are resolved
// independently and results come back in request order, one per input.
//
// Absence of an entry is the expected Default case. Any other store failure
// aborts the whole read; no partial results are returned.
func GetState(ctx context.Context, store ports.KeyStore, ids []types.Protocol) ([]types.QueryResult, error) {
	if len(ids) == 0 {
		ids = All()
	}
	results := make([]types.QueryResult, 0, len(ids))
	for _, p := range ids {
		flag, err := store.GetFlag(ctx, Path(p))
		var state types.State
		switch {
		case errors.Is(err, types.ErrNotFound):
			state = types.StateDefault
		case err != nil:
			return nil, types.Err(types.ErrStoreAccess, err, "read %s", p)
		case flag == types.FlagDisabled:
			state = types.StateDisabled
		default:
			state = types.StateEnabled
		}
		results = append(results, types.QueryResult{Protocol: p, State: state})
	}
	return results, nil
}
