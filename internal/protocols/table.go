package protocols

import "schanctl/internal/types"

const (
	// Root is the fixed prefix under which every protocol's server-side
	// configuration entry lives. Backends translate separators as needed;
	// on Windows this resolves under HKEY_LOCAL_MACHINE.
	Root = "SYSTEM/CurrentControlSet/Control/SecurityProviders/SCHANNEL/Protocols"

	// serverLeaf scopes the entry to the server role. Client-side (outbound)
	// enablement lives under a sibling leaf and is out of scope here.
	serverLeaf = "Server"
)

// order is the canonical enumeration order, oldest protocol first.
var order = []types.Protocol{
	types.SSL20,
	types.SSL30,
	types.TLS10,
	types.TLS11,
	types.TLS12,
}

// All returns the five managed protocols in canonical order. The returned
// slice is a fresh copy; callers may reorder it.
func All() []types.Protocol {
	out := make([]types.Protocol, len(order))
	copy(out, order)
	return out
}

// Path resolves the store path of a protocol's server-side entry. Total over
// the closed enumeration; the human-readable protocol name is the path
// component, as the OS layout prescribes.
func Path(p types.Protocol) string {
	return Root + "/" + string(p) + "/" + serverLeaf
}

// ParseAll maps CLI tokens to protocols, preserving order and duplicates.
// The first unknown token aborts the whole parse.
func ParseAll(tokens []string) ([]types.Protocol, error) {
	out := make([]types.Protocol, 0, len(tokens))
	for _, tok := range tokens {
		p, err := types.ParseProtocol(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
