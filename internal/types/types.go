package types

import "fmt"

// Protocol identifies one of the secure-transport protocol versions this tool
// manages. The set is closed; anything else is rejected at the CLI boundary
// and never reaches a store.
type Protocol string

const (
	SSL20 Protocol = "SSL 2.0"
	SSL30 Protocol = "SSL 3.0"
	TLS10 Protocol = "TLS 1.0"
	TLS11 Protocol = "TLS 1.1"
	TLS12 Protocol = "TLS 1.2"
)

// State is the classified server-side enablement of a protocol.
// Default means no explicit entry exists in the store; the effective behavior
// is then whatever the OS ships with.
type State string

const (
	StateDefault  State = "Default"
	StateDisabled State = "Disabled"
	StateEnabled  State = "Enabled"
)

const (
	// FlagDisabled and FlagEnabled are the numeric sentinels persisted in the
	// store's Enabled attribute. Any value other than FlagDisabled reads back
	// as Enabled.
	FlagDisabled uint32 = 0
	FlagEnabled  uint32 = 1
)

// QueryResult pairs a protocol with its classified state. One per requested
// protocol, in request order.
type QueryResult struct {
	Protocol Protocol `json:"protocol"`
	State    State    `json:"state"`
}

// ParseProtocol maps a CLI token to a Protocol. Matching is tolerant of the
// spelled-out form ("SSL 3.0"), the compact form ("ssl30") and the dotted
// form ("tls1.2").
func ParseProtocol(s string) (Protocol, error) {
	switch normalizeToken(s) {
	case "ssl20":
		return SSL20, nil
	case "ssl30":
		return SSL30, nil
	case "tls10":
		return TLS10, nil
	case "tls11":
		return TLS11, nil
	case "tls12":
		return TLS12, nil
	}
	return "", Err(ErrInvalidProtocol, nil, "unknown protocol %q", s)
}

// ParseState maps a CLI token to a State, case-insensitively.
func ParseState(s string) (State, error) {
	switch normalizeToken(s) {
	case "default":
		return StateDefault, nil
	case "disabled":
		return StateDisabled, nil
	case "enabled":
		return StateEnabled, nil
	}
	return "", Err(ErrInvalidState, nil, "unknown status %q", s)
}

func normalizeToken(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			out = append(out, c+('a'-'A'))
		case c == ' ' || c == '.' || c == '-' || c == '_':
			// separators are noise
		default:
			out = append(out, c)
		}
	}
	return string(out)
}

func (p Protocol) String() string { return string(p) }

func (s State) String() string { return string(s) }

// FlagFor returns the numeric sentinel persisted for s. Only valid for
// Enabled and Disabled; Default has no stored representation.
func (s State) FlagFor() (uint32, error) {
	switch s {
	case StateDisabled:
		return FlagDisabled, nil
	case StateEnabled:
		return FlagEnabled, nil
	}
	return 0, fmt.Errorf("state %q has no flag value", s)
}
