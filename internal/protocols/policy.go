package protocols

import (
	"context"
	"os"
	"schanctl/internal/ports"
	"schanctl/internal/types"

	"github.com/goccy/go-yaml"
)

// Policy is a declarative protocol-status document applied in one command.
// Rules apply top to bottom with the same per-protocol independent semantics
// as SetState; a later rule for the same protocol wins.
type Policy struct {
	Rules []PolicyRule `yaml:"rules"`
}

type PolicyRule struct {
	Protocol string `yaml:"protocol"`
	Status   string `yaml:"status"`
}

// LoadPolicy reads and validates a policy YAML file. Every rule is validated
// before anything is applied, so a bad document never reaches a store.
func LoadPolicy(path string) (*Policy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pol Policy
	if err := yaml.Unmarshal(raw, &pol); err != nil {
		return nil, err
	}
	if err := pol.Validate(); err != nil {
		return nil, err
	}
	return &pol, nil
}

func (p *Policy) Validate() error {
	if len(p.Rules) == 0 {
		return types.Err(types.ErrInvalidState, nil, "policy has no rules")
	}
	for _, r := range p.Rules {
		if _, err := types.ParseProtocol(r.Protocol); err != nil {
			return err
		}
		if _, err := types.ParseState(r.Status); err != nil {
			return err
		}
	}
	return nil
}

// Apply runs every rule against the store, halting on the first failure.
// Identical semantics to calling SetState once per rule.
func (p *Policy) Apply(ctx context.Context, store ports.KeyStore) error {
	for _, r := range p.Rules {
		proto, err := types.ParseProtocol(r.Protocol)
		if err != nil {
			return err
		}
		state, err := types.ParseState(r.Status)
		if err != nil {
			return err
		}
		if err := SetState(ctx, store, []types.Protocol{proto}, state); err != nil {
			return err
		}
	}
	return nil
}
