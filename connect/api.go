package connect

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fieldwire/param"
)

// NewCreator decodes cfg's Strategy, resolves its synapse model against
// registry, and fills in weight/delay defaults, producing a
// Ready-state Creator. This is the only public constructor: there is no
// separate "Parsed" value exposed to callers, cfg itself plays that role.
func NewCreator(cfg Config, registry SynapseRegistry) (*Creator, error) {
	strategy, err := decodeStrategy(cfg)
	if err != nil {
		return nil, err
	}

	model, err := registry.Resolve(cfg.SynapseModel)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSynapseModel, cfg.SynapseModel)
	}

	weight := cfg.Weight
	if weight == nil {
		weight = model.Weight
	}
	if weight == nil {
		return nil, fmt.Errorf("%w: synapse model %q has no default weight and none was supplied", ErrBadProperty, cfg.SynapseModel)
	}

	delay := cfg.Delay
	if delay == nil {
		delay = model.Delay
	}
	if delay == nil {
		if model.HasDelay {
			return nil, fmt.Errorf("%w: synapse model %q declares a delay but has no default", ErrBadProperty, cfg.SynapseModel)
		}
		delay = param.NewConstant(math.NaN())
	}

	return &Creator{
		strategy: strategy,
		cfg:      cfg,
		model:    model,
		weight:   weight,
		delay:    delay,
	}, nil
}

// decodeStrategy selects exactly one Strategy from ConnectionType together
// with the presence of NumberOfConnections.
func decodeStrategy(cfg Config) (Strategy, error) {
	switch cfg.ConnectionType {
	case PairwiseBernoulliOnSource:
		if cfg.NumberOfConnections != nil {
			return Convergent, nil
		}
		return TargetDriven, nil
	case PairwiseBernoulliOnTarget:
		if cfg.NumberOfConnections != nil {
			return Divergent, nil
		}
		return SourceDriven, nil
	default:
		return 0, fmt.Errorf("%w: unknown connection type %d", ErrBadProperty, cfg.ConnectionType)
	}
}
