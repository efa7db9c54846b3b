package connect

import (
	"fmt"

	"github.com/katalvlaran/fieldwire/layer"
	"github.com/katalvlaran/fieldwire/rng"
)

// ConnectLayers drives c's decoded strategy against the (source, target)
// layer pair, consulting nm for locality/thread/model queries and emitting
// every generated edge to sink. It runs synchronously to completion; a
// caller that wants driver-node parallelism fans out its own goroutines
// over disjoint locality partitions, each with its own thread id.
func ConnectLayers(c *Creator, source, target *layer.Layer, nm NodeManager, sink Sink, provider rng.Provider) error {
	if source.Dim() != target.Dim() {
		return fmt.Errorf("%w: source has dim %d, target has dim %d", ErrDimensionMismatch, source.Dim(), target.Dim())
	}

	switch c.strategy {
	case TargetDriven:
		return runTargetDriven(c, source, target, nm, sink, provider)
	case SourceDriven:
		return runSourceDriven(c, source, target, nm, sink, provider)
	case Convergent:
		return runConvergent(c, source, target, nm, sink, provider)
	case Divergent:
		return runDivergent(c, source, target, nm, sink, provider)
	default:
		return fmt.Errorf("%w: unknown strategy %d", ErrBadProperty, c.strategy)
	}
}
