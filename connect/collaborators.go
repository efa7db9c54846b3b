package connect

import (
	"github.com/katalvlaran/fieldwire/layer"
	"github.com/katalvlaran/fieldwire/param"
)

// Selector restricts which nodes of a layer participate, by model id and/or
// grid depth index. A nil field means "no restriction on that axis".
type Selector struct {
	ModelID *uint32
	Depth   *uint32
}

// NodeManager is the external collaborator that knows about process
// locality, thread assignment, and model membership of node ids. The core
// never maintains this information itself.
type NodeManager interface {
	// IsLocal reports whether id is hosted on this process.
	IsLocal(id layer.NodeID) bool
	// GetThread returns the thread id that owns id (for Provider.GetRNG).
	GetThread(id layer.NodeID) int
	// GetModelID returns id's model id, for Selector.ModelID filtering.
	GetModelID(id layer.NodeID) uint32
	// LocalNodesOfLayer returns the locally-hosted node ids of l that pass sel.
	LocalNodesOfLayer(l *layer.Layer, sel Selector) []layer.NodeID
}

// SynapseModel carries a resolved synapse model's default dictionary.
type SynapseModel struct {
	ID       uint32
	Weight   param.Parameter
	HasDelay bool
	Delay    param.Parameter
}

// SynapseRegistry resolves a synapse model name to its id and defaults.
type SynapseRegistry interface {
	// Resolve returns ErrUnknownSynapseModel if name is not registered.
	Resolve(name string) (SynapseModel, error)
}

// Sink is the side-effecting collaborator that receives emitted edges. It
// may silently drop edges whose target is non-local; idempotency is not
// required of it.
type Sink interface {
	Connect(src, tgt layer.NodeID, weight, delay float64, synapseModel uint32)
}
