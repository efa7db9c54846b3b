package connect_test

import (
	"github.com/katalvlaran/fieldwire/connect"
	"github.com/katalvlaran/fieldwire/layer"
)

// fakeNodeManager treats every node as local, on thread 0, model 0, unless
// overridden. only, when non-nil, restricts LocalNodesOfLayer to that set.
type fakeNodeManager struct {
	only    map[layer.NodeID]bool
	modelOf map[layer.NodeID]uint32
}

func (f *fakeNodeManager) IsLocal(layer.NodeID) bool { return true }
func (f *fakeNodeManager) GetThread(layer.NodeID) int { return 0 }
func (f *fakeNodeManager) GetModelID(id layer.NodeID) uint32 {
	if f.modelOf == nil {
		return 0
	}
	return f.modelOf[id]
}
func (f *fakeNodeManager) LocalNodesOfLayer(l *layer.Layer, sel connect.Selector) []layer.NodeID {
	var out []layer.NodeID
	for _, id := range l.GIDs {
		if f.only != nil && !f.only[id] {
			continue
		}
		if sel.ModelID != nil && f.GetModelID(id) != *sel.ModelID {
			continue
		}
		out = append(out, id)
	}
	return out
}

// edge is one recorded Sink.Connect call.
type edge struct {
	src, tgt layer.NodeID
	weight   float64
	delay    float64
	model    uint32
}

type fakeSink struct {
	edges []edge
}

func (s *fakeSink) Connect(src, tgt layer.NodeID, weight, delayVal float64, model uint32) {
	s.edges = append(s.edges, edge{src: src, tgt: tgt, weight: weight, delay: delayVal, model: model})
}

type fakeRegistry struct {
	models map[string]connect.SynapseModel
}

func (r *fakeRegistry) Resolve(name string) (connect.SynapseModel, error) {
	m, ok := r.models[name]
	if !ok {
		return connect.SynapseModel{}, connect.ErrUnknownSynapseModel
	}
	return m, nil
}
