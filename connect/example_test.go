package connect_test

import (
	"fmt"

	"github.com/katalvlaran/fieldwire/connect"
	"github.com/katalvlaran/fieldwire/geom"
	"github.com/katalvlaran/fieldwire/layer"
	"github.com/katalvlaran/fieldwire/mask"
	"github.com/katalvlaran/fieldwire/param"
	"github.com/katalvlaran/fieldwire/rng"
)

// ExampleConnectLayers connects a 3x3 grid to itself with a ball mask,
// rejecting autapses.
func ExampleConnectLayers() {
	ids := make([]layer.NodeID, 9)
	for i := range ids {
		ids[i] = layer.NodeID(i)
	}
	l, err := layer.NewGridLayer(geom.Position{0, 0}, geom.Position{3, 3}, []bool{false, false}, []int{3, 3}, 1, ids)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	ball, err := mask.NewBall(geom.Position{0, 0}, 1.1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	registry := &exampleRegistry{}
	cfg := connect.NewConfig(connect.PairwiseBernoulliOnSource, "static",
		connect.WithMask(ball), connect.WithAllowAutapses(false))
	creator, err := connect.NewCreator(cfg, registry)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	sink := &exampleSink{}
	nm := &exampleNodeManager{}
	if err := connect.ConnectLayers(creator, l, l, nm, sink, rng.NewDefaultProvider(1)); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(sink.edges))
	// Output: 24
}

type exampleNodeManager struct{}

func (exampleNodeManager) IsLocal(layer.NodeID) bool           { return true }
func (exampleNodeManager) GetThread(layer.NodeID) int          { return 0 }
func (exampleNodeManager) GetModelID(layer.NodeID) uint32      { return 0 }
func (exampleNodeManager) LocalNodesOfLayer(l *layer.Layer, _ connect.Selector) []layer.NodeID {
	return l.GIDs
}

type exampleSink struct{ edges []struct{} }

func (s *exampleSink) Connect(src, tgt layer.NodeID, weight, delay float64, model uint32) {
	s.edges = append(s.edges, struct{}{})
}

type exampleRegistry struct{}

func (exampleRegistry) Resolve(name string) (connect.SynapseModel, error) {
	return connect.SynapseModel{ID: 1, Weight: param.NewConstant(1)}, nil
}
