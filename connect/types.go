package connect

import (
	"errors"

	"github.com/katalvlaran/fieldwire/mask"
	"github.com/katalvlaran/fieldwire/param"
)

// Sentinel errors for connect operations.
var (
	ErrBadProperty            = errors.New("connect: bad property")
	ErrUnknownSynapseModel    = errors.New("connect: unknown synapse model")
	ErrDimensionMismatch      = errors.New("connect: dimension mismatch")
	ErrInsufficientCandidates = errors.New("connect: insufficient candidates")
	ErrNotLocal               = errors.New("connect: node is not local")
)

// ConnectionType selects the user-facing configuration axis from which
// Strategy is decoded.
type ConnectionType int

const (
	// PairwiseBernoulliOnSource decodes to Convergent (with a connection
	// count) or TargetDriven (without one).
	PairwiseBernoulliOnSource ConnectionType = iota
	// PairwiseBernoulliOnTarget decodes to Divergent (with a connection
	// count) or SourceDriven (without one).
	PairwiseBernoulliOnTarget
)

// Strategy is the decoded connection-generation algorithm.
type Strategy int

const (
	TargetDriven Strategy = iota
	SourceDriven
	Convergent
	Divergent
)

// Config holds the Parsed-state configuration of a ConnectionCreator: user
// flags and parameter/mask references, not yet resolved against a
// SynapseRegistry.
type Config struct {
	ConnectionType      ConnectionType
	NumberOfConnections *uint32
	AllowAutapses       bool
	AllowMultapses      bool
	AllowOversizedMask  bool
	Mask                mask.Mask
	Kernel              param.Parameter
	Weight              param.Parameter
	Delay               param.Parameter
	SynapseModel        string
	SourceFilter        Selector
	TargetFilter        Selector
}

// Option configures a Config at construction time.
type Option func(*Config)

// NewConfig builds a Parsed-state Config. AllowAutapses and AllowMultapses
// default to true, AllowOversizedMask to false.
func NewConfig(connectionType ConnectionType, synapseModel string, opts ...Option) Config {
	c := Config{
		ConnectionType:     connectionType,
		SynapseModel:       synapseModel,
		AllowAutapses:      true,
		AllowMultapses:     true,
		AllowOversizedMask: false,
	}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// WithNumberOfConnections switches the configuration to a fixed-degree
// strategy (Convergent or Divergent, per the decode table).
func WithNumberOfConnections(n uint32) Option {
	return func(c *Config) { c.NumberOfConnections = &n }
}

// WithAllowAutapses overrides the default (true).
func WithAllowAutapses(allow bool) Option {
	return func(c *Config) { c.AllowAutapses = allow }
}

// WithAllowMultapses overrides the default (true).
func WithAllowMultapses(allow bool) Option {
	return func(c *Config) { c.AllowMultapses = allow }
}

// WithAllowOversizedMask overrides the default (false).
func WithAllowOversizedMask(allow bool) Option {
	return func(c *Config) { c.AllowOversizedMask = allow }
}

// WithMask attaches a spatial mask restricting candidates.
func WithMask(m mask.Mask) Option {
	return func(c *Config) { c.Mask = m }
}

// WithKernel attaches a thinning/weighting kernel.
func WithKernel(p param.Parameter) Option {
	return func(c *Config) { c.Kernel = p }
}

// WithWeight overrides the synapse model's default weight.
func WithWeight(p param.Parameter) Option {
	return func(c *Config) { c.Weight = p }
}

// WithDelay overrides the synapse model's default delay.
func WithDelay(p param.Parameter) Option {
	return func(c *Config) { c.Delay = p }
}

// WithSourceFilter restricts which source nodes participate.
func WithSourceFilter(sel Selector) Option {
	return func(c *Config) { c.SourceFilter = sel }
}

// WithTargetFilter restricts which target nodes participate.
func WithTargetFilter(sel Selector) Option {
	return func(c *Config) { c.TargetFilter = sel }
}

// Creator is the Ready-state ConnectionCreator: a decoded strategy plus
// resolved weight/delay parameters, ready to drive ConnectLayers. Built
// once via NewCreator, run once, discarded.
type Creator struct {
	strategy Strategy
	cfg      Config
	model    SynapseModel
	weight   param.Parameter
	delay    param.Parameter
}
