// Package connect implements ConnectionCreator: a configuration object that
// selects one of four connection-generation strategies — target-driven,
// source-driven, fixed in-degree (convergent), fixed out-degree (divergent)
// — and drives it against a (source, target) Layer pair, computing
// displacement, evaluating kernel/weight/delay, sampling nodes, and
// emitting edges to an external Sink.
//
// The core never spawns goroutines itself; a caller that wants
// parallel-by-driver-node execution fans out its own goroutines over its
// NodeManager's locality partition and calls ConnectLayers once per
// partition, each with its own thread id (and therefore its own Rng from
// rng.Provider.GetRNG).
//
// Errors:
//
//	ErrBadProperty            - a static configuration invariant was violated.
//	ErrUnknownSynapseModel    - the synapse model name did not resolve.
//	ErrDimensionMismatch      - source/target layer or mask dimension disagreement.
//	ErrInsufficientCandidates - a fixed-degree strategy could not satisfy its draw.
//	ErrNotLocal               - names a locality-requiring query on a non-local
//	                            node; no strategy in this package returns it.
package connect
