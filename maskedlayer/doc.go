// Package maskedlayer packages a Layer's global position store together
// with a Mask, ready for repeated anchor queries. Construction has two
// modes: Direct (attach a mask to its own layer) and Converse (attach, to a
// source layer, a mask expressed in a target layer's frame — used by
// source-driven connect).
//
// checkMask enforces the Grid-mask/Grid-layer pairing, translates a Grid
// mask into an equivalent Box mask, and guards against an oversized mask
// unless the caller opts in via allowOversized.
//
// Errors:
//
//	ErrGridMaskRequiresGridLayer - a Grid mask was attached to a Free layer.
//	ErrMaskExceedsLayer          - the mask's bbox exceeds the layer's extent
//	                               on a periodic axis and allow_oversized is false.
//	ErrDimensionMismatch         - mask and layer dimensions disagree.
package maskedlayer
