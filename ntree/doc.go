// Package ntree implements an N-dimensional spatial index: a recursive
// subdivision of a Box into 2^D equal children, each leaf holding up to
// leafCapacity (position, value) pairs. It supports ordinary iteration and a
// masked iterator that prunes whole subtrees against a mask.Mask, including
// periodic wrap-around via translated copies of the search anchor.
//
// Construction order never affects lookup semantics: the tree is built by
// inserting points one at a time and splitting leaves that overflow, but
// masked queries see the same set of points regardless of insertion order.
// Deletion is not supported, matching spec usage (a Tree is built once per
// Layer position-cache materialisation and discarded with it).
//
// Errors:
//
//	ErrDimensionMismatch - a Position's dimension does not match the tree's.
//	ErrOutOfBounds       - a Position lies outside the tree's root box on a
//	                       non-periodic axis.
//	ErrInvalidCapacity   - WithLeafCapacity was given a non-positive value.
package ntree
