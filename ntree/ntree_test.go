package ntree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fieldwire/geom"
	"github.com/katalvlaran/fieldwire/mask"
	"github.com/katalvlaran/fieldwire/ntree"
)

func newTestTree(t *testing.T, leafCapacity int) *ntree.Tree[int] {
	t.Helper()
	box := geom.Box{LowerLeft: geom.Position{0, 0}, UpperRight: geom.Position{10, 10}}
	tr, err := ntree.NewTree[int](box, []bool{false, false}, ntree.WithLeafCapacity(leafCapacity))
	require.NoError(t, err)
	return tr
}

func TestInsertAndAll(t *testing.T) {
	tr := newTestTree(t, 100)
	pts := []geom.Position{{1, 1}, {2, 2}, {9, 9}, {5, 5}}
	for i, p := range pts {
		require.NoError(t, tr.Insert(p, i))
	}
	require.Equal(t, len(pts), tr.Len())

	seen := map[int]bool{}
	for _, v := range tr.All() {
		seen[v] = true
	}
	require.Len(t, seen, len(pts))
}

func TestInsertOutOfBounds(t *testing.T) {
	tr := newTestTree(t, 100)
	err := tr.Insert(geom.Position{-1, 0}, 0)
	require.ErrorIs(t, err, ntree.ErrOutOfBounds)
}

func TestInsertDimensionMismatch(t *testing.T) {
	tr := newTestTree(t, 100)
	err := tr.Insert(geom.Position{1, 1, 1}, 0)
	require.ErrorIs(t, err, ntree.ErrDimensionMismatch)
}

func TestSplitPreservesAllPoints(t *testing.T) {
	tr := newTestTree(t, 4) // small leaf capacity forces many splits
	const n = 500
	for i := 0; i < n; i++ {
		x := float64(i%10) + 0.5
		y := float64((i/10)%10) + 0.5
		require.NoError(t, tr.Insert(geom.Position{x, y}, i))
	}
	require.Equal(t, n, tr.Len())

	count := 0
	for range tr.All() {
		count++
	}
	require.Equal(t, n, count)
}

func TestMaskedIteratorMatchesBallMembership(t *testing.T) {
	tr := newTestTree(t, 8)
	const n = 200
	for i := 0; i < n; i++ {
		x := float64(i % 10)
		y := float64((i / 10) % 10)
		require.NoError(t, tr.Insert(geom.Position{x, y}, i))
	}

	ball, err := mask.NewBall(geom.Position{0, 0}, 3)
	require.NoError(t, err)
	anchor := geom.Position{5, 5}

	got := map[int]bool{}
	for _, v := range tr.MaskedIterator(ball, anchor) {
		got[v] = true
	}

	want := map[int]bool{}
	for i := 0; i < n; i++ {
		x := float64(i % 10)
		y := float64((i / 10) % 10)
		d, err := geom.Sub(geom.Position{x, y}, anchor)
		require.NoError(t, err)
		inside, err := ball.Inside(d)
		require.NoError(t, err)
		if inside {
			want[i] = true
		}
	}
	require.Equal(t, want, got)
}

func TestMaskedIteratorEarlyStop(t *testing.T) {
	tr := newTestTree(t, 100)
	for i := 0; i < 50; i++ {
		require.NoError(t, tr.Insert(geom.Position{float64(i % 10), float64(i / 10)}, i))
	}

	n := 0
	for range tr.MaskedIterator(mask.NewAll(2), geom.Position{0, 0}) {
		n++
		if n == 3 {
			break
		}
	}
	require.Equal(t, 3, n)
}

func TestMaskedIteratorPeriodicWrap(t *testing.T) {
	box := geom.Box{LowerLeft: geom.Position{0, 0}, UpperRight: geom.Position{10, 10}}
	tr, err := ntree.NewTree[int](box, []bool{true, false})
	require.NoError(t, err)
	// Point near the high edge of the periodic axis; a ball anchored near
	// the low edge should reach it through the wrap.
	require.NoError(t, tr.Insert(geom.Position{9.5, 5}, 1))

	ball, err := mask.NewBall(geom.Position{0, 0}, 1)
	require.NoError(t, err)

	got := map[int]bool{}
	for _, v := range tr.MaskedIterator(ball, geom.Position{0.0, 5}) {
		got[v] = true
	}
	require.True(t, got[1])
}
