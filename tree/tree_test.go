package tree_test

import (
	"math/bits"
	"slices"
	"strconv"
	"testing"

	"github.com/KasperOmsK/adtfn"
	"github.com/KasperOmsK/adtfn/tree"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestFold(t *testing.T) {
	node, err := tree.NewNode[int](tree.Empty[int]{}, tree.Leaf[int]{Value: 11})
	require.NoError(t, err)

	s, err := tree.Format[int](node)
	require.NoError(t, err)
	require.Equal(t, "Node(Empty, Leaf(11))", s)

	sum, err := tree.Fold[int](node,
		func() int { return 0 },
		func(v int) int { return v },
		func(l, r int) int { return l + r },
	)
	require.NoError(t, err)
	require.Equal(t, 11, sum)
}

func TestFold_RequiresEveryHandler(t *testing.T) {
	leaf := tree.Tree[int](tree.Leaf[int]{Value: 999})

	// the tree has no Empty, the handler is still required
	_, err := tree.Fold(leaf, nil, func(v int) int { return v }, func(l, r int) int { return l + r })
	var unmatched *adtfn.UnmatchedVariantError
	require.ErrorAs(t, err, &unmatched)
	require.Equal(t, "Empty", unmatched.Variant)

	_, err = tree.Fold(leaf, func() int { return 0 }, func(v int) int { return v }, nil)
	require.ErrorIs(t, err, adtfn.ErrUnmatched)
}

func TestFold_NilSubtree(t *testing.T) {
	_, err := tree.NewNode[int](nil, tree.Empty[int]{})
	require.ErrorIs(t, err, adtfn.ErrInvalidPayload)

	bad := tree.Node[int]{Left: tree.Leaf[int]{Value: 1}}
	_, err = tree.Size[int](bad)
	require.EqualError(t, err, `Tree: no handler for variant "<nil>"`)
}

func TestFold_InfersFromVariant(t *testing.T) {
	n, err := tree.Size(tree.Leaf[int]{Value: 1})
	require.NoError(t, err)
	require.Equal(t, 1, n)

	node, err := tree.NewNode(tree.Tree[string](tree.Empty[string]{}), tree.Leaf[string]{Value: "x"})
	require.NoError(t, err)
	s, err := tree.Format(node)
	require.NoError(t, err)
	require.Equal(t, "Node(Empty, Leaf(x))", s)
}

func TestFold_PointerVariants(t *testing.T) {
	tr := &tree.Node[int]{
		Left:  &tree.Leaf[int]{Value: 1},
		Right: tree.Node[int]{Left: &tree.Empty[int]{}, Right: tree.Leaf[int]{Value: 2}},
	}

	s, err := tree.Format(tr)
	require.NoError(t, err)
	require.Equal(t, "Node(Leaf(1), Node(Empty, Leaf(2)))", s)

	leaves, err := tree.Leaves(tr)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, leaves)

	_, err = tree.Size(tree.Node[int]{Left: (*tree.Leaf[int])(nil), Right: tree.Empty[int]{}})
	require.ErrorIs(t, err, adtfn.ErrUnmatched)
}

func TestMeasures(t *testing.T) {
	tr := tree.FromSlice([]string{"a", "b", "c", "d", "e"})

	n, err := tree.Size(tr)
	require.NoError(t, err)
	require.Equal(t, 5, n)

	d, err := tree.Depth(tr)
	require.NoError(t, err)
	require.Equal(t, 4, d)

	leaves, err := tree.Leaves(tr)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c", "d", "e"}, leaves)

	d, err = tree.Depth(tree.FromSlice[string](nil))
	require.NoError(t, err)
	require.Zero(t, d)
}

func TestMap(t *testing.T) {
	tr := tree.FromSlice([]int{1, 2, 3})

	mapped, err := tree.Map(tr, strconv.Itoa)
	require.NoError(t, err)

	s, err := tree.Format(mapped)
	require.NoError(t, err)
	require.Equal(t, "Node(Leaf(1), Node(Leaf(2), Leaf(3)))", s)
}

func TestProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("FromSlice keeps leaves in order", prop.ForAll(
		func(values []int) bool {
			leaves, err := tree.Leaves(tree.FromSlice(values))
			return err == nil && slices.Equal(leaves, values)
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("size counts leaves", prop.ForAll(
		func(values []int) bool {
			n, err := tree.Size(tree.FromSlice(values))
			return err == nil && n == len(values)
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("FromSlice is balanced", prop.ForAll(
		func(values []int) bool {
			d, err := tree.Depth(tree.FromSlice(values))
			if err != nil {
				return false
			}
			if len(values) <= 1 {
				return d == len(values)
			}
			// ceil(log2(n)) internal levels above the leaves
			return d == bits.Len(uint(len(values)-1))+1
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("Map preserves shape", prop.ForAll(
		func(values []int) bool {
			tr := tree.FromSlice(values)
			mapped, err := tree.Map(tr, func(v int) int { return -v })
			if err != nil {
				return false
			}
			d1, _ := tree.Depth(tr)
			d2, _ := tree.Depth(mapped)
			n1, _ := tree.Size(tr)
			n2, _ := tree.Size(mapped)
			return d1 == d2 && n1 == n2
		},
		gen.SliceOf(gen.Int()),
	))

	properties.TestingRun(t)
}
