package merkle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func leavesFrom(n int) []Hash {
	leaves := make([]Hash, n)
	for i := range leaves {
		leaves[i] = HashLeaf([]byte{byte(i)})
	}
	return leaves
}

func TestTreeProveVerifyRoundTrip(t *testing.T) {
	leaves := leavesFrom(16)
	tree := Build(leaves)
	queries := []int{2, 5, 5, 9, 15}

	proof := tree.Prove(queries)
	opened := make([]Hash, len(queries))
	for i, q := range queries {
		opened[i] = leaves[q]
	}

	require.True(t, Verify(tree.Root(), proof, tree.Depth(), opened, queries))
}

func TestTreeVerifyRejectsWrongLeaf(t *testing.T) {
	leaves := leavesFrom(8)
	tree := Build(leaves)
	queries := []int{1, 4}
	proof := tree.Prove(queries)

	opened := []Hash{leaves[1], HashLeaf([]byte("wrong"))}
	require.False(t, Verify(tree.Root(), proof, tree.Depth(), opened, queries))
}

func TestTreeVerifyRejectsWrongRoot(t *testing.T) {
	leaves := leavesFrom(8)
	tree := Build(leaves)
	queries := []int{0, 3}
	proof := tree.Prove(queries)
	opened := []Hash{leaves[0], leaves[3]}

	var badRoot Hash
	require.False(t, Verify(badRoot, proof, tree.Depth(), opened, queries))
}

func TestTreeVerifyRejectsMalformedProof(t *testing.T) {
	leaves := leavesFrom(8)
	tree := Build(leaves)

	require.False(t, Verify(tree.Root(), nil, tree.Depth(), []Hash{leaves[0]}, []int{0}))
	require.False(t, Verify(tree.Root(), &Proof{}, tree.Depth(), []Hash{leaves[0]}, []int{0}))
	require.False(t, Verify(tree.Root(), &Proof{}, tree.Depth(), nil, nil))
}

func TestTreeSingleQueryEveryIndex(t *testing.T) {
	leaves := leavesFrom(32)
	tree := Build(leaves)
	for i := 0; i < 32; i++ {
		proof := tree.Prove([]int{i})
		require.True(t, Verify(tree.Root(), proof, tree.Depth(), []Hash{leaves[i]}, []int{i}))
	}
}
