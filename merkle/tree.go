package merkle

import "sort"

// Tree is a balanced binary Merkle tree over a power-of-two leaf count.
// levels[0] holds the leaves, levels[len(levels)-1] the single root.
type Tree struct {
	levels [][]Hash
	depth  int
}

// Build constructs a tree from 2^d leaves.
func Build(leaves []Hash) *Tree {
	n := len(leaves)
	if n == 0 || n&(n-1) != 0 {
		panic("merkle: leaf count must be a positive power of two")
	}
	depth := 0
	for (1 << depth) < n {
		depth++
	}
	levels := make([][]Hash, depth+1)
	cur := make([]Hash, n)
	copy(cur, leaves)
	levels[0] = cur
	for d := 0; d < depth; d++ {
		next := make([]Hash, len(cur)/2)
		for i := range next {
			next[i] = hashNode(cur[2*i], cur[2*i+1])
		}
		levels[d+1] = next
		cur = next
	}
	return &Tree{levels: levels, depth: depth}
}

func (t *Tree) Root() Hash { return t.levels[t.depth][0] }
func (t *Tree) Depth() int { return t.depth }
func (t *Tree) Leaf(i int) Hash { return t.levels[0][i] }

// LevelSibling is one disclosed sibling hash at a given tree level.
type LevelSibling struct {
	Index int
	Hash  Hash
}

// Proof is a compressed multi-proof: per level, the sibling hashes of
// queried-leaf ancestors that are not themselves ancestors of another
// queried leaf.
type Proof struct {
	Siblings [][]LevelSibling
}

func sortedUnique(indices []int) []int {
	cp := make([]int, len(indices))
	copy(cp, indices)
	sort.Ints(cp)
	out := cp[:0]
	for i, v := range cp {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// Prove builds a multi-proof for the given query indices.
func (t *Tree) Prove(queries []int) *Proof {
	active := sortedUnique(queries)
	proof := &Proof{Siblings: make([][]LevelSibling, t.depth)}

	for d := 0; d < t.depth; d++ {
		activeSet := make(map[int]bool, len(active))
		for _, idx := range active {
			activeSet[idx] = true
		}

		var level []LevelSibling
		parentSet := make(map[int]bool)
		var parents []int
		for _, idx := range active {
			sib := idx ^ 1
			if !activeSet[sib] {
				level = append(level, LevelSibling{Index: sib, Hash: t.levels[d][sib]})
			}
			p := idx / 2
			if !parentSet[p] {
				parentSet[p] = true
				parents = append(parents, p)
			}
		}
		sort.Slice(level, func(i, j int) bool { return level[i].Index < level[j].Index })
		proof.Siblings[d] = level
		sort.Ints(parents)
		active = parents
	}
	return proof
}

// Verify checks a multi-proof against root: queries and openedLeaves must
// be parallel slices (query[i]'s leaf hash is openedLeaves[i]). It returns
// false, never panics, on any structural mismatch.
func Verify(root Hash, proof *Proof, depth int, openedLeaves []Hash, queries []int) bool {
	if len(queries) != len(openedLeaves) || len(queries) == 0 {
		return false
	}
	if proof == nil || len(proof.Siblings) != depth {
		return false
	}

	type idxHash struct {
		idx int
		h   Hash
	}
	seen := make(map[int]Hash)
	for i, q := range queries {
		if q < 0 {
			return false
		}
		if existing, ok := seen[q]; ok && existing != openedLeaves[i] {
			return false
		}
		seen[q] = openedLeaves[i]
	}
	cur := make([]idxHash, 0, len(seen))
	for idx, h := range seen {
		cur = append(cur, idxHash{idx, h})
	}

	for d := 0; d < depth; d++ {
		siblingMap := make(map[int]Hash, len(proof.Siblings[d]))
		for _, s := range proof.Siblings[d] {
			siblingMap[s.Index] = s.Hash
		}
		curMap := make(map[int]Hash, len(cur))
		for _, e := range cur {
			curMap[e.idx] = e.h
		}

		nextMap := make(map[int]Hash)
		for _, e := range cur {
			if _, already := nextMap[e.idx/2]; already {
				continue
			}
			sib := e.idx ^ 1
			var sibHash Hash
			if h, ok := curMap[sib]; ok {
				sibHash = h
			} else if h, ok := siblingMap[sib]; ok {
				sibHash = h
			} else {
				return false
			}
			var left, right Hash
			if e.idx%2 == 0 {
				left, right = e.h, sibHash
			} else {
				left, right = sibHash, e.h
			}
			nextMap[e.idx/2] = hashNode(left, right)
		}

		next := make([]idxHash, 0, len(nextMap))
		for idx, h := range nextMap {
			next = append(next, idxHash{idx, h})
		}
		cur = next
	}

	if len(cur) != 1 || cur[0].idx != 0 {
		return false
	}
	return cur[0].h == root
}
