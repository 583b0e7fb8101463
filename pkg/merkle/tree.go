// Package merkle builds binary Merkle trees over ordered batches of hex
// digests and produces per-leaf inclusion proofs that verify independently
// of the tree that created them.
//
// Construction rules (fixed — changing any of them changes every root):
//   - parents are SHA256(leftHex || rightHex), left operand first, never sorted
//   - a level with an odd node count pairs its last node with itself
//   - a single-leaf tree has root == leaves[0] with an empty proof
package merkle

import (
	"errors"
	"fmt"

	"yachaq-ledger/pkg/digest"
)

// ErrNoLeaves is returned when building a tree from an empty batch.
var ErrNoLeaves = errors.New("merkle: cannot build tree from empty leaf list")

// Tree is an ephemeral Merkle tree over an ordered batch of leaf digests.
// It is immutable after Build and safe for concurrent use.
type Tree struct {
	levels [][]string // levels[0] = leaves, last level = [root]
}

// Build constructs a tree from an ordered, non-empty list of hex digests.
// Leaf index is the position in the input slice and is load-bearing: proofs
// record it and reordering the input produces a different root.
func Build(leaves []string) (*Tree, error) {
	if len(leaves) == 0 {
		return nil, ErrNoLeaves
	}
	for i, leaf := range leaves {
		if !digest.IsHex(leaf) {
			return nil, fmt.Errorf("merkle: leaf %d is not a sha-256 hex digest", i)
		}
	}

	levels := make([][]string, 0, 4)
	level := make([]string, len(leaves))
	copy(level, leaves)
	levels = append(levels, level)

	for len(level) > 1 {
		next := make([]string, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			left := level[i]
			right := left // duplicate-last-node rule for an odd tail
			if i+1 < len(level) {
				right = level[i+1]
			}
			next = append(next, digest.SHA256HexConcat(left, right))
		}
		levels = append(levels, next)
		level = next
	}

	return &Tree{levels: levels}, nil
}

// Root returns the root digest. For a single-leaf tree this is the leaf itself.
func (t *Tree) Root() string {
	top := t.levels[len(t.levels)-1]
	return top[0]
}

// Size returns the number of leaves.
func (t *Tree) Size() int {
	return len(t.levels[0])
}

// Leaves returns a copy of the leaf digests in input order.
func (t *Tree) Leaves() []string {
	out := make([]string, len(t.levels[0]))
	copy(out, t.levels[0])
	return out
}

// Proof builds the inclusion proof for the leaf at index. The proof records,
// level by level, the sibling digest and whether that sibling sits to the
// left of the current node. An unpaired final node records itself as its
// own (right) sibling, matching the duplicate-last-node construction.
func (t *Tree) Proof(index int) (*Proof, error) {
	leaves := t.levels[0]
	if index < 0 || index >= len(leaves) {
		return nil, fmt.Errorf("merkle: leaf index %d out of range [0,%d)", index, len(leaves))
	}

	elements := make([]ProofElement, 0, len(t.levels)-1)
	idx := index
	for lvl := 0; lvl < len(t.levels)-1; lvl++ {
		level := t.levels[lvl]
		sibling := idx ^ 1
		if sibling >= len(level) {
			sibling = idx // self-paired tail node
		}
		elements = append(elements, ProofElement{
			Hash: level[sibling],
			Left: idx%2 == 1,
		})
		idx /= 2
	}

	return &Proof{
		LeafHash:     leaves[index],
		LeafIndex:    index,
		Elements:     elements,
		ExpectedRoot: t.Root(),
	}, nil
}

// VerifyProof recomputes the root from proof.LeafHash and the recorded
// siblings and compares it against root. The caller chooses the trust
// anchor: pass the externally anchored root, not proof.ExpectedRoot, which
// only records the root at proof-creation time.
func VerifyProof(proof *Proof, root string) bool {
	if proof == nil {
		return false
	}
	current := proof.LeafHash
	for _, el := range proof.Elements {
		if el.Left {
			current = digest.SHA256HexConcat(el.Hash, current)
		} else {
			current = digest.SHA256HexConcat(current, el.Hash)
		}
	}
	return current == root
}
