// Package merkle builds arity-k Merkle trees whose compression function is
// a permutation: a parent digest is word 0 of the permutation applied to
// the children's digests padded with zeroes to the permutation width.
//
// An Accumulator is not safe for concurrent use; Accumulate replaces the
// whole tree.
package merkle

import (
	"errors"
	"fmt"
	"math/bits"

	"AlgebraicPermutations/modules/permutation"
)

var (
	// ErrNotFound is returned for a witness request against an absent tree
	// or an absent leaf.
	ErrNotFound = errors.New("element not found in tree")
	// ErrNoLeaves is returned when accumulating an empty set.
	ErrNoLeaves = errors.New("no leaves to accumulate")
)

// ProofNode is one level of a witness: the digests of the k-1 siblings in
// their original order and the slot of the node on the path.
type ProofNode[E comparable] struct {
	Digests  []E
	Position int
}

type node[E comparable] struct {
	digest   E
	children []*node[E]
}

// Accumulator holds the tree of the last accumulated set. The zero value of
// E must be the field zero, which holds for every element type of the
// fields package.
type Accumulator[E comparable] struct {
	perm  permutation.Permutation[E]
	t     int
	arity int
	root  *node[E]
	// depth is the number of parent levels, and so the witness length.
	depth int
}

// NewAccumulator uses the largest power of two not above t-1 as arity.
func NewAccumulator[E comparable](perm permutation.Permutation[E]) (*Accumulator[E], error) {
	if perm == nil {
		return nil, permutation.Invalid("nil permutation")
	}
	t := perm.Width()
	if t < 3 {
		return nil, permutation.Invalid("merkle tree over a permutation of width %d", t)
	}
	return NewAccumulatorWithArity(perm, highestPowerOfTwo(t-1))
}

// NewAccumulatorWithArity fails unless arity is a power of two with
// 2 <= arity < t.
func NewAccumulatorWithArity[E comparable](perm permutation.Permutation[E], arity int) (*Accumulator[E], error) {
	if perm == nil {
		return nil, permutation.Invalid("nil permutation")
	}
	t := perm.Width()
	if arity < 2 || arity&(arity-1) != 0 {
		return nil, permutation.Invalid("merkle arity %d is not a power of two", arity)
	}
	if arity >= t {
		return nil, permutation.Invalid("merkle arity %d for width %d", arity, t)
	}
	return &Accumulator[E]{perm: perm, t: t, arity: arity}, nil
}

func highestPowerOfTwo(n int) int {
	return 1 << (bits.Len(uint(n)) - 1)
}

// Arity is the number of children of an inner node.
func (a *Accumulator[E]) Arity() int { return a.arity }

// Root returns the digest of the current tree, if any.
func (a *Accumulator[E]) Root() (E, bool) {
	if a.root == nil {
		var zero E
		return zero, false
	}
	return a.root.digest, true
}

func (a *Accumulator[E]) compress(digests []E) E {
	input := make([]E, a.t)
	copy(input, digests)
	return a.perm.Permutation(input)[0]
}

// paddedSize is the smallest power of the arity that holds n leaves, and
// at least the arity itself.
func (a *Accumulator[E]) paddedSize(n int) int {
	size := a.arity
	for size < n {
		size *= a.arity
	}
	return size
}

// Accumulate builds a new tree over the leaves and returns its root. The
// leaf set is padded to a power of the arity by repeating the last leaf.
func (a *Accumulator[E]) Accumulate(leaves []E) (E, error) {
	if len(leaves) == 0 {
		var zero E
		return zero, ErrNoLeaves
	}

	size := a.paddedSize(len(leaves))
	nodes := make([]*node[E], size)
	for i := range nodes {
		leaf := leaves[len(leaves)-1]
		if i < len(leaves) {
			leaf = leaves[i]
		}
		nodes[i] = &node[E]{digest: leaf}
	}

	depth := 0
	digests := make([]E, a.arity)
	for len(nodes) > 1 {
		parents := make([]*node[E], len(nodes)/a.arity)
		for i := range parents {
			children := nodes[i*a.arity : (i+1)*a.arity]
			for j, c := range children {
				digests[j] = c.digest
			}
			parents[i] = &node[E]{digest: a.compress(digests), children: children}
		}
		nodes = parents
		depth++
	}

	a.root = nodes[0]
	a.depth = depth
	return a.root.digest, nil
}

// CreateWitness searches the tree depth first for the leaf and returns the
// path to it, leaf level first.
func (a *Accumulator[E]) CreateWitness(value E) ([]ProofNode[E], error) {
	if a.root == nil {
		return nil, fmt.Errorf("no tree: %w", ErrNotFound)
	}
	var witness []ProofNode[E]
	if !a.find(a.root, value, &witness) {
		return nil, ErrNotFound
	}
	return witness, nil
}

func (a *Accumulator[E]) find(n *node[E], value E, witness *[]ProofNode[E]) bool {
	if n.children == nil {
		return n.digest == value
	}
	for i, c := range n.children {
		if !a.find(c, value, witness) {
			continue
		}
		siblings := make([]E, 0, len(n.children)-1)
		for j, s := range n.children {
			if j != i {
				siblings = append(siblings, s.digest)
			}
		}
		*witness = append(*witness, ProofNode[E]{Digests: siblings, Position: i})
		return true
	}
	return false
}

// Verify replays the witness from the leaf up and compares the result with
// the current root. It returns false when there is no tree and for
// malformed witnesses, including one that does not reach down to the leaf
// level.
func (a *Accumulator[E]) Verify(value E, witness []ProofNode[E]) bool {
	if a.root == nil || len(witness) != a.depth {
		return false
	}
	digest := value
	digests := make([]E, a.arity)
	for _, level := range witness {
		if len(level.Digests) != a.arity-1 || level.Position < 0 || level.Position >= a.arity {
			return false
		}
		copy(digests, level.Digests[:level.Position])
		digests[level.Position] = digest
		copy(digests[level.Position+1:], level.Digests[level.Position:])
		digest = a.compress(digests)
	}
	return digest == a.root.digest
}
