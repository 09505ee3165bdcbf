package redblack

import "fmt"

// Check walks the whole tree once and validates the four structural
// invariants of a red-black tree: BST order (given the tree's own
// comparator), red-red, black-height uniformity, and root color. It is
// intended for tests and the fuzz target, not production code paths —
// it is O(n).
func (t *Tree[R, K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariantViolation)
	}
	if t.root == nil {
		return nil
	}
	if t.root.color != black {
		return fmt.Errorf("%w: root is not black", ErrInvariantViolation)
	}
	_, err := t.cfg.checkNode(t.root, nil, nil)
	return err
}

// checkNode returns the black-height of n (empties count as black,
// contributing 1) and an error describing the first violation found.
// lowBound/highBound, when non-nil, are the nearest ancestor keys that
// bound this subtree from below/above according to the comparator.
func (cfg Config[R, K]) checkNode(n *node[R, K], lowBound, highBound *K) (int, error) {
	if n == nil {
		return 1, nil
	}
	key := cfg.Key(n.record)
	// Duplicates (Matches against a bound) are legal; only a strict
	// direction reversal is a BST-order violation.
	if lowBound != nil && cfg.Compare(key, *lowBound) == BelongsLeft {
		return 0, fmt.Errorf("%w: BST order violated at key %v", ErrInvariantViolation, key)
	}
	if highBound != nil && cfg.Compare(key, *highBound) == BelongsRight {
		return 0, fmt.Errorf("%w: BST order violated at key %v", ErrInvariantViolation, key)
	}
	if n.color == red && (isRed(n.left) || isRed(n.right)) {
		return 0, fmt.Errorf("%w: red-red violation at key %v", ErrInvariantViolation, key)
	}
	leftHeight, err := cfg.checkNode(n.left, lowBound, &key)
	if err != nil {
		return 0, err
	}
	rightHeight, err := cfg.checkNode(n.right, &key, highBound)
	if err != nil {
		return 0, err
	}
	if leftHeight != rightHeight {
		return 0, fmt.Errorf("%w: black-height mismatch at key %v (%d != %d)",
			ErrInvariantViolation, key, leftHeight, rightHeight)
	}
	if n.color == black {
		return leftHeight + 1, nil
	}
	return leftHeight, nil
}
