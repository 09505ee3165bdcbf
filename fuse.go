package redblack

// fused merges the left and right subtrees of a deleted node into one
// tree that preserves ordering and has the black-height of its inputs.
// A red root of the result may still have a red child. When the deleted
// node was black the result is one black node short; the caller
// (replace) blackens a red root to absorb that, or else reports the
// deficit upward as fixHeight.
func fused[R, K any](left, right *node[R, K]) *node[R, K] {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	if left.color == black && right.color == red {
		return redBalanced(red, right.record, fused(left, right.left), right.right)
	}
	if left.color == red && right.color == black {
		return redBalanced(red, left.record, left.left, fused(left.right, right))
	}
	if left.color == red && right.color == red {
		s := fused(left.right, right.left)
		if isRed(s) {
			return redBalanced(red, s.record,
				&node[R, K]{red, left.record, left.left, s.left},
				&node[R, K]{red, right.record, s.right, right.right})
		}
		return redBalanced(red, left.record, left.left,
			&node[R, K]{red, right.record, s, right.right})
	}
	// both black
	s := fused(left.right, right.left)
	if isRed(s) {
		return redBalanced(red, s.record,
			&node[R, K]{black, left.record, left.left, s.left},
			&node[R, K]{black, right.record, s.right, right.right})
	}
	return redBalanced(black, left.record, left.left,
		&node[R, K]{red, right.record, s, right.right})
}
