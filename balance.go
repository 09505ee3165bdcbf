package redblack

// redBalanced removes a red-red violation introduced by a child. Given a
// node whose shape matches any of the four canonical red-red patterns —
// the violator on left-left, left-right, right-left or right-right
// grandchild — it produces the balanced shape
//
//	red(y, black(x, a, b), black(z, c, d))
//
// with the three original records repositioned so in-order traversal is
// preserved. On any non-matching shape it is the identity, returning a
// node of color c unchanged. Used after every recursive descent in
// insert and delete, and internally by fused/leftBalanced/rightBalanced.
func redBalanced[R, K any](c color, rec R, l, r *node[R, K]) *node[R, K] {
	if isRed(l) && isRed(l.left) {
		T().Debugf("redBalanced: left-left violation")
		return &node[R, K]{red, l.record,
			&node[R, K]{black, l.left.record, l.left.left, l.left.right},
			&node[R, K]{black, rec, l.right, r}}
	}
	if isRed(l) && isRed(l.right) {
		T().Debugf("redBalanced: left-right violation")
		return &node[R, K]{red, l.right.record,
			&node[R, K]{black, l.record, l.left, l.right.left},
			&node[R, K]{black, rec, l.right.right, r}}
	}
	if isRed(r) && isRed(r.left) {
		T().Debugf("redBalanced: right-left violation")
		return &node[R, K]{red, r.left.record,
			&node[R, K]{black, rec, l, r.left.left},
			&node[R, K]{black, r.record, r.left.right, r.right}}
	}
	if isRed(r) && isRed(r.right) {
		T().Debugf("redBalanced: right-right violation")
		return &node[R, K]{red, r.record,
			&node[R, K]{black, rec, l, r.left},
			&node[R, K]{black, r.right.record, r.right.left, r.right.right}}
	}
	return &node[R, K]{c, rec, l, r}
}

// leftBalanced restores the black-height invariant when the left child of
// (pc, rec, left, right) has returned one black node short (the fixHeight
// signal). It returns the repaired node and whether the deficit still
// propagates to the caller.
//
// If the right sibling is red, it is rotated down into a black-sibling
// case first. Otherwise:
//   - if the sibling's far nephew is red: a single rotation absorbs the
//     deficit unconditionally.
//   - if only the sibling's near nephew is red: rotate it into the far
//     case and recurse once.
//   - if both nephews are black: recolor the sibling red; the deficit is
//     absorbed if the parent was red, otherwise it propagates.
func leftBalanced[R, K any](pc color, rec R, left, right *node[R, K]) (*node[R, K], bool) {
	if isRed(right) {
		rl, rr := right.left, right.right
		T().Debugf("leftBalanced: red sibling, rotating")
		inner, _ := leftBalancedBlackSibling(red, rec, left, rl)
		return &node[R, K]{black, right.record, inner, rr}, false
	}
	return leftBalancedBlackSibling(pc, rec, left, right)
}

func leftBalancedBlackSibling[R, K any](pc color, rec R, left, right *node[R, K]) (*node[R, K], bool) {
	if right != nil && isRed(right.right) {
		T().Debugf("leftBalanced: far nephew red")
		rr := right.right
		return &node[R, K]{pc, right.record,
			&node[R, K]{black, rec, left, right.left},
			&node[R, K]{black, rr.record, rr.left, rr.right}}, false
	}
	if right != nil && isRed(right.left) {
		T().Debugf("leftBalanced: near nephew red, rotating into far case")
		rl := right.left
		newInner := &node[R, K]{red, right.record, rl.right, right.right}
		newRight := &node[R, K]{black, rl.record, rl.left, newInner}
		return leftBalancedBlackSibling(pc, rec, left, newRight)
	}
	T().Debugf("leftBalanced: both nephews black, recoloring")
	var newRight *node[R, K]
	if right != nil {
		newRight = &node[R, K]{red, right.record, right.left, right.right}
	}
	return &node[R, K]{black, rec, left, newRight}, pc == black
}

// rightBalanced mirrors leftBalanced for a short right child.
func rightBalanced[R, K any](pc color, rec R, left, right *node[R, K]) (*node[R, K], bool) {
	if isRed(left) {
		lr, ll := left.right, left.left
		T().Debugf("rightBalanced: red sibling, rotating")
		inner, _ := rightBalancedBlackSibling(red, rec, lr, right)
		return &node[R, K]{black, left.record, ll, inner}, false
	}
	return rightBalancedBlackSibling(pc, rec, left, right)
}

func rightBalancedBlackSibling[R, K any](pc color, rec R, left, right *node[R, K]) (*node[R, K], bool) {
	if left != nil && isRed(left.left) {
		T().Debugf("rightBalanced: far nephew red")
		ll := left.left
		return &node[R, K]{pc, left.record,
			&node[R, K]{black, ll.record, ll.left, ll.right},
			&node[R, K]{black, rec, left.right, right}}, false
	}
	if left != nil && isRed(left.right) {
		T().Debugf("rightBalanced: near nephew red, rotating into far case")
		lr := left.right
		newInner := &node[R, K]{red, left.record, left.left, lr.left}
		newLeft := &node[R, K]{black, lr.record, newInner, lr.right}
		return rightBalancedBlackSibling(pc, rec, newLeft, right)
	}
	T().Debugf("rightBalanced: both nephews black, recoloring")
	var newLeft *node[R, K]
	if left != nil {
		newLeft = &node[R, K]{red, left.record, left.left, left.right}
	}
	return &node[R, K]{black, rec, newLeft, right}, pc == black
}
