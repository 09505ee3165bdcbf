package redblack

// replace collapses a matched node into the fusion of its two subtrees.
// If the removed node was black and the fusion has a red root, that root
// is blackened, which restores the lost black node and clears any red
// child below it; otherwise fixHeight is reported iff the removed node
// was black.
func (cfg Config[R, K]) replace(n *node[R, K]) (*node[R, K], bool) {
	f := fused(n.left, n.right)
	if n.color == black && isRed(f) {
		return blacken(f), false
	}
	return f, n.color == black
}

// leftDelete descends into n.left removing k, then repairs the
// black-height deficit (if any) at n via leftBalanced.
func (cfg Config[R, K]) leftDelete(n *node[R, K], k K) (*node[R, K], bool, *R) {
	newLeft, fh, removed := cfg.recursiveRemove(n.left, k)
	if !fh {
		return &node[R, K]{n.color, n.record, newLeft, n.right}, false, removed
	}
	fixed, fhOut := leftBalanced(n.color, n.record, newLeft, n.right)
	return fixed, fhOut, removed
}

// rightDelete mirrors leftDelete for the right child.
func (cfg Config[R, K]) rightDelete(n *node[R, K], k K) (*node[R, K], bool, *R) {
	newRight, fh, removed := cfg.recursiveRemove(n.right, k)
	if !fh {
		return &node[R, K]{n.color, n.record, n.left, newRight}, false, removed
	}
	fixed, fhOut := rightBalanced(n.color, n.record, n.left, newRight)
	return fixed, fhOut, removed
}

// recursiveRemove is the delete engine. It returns the rebuilt subtree,
// whether it is now one black node short (fixHeight), and a pointer to
// the removed record, or nil if k was not found in this subtree.
func (cfg Config[R, K]) recursiveRemove(n *node[R, K], k K) (*node[R, K], bool, *R) {
	if n == nil {
		return nil, false, nil
	}
	switch cfg.Compare(k, cfg.Key(n.record)) {
	case BelongsLeft:
		newNode, fh, removed := cfg.leftDelete(n, k)
		return redBalanced(newNode.color, newNode.record, newNode.left, newNode.right), fh, removed
	case BelongsRight:
		newNode, fh, removed := cfg.rightDelete(n, k)
		return redBalanced(newNode.color, newNode.record, newNode.left, newNode.right), fh, removed
	default: // Matches
		if cfg.Duplicates == Refuse {
			newNode, fh := cfg.replace(n)
			rec := n.record
			return newNode, fh, &rec
		}
		// Duplicates are permitted: prefer the leftmost matching record,
		// found by searching deeper into the left subtree first.
		newNode, fh, removed := cfg.leftDelete(n, k)
		if removed != nil {
			return redBalanced(newNode.color, newNode.record, newNode.left, newNode.right), fh, removed
		}
		newNode, fh = cfg.replace(n)
		rec := n.record
		return newNode, fh, &rec
	}
}

// Remove deletes one record matching k and returns it, or reports false
// if no such record exists. If duplicates are stored, the record removed
// is always the leftmost in tree order — this holds for every duplicates
// policy, including UseLIFO.
func (t *Tree[R, K]) Remove(k K) (R, bool) {
	newRoot, _, removed := t.cfg.recursiveRemove(t.root, k)
	if removed == nil {
		T().Debugf("redblack: key %v not found", k)
		var zero R
		return zero, false
	}
	t.root = blacken(newRoot)
	T().Debugf("redblack: removed key %v", k)
	return *removed, true
}

// RemoveAll removes every record matching k, in the order Remove would
// return them, and returns the removed records.
func (t *Tree[R, K]) RemoveAll(k K) []R {
	var out []R
	for {
		r, ok := t.Remove(k)
		if !ok {
			break
		}
		out = append(out, r)
	}
	return out
}
