package redblack

// insertNode recursively descends according to the comparator and the
// duplicates policy, then applies redBalanced on the way back up.
func (cfg Config[R, K]) insertNode(n *node[R, K], r R) (*node[R, K], bool) {
	if n == nil {
		return &node[R, K]{color: red, record: r}, true
	}
	switch cfg.compareRecord(cfg.Key(r), n.record) {
	case BelongsLeft:
		newLeft, inserted := cfg.insertNode(n.left, r)
		return redBalanced(n.color, n.record, newLeft, n.right), inserted
	case BelongsRight:
		newRight, inserted := cfg.insertNode(n.right, r)
		return redBalanced(n.color, n.record, n.left, newRight), inserted
	default: // Matches
		switch cfg.Duplicates {
		case Refuse:
			return n, false
		case UseLIFO:
			newLeft, inserted := cfg.insertNode(n.left, r)
			return redBalanced(n.color, n.record, newLeft, n.right), inserted
		default: // UseFIFO
			newRight, inserted := cfg.insertNode(n.right, r)
			return redBalanced(n.color, n.record, n.left, newRight), inserted
		}
	}
}

// Insert adds r to the tree. It reports true iff the tree grew by one
// record; a Refuse-policy duplicate leaves the tree unchanged and
// reports false.
func (t *Tree[R, K]) Insert(r R) bool {
	newRoot, inserted := t.cfg.insertNode(t.root, r)
	t.root = blacken(newRoot)
	if inserted {
		T().Debugf("redblack: inserted key %v", t.cfg.Key(r))
	} else {
		T().Debugf("redblack: rejected duplicate key %v", t.cfg.Key(r))
	}
	return inserted
}

// InsertAll inserts every record in rs, in order, and returns the subset
// that were rejected (Refuse-policy duplicates).
func (t *Tree[R, K]) InsertAll(rs ...R) []R {
	var rejected []R
	for _, r := range rs {
		if !t.Insert(r) {
			rejected = append(rejected, r)
		}
	}
	return rejected
}
