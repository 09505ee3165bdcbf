package redblack

import (
	"fmt"
	"io"
	"os"
	"strings"

	fcolor "github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// nodeids allocates small integer IDs for nodes, for use in DOT output.
type nodeids[R, K any] struct {
	idTable map[*node[R, K]]int
	max     int
}

func newNodeIDs[R, K any]() nodeids[R, K] {
	return nodeids[R, K]{idTable: make(map[*node[R, K]]int), max: 1}
}

func (ids *nodeids[R, K]) alloc(n *node[R, K]) int {
	if id, ok := ids.idTable[n]; ok {
		return id
	}
	id := ids.max
	ids.idTable[n] = id
	ids.max++
	return id
}

// WriteDot writes a Graphviz DOT representation of t to w, one node per
// tree node, filled red or black to match its color.
func (t *Tree[R, K]) WriteDot(w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12,style=filled,shape=circle];\n")
	ids := newNodeIDs[R, K]()
	var nilCount int
	var nodelist, edgelist strings.Builder
	var walk func(n *node[R, K])
	walk = func(n *node[R, K]) {
		if n == nil {
			return
		}
		id := ids.alloc(n)
		fillcolor := "black,fontcolor=white"
		if n.color == red {
			fillcolor = "\"#d94f4f\",fontcolor=white"
		}
		fmt.Fprintf(&nodelist, "\t%d [label=%q fillcolor=%s];\n", id, fmt.Sprintf("%v", t.cfg.Key(n.record)), fillcolor)
		for _, child := range [...]*node[R, K]{n.left, n.right} {
			if child == nil {
				nilCount++
				nilid := -nilCount
				nodelist.WriteString(fmt.Sprintf("\t%d [label=\"\",shape=point];\n", nilid))
				fmt.Fprintf(&edgelist, "\t%d -> %d;\n", id, nilid)
				continue
			}
			cid := ids.alloc(child)
			fmt.Fprintf(&edgelist, "\t%d -> %d;\n", id, cid)
			walk(child)
		}
	}
	walk(t.root)
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

// Fprint writes an indented ASCII rendering of t to w, colorizing node
// labels red/black when w is a terminal. Labels are right-padded to the
// widest label in the tree so the (B)/(R) tags — and, in the colorized
// form, the end of the highlighted region — line up among nodes at the
// same depth; each level of depth indents by four more columns. Width
// is measured in grapheme clusters via uax11.StringWidth, not bytes or
// runes, so combining marks and multi-byte characters count as one
// column each and don't throw the alignment off.
func (t *Tree[R, K]) Fprint(w io.Writer) {
	useColor := false
	if f, ok := w.(*os.File); ok {
		useColor = term.IsTerminal(int(f.Fd()))
	}
	ctx := uax11.ContextFromEnvironment()
	labelWidth := func(label string) int {
		return uax11.StringWidth(grapheme.StringFromString(label), ctx)
	}

	maxWidth := 0
	var measure func(n *node[R, K])
	measure = func(n *node[R, K]) {
		if n == nil {
			return
		}
		label := fmt.Sprintf("%v", t.cfg.Key(n.record))
		if width := labelWidth(label); width > maxWidth {
			maxWidth = width
		}
		measure(n.left)
		measure(n.right)
	}
	measure(t.root)

	var walk func(n *node[R, K], prefix string, isTail bool)
	walk = func(n *node[R, K], prefix string, isTail bool) {
		if n == nil {
			return
		}
		branch := "├── "
		nextPrefix := prefix + "│   "
		if isTail {
			branch = "└── "
			nextPrefix = prefix + "    "
		}
		label := fmt.Sprintf("%v", t.cfg.Key(n.record))
		padded := label + strings.Repeat(" ", maxWidth-labelWidth(label))
		if useColor {
			c := fcolor.New(fcolor.FgWhite, fcolor.BgBlack)
			if n.color == red {
				c = fcolor.New(fcolor.FgWhite, fcolor.BgRed)
			}
			io.WriteString(w, prefix+branch)
			c.Fprint(w, padded)
			io.WriteString(w, "\n")
		} else {
			tag := "B"
			if n.color == red {
				tag = "R"
			}
			fmt.Fprintf(w, "%s%s%s(%s)\n", prefix, branch, padded, tag)
		}
		walk(n.left, nextPrefix, n.right == nil)
		walk(n.right, nextPrefix, true)
	}
	if t.root == nil {
		io.WriteString(w, "<empty>\n")
		return
	}
	walk(t.root, "", true)
}

// Sprint returns the same rendering as Fprint, as a string (never
// colorized, since a string has no terminal to detect).
func (t *Tree[R, K]) Sprint() string {
	var b strings.Builder
	t.Fprint(&b)
	return b.String()
}
