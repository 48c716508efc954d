package safeexpr

import (
	"strings"
)

// node is a node in the abstract syntax tree of an expression. The kinds
// below are the entire language: there is no node for a name, a call, or
// anything else that could reach outside the expression, so such constructs
// are unrepresentable rather than merely rejected.
type node struct {
	kind nodeKind

	// lit is the literal text for nodeNum nodes.
	lit string

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // push literal

	nodePos // evaluate left
	nodeNeg // evaluate left, then negate

	nodeAdd      // evaluate left, add right
	nodeSub      // evaluate left, sub right
	nodeMul      // evaluate left, mul right
	nodeDiv      // evaluate left, true-divide by right
	nodeFloorDiv // evaluate left, floor-divide by right
	nodeMod      // evaluate left, floor-remainder by right
	nodePow      // evaluate left, exp by right
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *node) fmt(b *strings.Builder) {
	b.WriteByte('(')
	defer b.WriteByte(')')
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b)
		}
		b.WriteByte('$')
	case nodeNum:
		b.WriteString(n.lit)
	case nodePos:
		b.WriteByte('+')
		n.left.fmt(b)
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b)
	case nodeAdd:
		n.binfmt(b, " + ")
	case nodeSub:
		n.binfmt(b, " - ")
	case nodeMul:
		n.binfmt(b, " * ")
	case nodeDiv:
		n.binfmt(b, " / ")
	case nodeFloorDiv:
		n.binfmt(b, " // ")
	case nodeMod:
		n.binfmt(b, " % ")
	case nodePow:
		n.binfmt(b, " ** ")
	default:
		panic("safeexpr: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

func (n *node) binfmt(b *strings.Builder, op string) {
	n.left.fmt(b)
	b.WriteString(op)
	n.right.fmt(b)
}
