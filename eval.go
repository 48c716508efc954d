package safeexpr

import (
	"io"
	"math/big"
	"strconv"
	"strings"
)

const (
	// DefaultPrec is the precision in bits of floating-point results unless
	// the Prec option overrides it.
	DefaultPrec = 64
	// DefaultMaxDepth is the evaluation depth limit unless the MaxDepth
	// option overrides it.
	DefaultMaxDepth = 500
)

// EvalOption is an option for evaluation.
type EvalOption interface {
	evalOption(evalctx) evalctx
}

type (
	precopt  uint
	depthopt int
)

// Prec sets the precision in bits of floating-point calculations. Integer
// arithmetic is always exact regardless of precision.
func Prec(prec uint) EvalOption {
	return precopt(prec)
}

func (o precopt) evalOption(c evalctx) evalctx {
	c.prec = uint(o)
	return c
}

// MaxDepth limits how deep the evaluator will walk a tree. The parser
// enforces its own nesting limit, but the evaluator does not rely on that.
func MaxDepth(n int) EvalOption {
	return depthopt(n)
}

func (o depthopt) evalOption(c evalctx) evalctx {
	c.limit = int(o)
	return c
}

// evalctx holds general data for one evaluation. Evaluation has no state
// beyond it; nothing persists between calls.
type evalctx struct {
	prec  uint
	depth int
	limit int
}

// unaryOps and binaryOps are the operator allow-lists: the fixed mappings
// from operator node kind to arithmetic function. The evaluator dispatches
// through these tables, so an operator kind is recognized exactly when it
// has an entry here.
var unaryOps = map[nodeKind]func(Number) (Number, error){
	nodePos: pos,
	nodeNeg: neg,
}

var binaryOps = map[nodeKind]func(x, y Number, prec uint) (Number, error){
	nodeAdd:      add,
	nodeSub:      sub,
	nodeMul:      mul,
	nodeDiv:      quo,
	nodeFloorDiv: floorDiv,
	nodeMod:      mod,
	nodePow:      pow,
}

// Eval evaluates the expression and returns the result. The given options
// are applied in order. Every error Eval returns implements EvalError.
func (e *Expr) Eval(opts ...EvalOption) (Number, error) {
	ctx := evalctx{prec: DefaultPrec, limit: DefaultMaxDepth}
	for _, opt := range opts {
		ctx = opt.evalOption(ctx)
	}
	return e.n.eval(&ctx)
}

// eval computes the node's value. The dispatch is closed: every node is
// checked against the allow-listed kinds again here, without assuming the
// parser only produces valid trees.
func (n *node) eval(ctx *evalctx) (Number, error) {
	if n == nil {
		return Number{}, &InvalidNodeError{Kind: "nil"}
	}
	if ctx.depth++; ctx.depth > ctx.limit {
		return Number{}, &DepthError{Limit: ctx.limit}
	}
	defer func() { ctx.depth-- }()
	switch n.kind {
	case nodeNum:
		return literal(n.lit, ctx.prec)
	case nodePos, nodeNeg:
		fn := unaryOps[n.kind]
		if fn == nil {
			return Number{}, &InvalidOpError{Kind: n.kind.String(), Unary: true}
		}
		v, err := n.left.eval(ctx)
		if err != nil {
			return Number{}, err
		}
		return fn(v)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeFloorDiv, nodeMod, nodePow:
		fn := binaryOps[n.kind]
		if fn == nil {
			return Number{}, &InvalidOpError{Kind: n.kind.String()}
		}
		// Left before right, so when both sides could fail the error is
		// deterministic.
		l, err := n.left.eval(ctx)
		if err != nil {
			return Number{}, err
		}
		r, err := n.right.eval(ctx)
		if err != nil {
			return Number{}, err
		}
		return fn(l, r, ctx.prec)
	default:
		return Number{}, &InvalidNodeError{Kind: n.kind.String()}
	}
}

// literal converts a literal's text to a Number. The text is re-validated
// rune by rune: only decimal digits and a single point may appear, no
// matter what the node claims to be.
func literal(text string, prec uint) (Number, error) {
	var dig, dot bool
	for _, r := range text {
		switch {
		case '0' <= r && r <= '9':
			dig = true
		case r == '.':
			if dot {
				return Number{}, &LiteralError{Text: text}
			}
			dot = true
		default:
			return Number{}, &LiteralError{Text: text}
		}
	}
	if !dig {
		return Number{}, &LiteralError{Text: text}
	}
	if dot {
		f, _, err := big.ParseFloat(text, 10, prec, big.ToNearestEven)
		if err != nil {
			return Number{}, &LiteralError{Text: text}
		}
		return floatNumber(f), nil
	}
	i, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return Number{}, &LiteralError{Text: text}
	}
	return intNumber(i), nil
}

// Eval is a shortcut to parse an expression and evaluate it.
func Eval(src io.RuneScanner, opts ...EvalOption) (Number, error) {
	e, err := Parse(src)
	if err != nil {
		return Number{}, err
	}
	return e.Eval(opts...)
}

// EvalString normalizes, parses, and evaluates a string expression. It is
// the entry point for callers handing over untrusted text: the result is
// one number or one error, never a partial result.
func EvalString(src string, opts ...EvalOption) (Number, error) {
	return Eval(strings.NewReader(Normalize(src)), opts...)
}

// DivisionByZeroError is an error from dividing, floor-dividing, or taking
// a remainder by zero.
type DivisionByZeroError struct{}

func (err *DivisionByZeroError) Error() string {
	return "division by zero"
}

// LiteralError is an error from a literal node whose text is not a numeric
// literal. The parser cannot produce one; the evaluator checks anyway.
type LiteralError struct {
	// Text is the rejected literal text.
	Text string
}

func (err *LiteralError) Error() string {
	return "only numeric literals allowed"
}

// InvalidOpError is an error from an operator node whose kind has no entry
// in the operator tables.
type InvalidOpError struct {
	// Kind is the name of the operator kind.
	Kind string
	// Unary is whether the operator was dispatched as unary.
	Unary bool
}

func (err *InvalidOpError) Error() string {
	if err.Unary {
		return "invalid unary operation: " + err.Kind
	}
	return "invalid binary operation: " + err.Kind
}

// InvalidNodeError is an error from a node outside the allow-listed kinds
// reaching the evaluator.
type InvalidNodeError struct {
	// Kind is the name of the rejected kind.
	Kind string
}

func (err *InvalidNodeError) Error() string {
	return "invalid construct: " + err.Kind
}

// DomainError is an error from an operation whose operands are outside the
// domain that produces a real result.
type DomainError struct {
	// Reason describes the violation.
	Reason string
}

func (err *DomainError) Error() string {
	return "domain error: " + err.Reason
}

// DepthError is an error from an expression tree deeper than the evaluation
// depth limit.
type DepthError struct {
	// Limit is the depth limit that was in effect.
	Limit int
}

func (err *DepthError) Error() string {
	return "expression exceeds " + strconv.Itoa(err.Limit) + " nested operations"
}

// EvalError is implemented by every error arising during evaluation of a
// structurally valid tree. It is the evaluation-error half of the API, with
// InputError as the other half.
type EvalError interface {
	error
	evalError()
}

func (*DivisionByZeroError) evalError() {}
func (*LiteralError) evalError()        {}
func (*InvalidOpError) evalError()      {}
func (*InvalidNodeError) evalError()    {}
func (*DomainError) evalError()         {}
func (*DepthError) evalError()          {}

var (
	_ EvalError = (*DivisionByZeroError)(nil)
	_ EvalError = (*LiteralError)(nil)
	_ EvalError = (*InvalidOpError)(nil)
	_ EvalError = (*InvalidNodeError)(nil)
	_ EvalError = (*DomainError)(nil)
	_ EvalError = (*DepthError)(nil)
)
