package safeexpr

import "strconv"

// OperatorError is an error indicating an operator token that is not
// understood by the parser. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
	// Unary is whether the parser expected a unary operator at the time.
	Unary bool
}

func (err *OperatorError) Error() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "unknown "+s+" operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched parentheses in the
// input. It implements InputError.
type BracketError struct {
	// Col is the position of the bracket.
	Col int
	// Left is the opening bracket, or the empty string if there was none.
	Left string
	// Right is the closing bracket, or the empty string if there was none.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// IdentError is an error indicating an identifier in the input. Names,
// function calls, and attribute accesses are not part of the language;
// any word is rejected during lexing, before a syntax tree exists. It
// implements InputError.
type IdentError struct {
	// Name is the rejected identifier.
	Name string
	// Col is the position of the identifier.
	Col int
}

func (err *IdentError) Error() string {
	return errpos(err.Col, "identifiers are not allowed: "+strconv.Quote(err.Name))
}

func (err *IdentError) Pos() int {
	return err.Col
}

// TokenError is an error indicating a token where none could continue the
// expression, e.g. a number directly following another number. It
// implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the text of the unexpected token.
	Token string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "unexpected token "+strconv.Quote(err.Token))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty subexpression.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// NestingError is an error indicating that an expression nests more deeply
// than the parser permits. It implements InputError.
type NestingError struct {
	// Col is the position at which the limit was exceeded.
	Col int
	// Limit is the nesting limit that was in effect.
	Limit int
}

func (err *NestingError) Error() string {
	return errpos(err.Col, "expression nests more than "+strconv.Itoa(err.Limit)+" levels deep")
}

func (err *NestingError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from text that does not conform to the expression grammar implements
// InputError; it is the syntax-error half of the API, with EvalError as
// the other half.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*IdentError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*NestingError)(nil)
	_ InputError = (*LexError)(nil)
)
