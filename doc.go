// Package safeexpr evaluates untrusted arithmetic expressions.
//
// An expression is numeric literals combined with the binary operators
// + - * / // % ** (with ^ accepted as an alias for **), unary + and -,
// and parentheses for grouping. Nothing else parses: identifiers,
// function calls, and every other construct are rejected before a tree
// is ever built, and the evaluator re-checks every node it visits
// against the same allow-list, so evaluating hostile input can never
// execute code or reach external state.
//
// Integer arithmetic is exact at any magnitude. True division always
// produces a floating-point result, floor division rounds toward
// negative infinity, and the remainder takes the sign of the divisor.
// "2 ** 3 ** 2" is 512 (exponentiation is right-associative) and
// "-2 ** 2" is -4 (unary minus binds looser than ** on its left).
package safeexpr
