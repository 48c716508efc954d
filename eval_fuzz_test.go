//go:build go1.18
// +build go1.18

package safeexpr_test

import (
	"testing"

	"github.com/andrei444-andrei/safeexpr"
)

func FuzzEvalString(f *testing.F) {
	f.Add("2 ^ 10")
	f.Add("10 / 0")
	f.Add("1 // 2 % 3")
	f.Add("x + 1")
	f.Fuzz(func(t *testing.T, s string) {
		safeexpr.EvalString(s)
	})
}
