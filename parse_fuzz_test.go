//go:build go1.18
// +build go1.18

package safeexpr_test

import (
	"strings"
	"testing"

	"github.com/andrei444-andrei/safeexpr"
)

func FuzzParse(f *testing.F) {
	f.Add("1+2*3")
	f.Add("-2**2")
	f.Add("((((1))))")
	f.Add("__import__('os')")
	f.Fuzz(func(t *testing.T, s string) {
		safeexpr.Parse(strings.NewReader(s))
	})
}
