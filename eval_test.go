package safeexpr_test

import (
	"errors"
	"testing"

	"github.com/andrei444-andrei/safeexpr"
)

func TestEvalString(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "1", "1"},
		{"float", "2.5", "2.5"},
		{"add", "4+5+6", "15"},
		{"sub", "4-5-6", "-7"},
		{"mul", "4*5*6", "120"},
		{"precedence", "2 + 3 * 4", "14"},
		{"grouping", "(2 + 3) * 4", "20"},
		{"caret", "2 ^ 10", "1024"},
		{"pow", "2 ** 10", "1024"},
		{"pow-right", "2 ** 3 ** 2", "512"},
		{"pow-big", "2 ** 100", "1267650600228229401496703205376"},
		{"pow-neg-base", "(-2) ** 3", "-8"},
		{"pow-neg-exp", "2 ** -2", "0.25"},
		{"pow-neg-both", "(-2) ** -3", "-0.125"},
		{"pow-zero", "0 ** 0", "1"},
		{"truediv", "10 / 4", "2.5"},
		{"truediv-exact", "8 / 2", "4"},
		{"floordiv", "7 // 2", "3"},
		{"floordiv-neg", "-7 // 2", "-4"},
		{"floordiv-neg-divisor", "7 // -2", "-4"},
		{"floordiv-float", "7.5 // 2", "3"},
		{"mod", "7 % 3", "1"},
		{"mod-neg-dividend", "-7 % 3", "2"},
		{"mod-neg-divisor", "7 % -3", "-2"},
		{"mod-float", "7.5 % 2", "1.5"},
		{"unary-plus", "+5", "5"},
		{"unary-neg", "-5", "-5"},
		{"double-neg", "--1", "1"},
		{"neg-pow", "-2 ** 2", "-4"},
		{"float-add", "1.5 + 2.25", "3.75"},
		{"tight", "2+3", "5"},
		{"spaced", " 2 + 3 ", "5"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := safeexpr.EvalString(c.src)
			if err != nil {
				t.Fatalf("%q failed to evaluate: %v", c.src, err)
			}
			if got := r.String(); got != c.want {
				t.Errorf("%q evaluated to %s, want %s", c.src, got, c.want)
			}
		})
	}
}

// TestEvalKinds checks that true division always produces a floating-point
// result while integer-only arithmetic stays exact.
func TestEvalKinds(t *testing.T) {
	cases := []struct {
		name string
		src  string
		num  bool
	}{
		{"truediv", "8 / 2", false},
		{"floordiv", "8 // 2", true},
		{"add", "8 + 2", true},
		{"pow-int", "2 ** 10", true},
		{"pow-neg-exp", "2 ** -1", false},
		{"float-touch", "8 + 2.0", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := safeexpr.EvalString(c.src)
			if err != nil {
				t.Fatalf("%q failed to evaluate: %v", c.src, err)
			}
			if r.IsInt() != c.num {
				t.Errorf("%q: IsInt = %v, want %v", c.src, r.IsInt(), c.num)
			}
		})
	}
}

// TestEvalFracPow compares through float64 because fractional powers are
// computed to the context precision, not exactly.
func TestEvalFracPow(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"4 ** 0.5", 2},
		{"2 ** 0.5", 1.4142135623730951},
		{"8 ** (1 / 3)", 2},
	}
	for _, c := range cases {
		r, err := safeexpr.EvalString(c.src)
		if err != nil {
			t.Fatalf("%q failed to evaluate: %v", c.src, err)
		}
		if got := r.Float64(); got != c.want {
			t.Errorf("%q evaluated to %g, want %g", c.src, got, c.want)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	t.Run("division-by-zero", func(t *testing.T) {
		for _, src := range []string{"10 / 0", "10 // 0", "10 % 0", "10 / (3 - 3)", "1 / 0.0"} {
			_, err := safeexpr.EvalString(src)
			var dz *safeexpr.DivisionByZeroError
			if !errors.As(err, &dz) {
				t.Errorf("%q gave %v, want division by zero", src, err)
				continue
			}
			if err.Error() != "division by zero" {
				t.Errorf("%q gave message %q", src, err.Error())
			}
		}
	})
	t.Run("domain", func(t *testing.T) {
		for _, src := range []string{"(-8) ** 0.5", "(-2) ** 1.5", "0 ** -1"} {
			_, err := safeexpr.EvalString(src)
			var de *safeexpr.DomainError
			if !errors.As(err, &de) {
				t.Errorf("%q gave %v, want a domain error", src, err)
			}
		}
	})
	t.Run("syntax", func(t *testing.T) {
		for _, src := range []string{"", "   ", "x + 1", "__import__('os')", "exec('rm -rf /')", "1e10", "2 +", "(2", "2)", "1 2"} {
			_, err := safeexpr.EvalString(src)
			if err == nil {
				t.Errorf("%q evaluated but should not have", src)
				continue
			}
			var ie safeexpr.InputError
			if !errors.As(err, &ie) {
				t.Errorf("%q gave error %T, want an InputError", src, err)
			}
		}
	})
	t.Run("kinds-disjoint", func(t *testing.T) {
		// An evaluation error is never a syntax error and vice versa.
		_, err := safeexpr.EvalString("1 / 0")
		var ie safeexpr.InputError
		if errors.As(err, &ie) {
			t.Errorf("1 / 0 gave an InputError: %v", err)
		}
		var ee safeexpr.EvalError
		if !errors.As(err, &ee) {
			t.Errorf("1 / 0 gave %T, want an EvalError", err)
		}
		_, err = safeexpr.EvalString("x + 1")
		if errors.As(err, &ee) {
			t.Errorf("x + 1 gave an EvalError: %v", err)
		}
	})
}

func TestEvalIdempotent(t *testing.T) {
	const src = "2 ** 10 - 3 * (4 // 3)"
	first, err := safeexpr.EvalString(src)
	if err != nil {
		t.Fatalf("%q failed to evaluate: %v", src, err)
	}
	for i := 0; i < 5; i++ {
		r, err := safeexpr.EvalString(src)
		if err != nil {
			t.Fatalf("%q failed on repeat %d: %v", src, i, err)
		}
		if r.String() != first.String() {
			t.Errorf("repeat %d gave %s, want %s", i, r, first)
		}
	}
}

func TestEvalPrec(t *testing.T) {
	lo, err := safeexpr.EvalString("1 / 3", safeexpr.Prec(16))
	if err != nil {
		t.Fatal(err)
	}
	hi, err := safeexpr.EvalString("1 / 3", safeexpr.Prec(256))
	if err != nil {
		t.Fatal(err)
	}
	if lo.Float(256).Cmp(hi.Float(256)) == 0 {
		t.Error("precision option had no effect on 1 / 3")
	}
	if f := hi.Float64(); f != 1.0/3.0 {
		t.Errorf("1 / 3 at 256 bits rounded to %g", f)
	}
}

func TestParseOnceEvalMany(t *testing.T) {
	e, err := safeexpr.ParseString("6 * 7")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		r, err := e.Eval()
		if err != nil {
			t.Fatal(err)
		}
		if r.String() != "42" {
			t.Errorf("6 * 7 evaluated to %s", r)
		}
	}
}
