package safeexpr

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"2+3", "2+3"},
		{" 2 + 3 ", "2 + 3"},
		{"2^10", "2**10"},
		{"2^3^2", "2**3**2"},
		{"2**10", "2**10"},
		{"\t2 ^ 2\n", "2 ** 2"},
		{"^", "**"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
