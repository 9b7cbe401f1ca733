// SPDX-License-Identifier: GPL-2.0-or-later

package cmd

import "testing"

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		in     string
		wantF  string
		wantAS string
		wantA  []Arg
	}{
		{
			in:     `set bsp_selector first`,
			wantF:  `set bsp_selector first`,
			wantAS: `bsp_selector first`,
			wantA:  []Arg{{"set"}, {"bsp_selector"}, {"first"}},
		},
		{
			in:     `echo "hello world"`,
			wantF:  `echo "hello world"`,
			wantAS: `hello world`,
			wantA:  []Arg{{"echo"}, {"hello world"}},
		},
		{
			in:     ` inc  bsp_sample 4 `,
			wantF:  `inc  bsp_sample 4`,
			wantAS: `bsp_sample 4`,
			wantA:  []Arg{{"inc"}, {"bsp_sample"}, {"4"}},
		},
		{
			in:     `cvarlist // everything`,
			wantF:  `cvarlist // everything`,
			wantAS: ``,
			wantA:  []Arg{{"cvarlist"}},
		},
		{
			in:     `say "unterminated`,
			wantF:  `say "unterminated`,
			wantAS: ``,
			wantA:  []Arg{{"say"}},
		},
		{
			in:    ``,
			wantA: []Arg{},
		},
	} {
		arg := Parse(tc.in)
		if tc.wantF != arg.Full() {
			t.Errorf("Parse(%q).Full()=%q, want %q", tc.in, arg.Full(), tc.wantF)
		}
		if tc.wantAS != arg.ArgumentString() {
			t.Errorf("Parse(%q).ArgumentString()=%q, want %q", tc.in, arg.ArgumentString(), tc.wantAS)
		}
		as := arg.Args()
		if len(tc.wantA) != len(as) {
			t.Fatalf("Parse(%q).Args() has len(%d), want %d", tc.in, len(as), len(tc.wantA))
		}
		for i := range tc.wantA {
			if tc.wantA[i] != as[i] {
				t.Errorf("Arg[%d]=%q, want %q", i, as[i], tc.wantA[i])
			}
		}
	}
}

func TestArg(t *testing.T) {
	for _, tc := range []struct {
		in string
		i  int
		f  float32
		b  bool
	}{
		{"1", 1, 1, true},
		{"0", 0, 0, false},
		{"2.5", 0, 2.5, false},
		{"on", 0, 0, true},
		{"-7", -7, -7, false},
	} {
		a := Arg{tc.in}
		if got := a.Int(); got != tc.i {
			t.Errorf("Arg(%q).Int() = %v want %v", tc.in, got, tc.i)
		}
		if got := a.Float32(); got != tc.f {
			t.Errorf("Arg(%q).Float32() = %v want %v", tc.in, got, tc.f)
		}
		if got := a.Bool(); got != tc.b {
			t.Errorf("Arg(%q).Bool() = %v want %v", tc.in, got, tc.b)
		}
	}
	if got := Parse("a").Argv(3); got.String() != "" {
		t.Errorf("Argv(3) = %q want empty", got)
	}
}
