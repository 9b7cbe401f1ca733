// SPDX-License-Identifier: GPL-2.0-or-later

package cmd

import (
	"strconv"
	"strings"
	"unicode"
)

// Arg is a single console argument.
type Arg struct {
	a string
}

func (a Arg) String() string {
	return a.a
}

// Int returns 0 for anything that is not an integer.
func (a Arg) Int() int {
	r, err := strconv.ParseInt(a.a, 10, 0)
	if err != nil {
		return 0
	}
	return int(r)
}

func (a Arg) Float32() float32 {
	r, err := strconv.ParseFloat(a.a, 32)
	if err != nil {
		return 0
	}
	return float32(r)
}

func (a Arg) Bool() bool {
	switch strings.ToLower(a.a) {
	case "1", "t", "true", "on", "yes":
		return true
	default:
		return false
	}
}

// Arguments is one parsed console line. Argument 0 is the command name.
type Arguments struct {
	args []Arg
	full string
}

// Argv returns argument i or an empty Arg if there are not enough.
func (c Arguments) Argv(i int) Arg {
	if i < 0 || i >= len(c.args) {
		return Arg{}
	}
	return c.args[i]
}

func (c Arguments) Full() string {
	return c.full
}

func (c Arguments) Args() []Arg {
	return c.args
}

// ArgumentString returns everything after the command name, without the
// surrounding quotes of a single quoted argument.
func (c Arguments) ArgumentString() string {
	if len(c.args) < 2 {
		return ""
	}
	r := strings.TrimPrefix(c.full, c.args[0].String())
	r = strings.TrimLeftFunc(r, unicode.IsSpace)
	if len(r) > 1 && r[0] == '"' {
		r = strings.Trim(r, "\"\t\n\v\f\r ")
	}
	return r
}

// Parse splits a console line into words. Double quotes group words, a
// "//" outside of quotes starts a comment and a line break ends the line.
func Parse(s string) Arguments {
	args := Arguments{
		full: strings.TrimFunc(s, unicode.IsSpace),
		args: []Arg{},
	}
	in := args.full
	for len(in) > 0 {
		switch {
		case in[0] == '\n' || in[0] == '\r':
			return args
		case in[0] == ' ' || in[0] == '\t':
			in = in[1:]
		case strings.HasPrefix(in, "//"):
			return args
		case in[0] == '"':
			end := strings.IndexAny(in[1:], "\"\n")
			if end < 0 || in[1+end] == '\n' {
				// unterminated, drop it
				return args
			}
			args.args = append(args.args, Arg{in[1 : 1+end]})
			in = in[2+end:]
		default:
			end := strings.IndexFunc(in, func(r rune) bool { return r <= ' ' })
			if end < 0 {
				end = len(in)
			}
			args.args = append(args.args, Arg{in[:end]})
			in = in[end:]
		}
	}
	return args
}
