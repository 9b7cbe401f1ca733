// SPDX-License-Identifier: GPL-2.0-or-later

// Package alias gives names to console command sequences, e.g.
//
//	alias fast "set bsp_selector first; set bsp_parallel 0"
package alias

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"polybsp/cmd"
	"polybsp/conlog"
)

type Aliases map[string]string

func New() Aliases {
	return make(Aliases)
}

// Register adds the alias, unalias and unaliasall commands through add,
// which is cmd.AddCommand or the Add method of a cmd.Commands.
func (al Aliases) Register(add func(string, cmd.Func) error) error {
	for name, f := range map[string]cmd.Func{
		"alias":      al.alias,
		"unalias":    al.unalias,
		"unaliasall": al.unaliasAll,
	} {
		if err := add(name, f); err != nil {
			return err
		}
	}
	return nil
}

func (al Aliases) alias(a cmd.Arguments) error {
	args := a.Args()[1:]
	switch len(args) {
	case 0:
		al.list()
	case 1:
		if v, ok := al[args[0].String()]; ok {
			conlog.Printf("  %s: %s", args[0], v)
		}
	default:
		names := make([]string, len(args)-1)
		for i, s := range args[1:] {
			names[i] = s.String()
		}
		al[args[0].String()] = strings.TrimSpace(strings.Join(names, " ")) + "\n"
	}
	return nil
}

func (al Aliases) list() {
	if len(al) == 0 {
		conlog.Printf("no alias commands found\n")
		return
	}
	names := make([]string, 0, len(al))
	for k := range al {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		// each alias value ends with a '\n'
		conlog.Printf("  %s: %s", k, al[k])
	}
	conlog.Printf("%v alias command(s)\n", len(al))
}

func (al Aliases) unalias(a cmd.Arguments) error {
	args := a.Args()[1:]
	if len(args) != 1 {
		conlog.Printf("unalias <name> : delete alias\n")
		return nil
	}
	name := args[0].String()
	if _, ok := al[name]; !ok {
		return errors.Errorf("no alias named %s", name)
	}
	delete(al, name)
	return nil
}

func (al Aliases) unaliasAll(_ cmd.Arguments) error {
	clear(al)
	return nil
}

func (al Aliases) Get(name string) (string, bool) {
	v, ok := al[name]
	return v, ok
}

// Inserter is the part of a command buffer an alias expands into.
type Inserter interface {
	InsertText(text string)
}

// Executor returns a console executor that expands aliases into b, in
// front of the text still waiting there.
func (al Aliases) Executor(b Inserter) func(cmd.Arguments) (bool, error) {
	return func(a cmd.Arguments) (bool, error) {
		v, ok := al.Get(a.Argv(0).String())
		if !ok {
			return false, nil
		}
		b.InsertText(v)
		return true, nil
	}
}
