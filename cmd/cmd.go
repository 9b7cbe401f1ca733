// SPDX-License-Identifier: GPL-2.0-or-later

package cmd

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

type Func func(args Arguments) error

// Commands maps lower case command names to their implementation.
type Commands map[string]Func

func New() Commands {
	return make(Commands)
}

func (c Commands) Add(name string, f Func) error {
	ln := strings.ToLower(name)
	if _, ok := c[ln]; ok {
		return errors.Errorf("command %s already defined", ln)
	}
	c[ln] = f
	return nil
}

func (c Commands) Exists(name string) bool {
	_, ok := c[strings.ToLower(name)]
	return ok
}

// List returns all command names sorted.
func (c Commands) List() []string {
	cmds := make([]string, 0, len(c))
	for cmd := range c {
		cmds = append(cmds, cmd)
	}
	sort.Strings(cmds)
	return cmds
}

// Execute runs the command named by argument 0. It reports false if
// there is no such command.
func (c Commands) Execute(a Arguments) (bool, error) {
	args := a.Args()
	if len(args) == 0 {
		return false, nil
	}
	name := strings.ToLower(args[0].String())
	f, ok := c[name]
	if !ok {
		return false, nil
	}
	if err := f(a); err != nil {
		return true, errors.Wrapf(err, "%s", name)
	}
	return true, nil
}

var (
	commands = New()
)

func Must(err error) {
	if err != nil {
		panic(err.Error())
	}
}

func AddCommand(name string, f Func) error {
	return commands.Add(name, f)
}

func Exists(name string) bool {
	return commands.Exists(name)
}

func Execute(a Arguments) (bool, error) {
	return commands.Execute(a)
}

func List() []string {
	return commands.List()
}
