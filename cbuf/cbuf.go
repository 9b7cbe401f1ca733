// SPDX-License-Identifier: GPL-2.0-or-later

// Package cbuf buffers console text and runs it line by line.
package cbuf

import (
	"github.com/pkg/errors"

	"polybsp/cmd"
)

var ErrUnknownCommand = errors.New("unknown command")

// Executor runs a parsed line. It reports false if the line is not meant
// for it so the next executor gets a try.
type Executor func(a cmd.Arguments) (bool, error)

type CommandBuffer struct {
	text      string
	executors []Executor
}

func New(ex ...Executor) *CommandBuffer {
	return &CommandBuffer{executors: ex}
}

// AddExecutor adds e after the executors already present.
func (c *CommandBuffer) AddExecutor(e Executor) {
	c.executors = append(c.executors, e)
}

// AddText appends text to run after everything already buffered.
func (c *CommandBuffer) AddText(text string) {
	c.text += text
}

// InsertText puts text in front of everything already buffered.
func (c *CommandBuffer) InsertText(text string) {
	c.text = text + "\n" + c.text
}

// Execute runs the buffered lines until the buffer is empty or a line
// fails. The lines after a failing one stay buffered.
func (c *CommandBuffer) Execute() error {
	for len(c.text) != 0 {
		line := c.nextLine()
		if err := c.execute(line); err != nil {
			return err
		}
	}
	return nil
}

// nextLine removes the text up to the next line break or the next ';'
// outside of quotes.
func (c *CommandBuffer) nextLine() string {
	quote := false
	i := 0
Loop:
	for ; i < len(c.text); i++ {
		switch c.text[i] {
		case '"':
			quote = !quote
		case ';':
			if !quote {
				break Loop
			}
		case '\n':
			break Loop
		}
	}
	line := c.text[:i]
	if i < len(c.text) {
		i++
	}
	c.text = c.text[i:]
	return line
}

func (c *CommandBuffer) execute(line string) error {
	a := cmd.Parse(line)
	args := a.Args()
	if len(args) == 0 {
		return nil
	}
	for _, e := range c.executors {
		if ok, err := e(a); err != nil {
			return err
		} else if ok {
			return nil
		}
	}
	return errors.Wrapf(ErrUnknownCommand, "%q", args[0].String())
}
