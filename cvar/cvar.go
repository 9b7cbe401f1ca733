// SPDX-License-Identifier: GPL-2.0-or-later

package cvar

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"polybsp/cmd"
	"polybsp/conlog"
)

var (
	cvarArray  []*Cvar
	cvarByName = make(map[string]*Cvar)
)

type flag uint64

const (
	NONE flag = 0
	// ARCHIVE cvars are build settings, reset by resetcfg
	ARCHIVE flag = 1
	// ROM cvars can not be changed from the console
	ROM flag = 1 << 6
)

type CallbackFunc func(cv *Cvar)

type Cvar struct {
	archive  bool
	rom      bool
	user     bool
	callback CallbackFunc
	name     string
	help     string
	// stringValue is the truth, value the derived one
	stringValue  string
	value        float32
	defaultValue string
	id           int
}

func All() []*Cvar {
	return cvarArray
}

func (cv *Cvar) Archive() bool {
	return cv.archive
}

func (cv *Cvar) UserDefined() bool {
	return cv.user
}

func (cv *Cvar) SetCallback(cb CallbackFunc) {
	cv.callback = cb
}

// SetHelp sets the text shown by cvarlist.
func (cv *Cvar) SetHelp(h string) *Cvar {
	cv.help = h
	return cv
}

func (cv *Cvar) Help() string {
	return cv.help
}

func (cv *Cvar) SetByString(s string) {
	if cv.rom {
		return
	}
	cv.stringValue = s
	pf, _ := strconv.ParseFloat(cv.stringValue, 32)
	cv.value = float32(pf)
	if cv.callback != nil {
		cv.callback(cv)
	}
}

func (cv *Cvar) Reset() {
	cv.SetByString(cv.defaultValue)
}

func (cv *Cvar) String() string {
	return cv.stringValue
}

func (cv *Cvar) Default() string {
	return cv.defaultValue
}

func (cv *Cvar) ID() int {
	return cv.id
}

func (cv *Cvar) Name() string {
	return cv.name
}

func (cv *Cvar) Value() float32 {
	return cv.value
}

// Int truncates the value.
func (cv *Cvar) Int() int {
	return int(cv.value)
}

func (cv *Cvar) SetValue(value float32) {
	if float32(int(value)) == value {
		cv.SetByString(strconv.FormatInt(int64(value), 10))
	} else {
		cv.SetByString(strconv.FormatFloat(float64(value), 'f', -1, 32))
	}
}

func (cv *Cvar) Toggle() {
	if cv.String() == "1" {
		cv.SetByString("0")
	} else {
		cv.SetByString("1")
	}
}

func (cv *Cvar) Bool() bool {
	return cv.stringValue != "0"
}

func Get(name string) (*Cvar, bool) {
	cv, ok := cvarByName[strings.ToLower(name)]
	return cv, ok
}

func GetByID(id int) (*Cvar, error) {
	if id < 0 || id >= len(cvarArray) {
		return nil, errors.Errorf("cvar id %d out of bounds", id)
	}
	return cvarArray[id], nil
}

func create(name, value string) *Cvar {
	cv := &Cvar{name: name, defaultValue: value}
	cv.SetByString(value)
	cv.id = len(cvarArray)
	cvarArray = append(cvarArray, cv)
	cvarByName[name] = cv
	return cv
}

func Register(name, value string, flags flag) (*Cvar, error) {
	name = strings.ToLower(name)
	if _, ok := cvarByName[name]; ok {
		return nil, errors.Errorf("can't register variable %s, already defined", name)
	}
	if cmd.Exists(name) {
		return nil, errors.Errorf("can't register variable %s, it is a command", name)
	}

	cv := create(name, value)
	cv.archive = flags&ARCHIVE != 0
	cv.rom = flags&ROM != 0
	return cv, nil
}

func MustRegister(n, v string, flags flag) *Cvar {
	cv, err := Register(n, v, flags)
	if err != nil {
		panic(err.Error())
	}
	return cv
}

// Execute handles "name" and "name value" console lines. It reports false
// if argument 0 is not a cvar.
func Execute(a cmd.Arguments) (bool, error) {
	args := a.Args()
	if len(args) == 0 {
		return false, nil
	}
	cv, ok := Get(args[0].String())
	if !ok {
		return false, nil
	}
	if len(args) == 1 {
		conlog.Printf("\"%s\" is \"%s\"\n", cv.Name(), cv.String())
		return true, nil
	}
	if cv.rom {
		return true, errors.Errorf("%s is read only", cv.Name())
	}
	cv.SetByString(args[1].String())
	slog.Debug("cvar changed", "name", cv.Name(), "value", cv.String())
	return true, nil
}

func init() {
	cmd.Must(cmd.AddCommand("cvarlist", list))
	cmd.Must(cmd.AddCommand("cycle", cycle))
	cmd.Must(cmd.AddCommand("inc", inc))
	cmd.Must(cmd.AddCommand("reset", reset))
	cmd.Must(cmd.AddCommand("resetall", resetAll))
	cmd.Must(cmd.AddCommand("resetcfg", resetCfg))
	cmd.Must(cmd.AddCommand("set", set))
	cmd.Must(cmd.AddCommand("toggle", toggle))
}

func set(a cmd.Arguments) error {
	args := a.Args()[1:]
	if len(args) < 2 {
		conlog.Printf("set <cvar> <value>\n")
		return nil
	}
	name := strings.ToLower(args[0].String())
	if cmd.Exists(name) {
		return errors.Errorf("%s conflicts with a command", name)
	}
	if cv, ok := cvarByName[name]; ok {
		cv.SetByString(args[1].String())
	} else {
		cv := create(name, args[1].String())
		cv.user = true
	}
	return nil
}

func toggle(a cmd.Arguments) error {
	args := a.Args()[1:]
	if len(args) != 1 {
		conlog.Printf("toggle <cvar> : toggle cvar\n")
		return nil
	}
	cv, ok := Get(args[0].String())
	if !ok {
		return errors.Errorf("variable %v not found", args[0])
	}
	cv.Toggle()
	return nil
}

func inc(a cmd.Arguments) error {
	args := a.Args()[1:]
	var by float32 = 1
	switch len(args) {
	case 1:
	case 2:
		by = args[1].Float32()
	default:
		conlog.Printf("inc <cvar> [amount] : increment cvar\n")
		return nil
	}
	cv, ok := Get(args[0].String())
	if !ok {
		return errors.Errorf("variable %v not found", args[0])
	}
	cv.SetValue(cv.Value() + by)
	return nil
}

func reset(a cmd.Arguments) error {
	args := a.Args()[1:]
	if len(args) != 1 {
		conlog.Printf("reset <cvar> : reset cvar to default\n")
		return nil
	}
	cv, ok := Get(args[0].String())
	if !ok {
		return errors.Errorf("variable %v not found", args[0])
	}
	cv.Reset()
	return nil
}

func resetAll(_ cmd.Arguments) error {
	for _, cv := range All() {
		cv.Reset()
	}
	return nil
}

func resetCfg(_ cmd.Arguments) error {
	for _, cv := range All() {
		if cv.Archive() {
			cv.Reset()
		}
	}
	return nil
}

func list(a cmd.Arguments) error {
	prefix := a.Argv(1).String()
	count := 0
	for _, v := range All() {
		if !strings.HasPrefix(v.Name(), prefix) {
			continue
		}
		count++
		mark := " "
		if v.Archive() {
			mark = "*"
		}
		conlog.Printf("%s %s \"%s\"", mark, v.Name(), v.String())
		if v.Help() != "" {
			conlog.Printf("  %s", v.Help())
		}
		conlog.Printf("\n")
	}
	if prefix != "" {
		conlog.Printf("%v cvars beginning with \"%v\"\n", count, prefix)
	} else {
		conlog.Printf("%v cvars\n", count)
	}
	return nil
}

// cycle sets the cvar to the value following its current one in the list.
func cycle(a cmd.Arguments) error {
	args := a.Args()[1:]
	if len(args) < 2 {
		conlog.Printf("cycle <cvar> <value list>: cycle cvar through a list of values\n")
		return nil
	}
	cv, ok := Get(args[0].String())
	if !ok {
		return errors.Errorf("variable %v not found", args[0])
	}
	values := args[1:]
	next := 0
	for i, v := range values {
		if v.String() == cv.String() {
			next = (i + 1) % len(values)
			break
		}
	}
	cv.SetByString(values[next].String())
	return nil
}
