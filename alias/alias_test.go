// SPDX-License-Identifier: GPL-2.0-or-later

package alias

import (
	"bytes"
	"os"
	"slices"
	"testing"

	"polybsp/cbuf"
	"polybsp/cmd"
	"polybsp/conlog"
)

func TestAliasRegister(t *testing.T) {
	al := New()
	cmds := cmd.New()
	if err := al.Register(cmds.Add); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(cmds.List(), []string{"alias", "unalias", "unaliasall"}) {
		t.Errorf("registered %v", cmds.List())
	}
	if err := al.Register(cmds.Add); err == nil {
		t.Errorf("registering twice succeeded")
	}
}

func TestExecuteAlias(t *testing.T) {
	al := New()
	cmds := cmd.New()
	if err := al.Register(cmds.Add); err != nil {
		t.Fatal(err)
	}
	var got []string
	cmd.Must(cmds.Add("set", func(a cmd.Arguments) error {
		got = append(got, a.ArgumentString())
		return nil
	}))
	cb := cbuf.New(cmds.Execute)
	cb.AddExecutor(al.Executor(cb))

	cb.AddText(`alias fast "set bsp_selector first; set bsp_parallel 0"` + "\n")
	cb.AddText("fast\nset done 1\n")
	if err := cb.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	want := []string{"bsp_selector first", "bsp_parallel 0", "done 1"}
	if !slices.Equal(got, want) {
		t.Errorf("ran %q want %q", got, want)
	}
	if v, ok := al.Get("fast"); !ok || v != "set bsp_selector first; set bsp_parallel 0\n" {
		t.Errorf("Get(fast) = %q, %v", v, ok)
	}

	var out bytes.Buffer
	conlog.SetOutput(&out)
	defer conlog.SetOutput(os.Stdout)
	cb.AddText("alias\n")
	if err := cb.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if want := "  fast: set bsp_selector first; set bsp_parallel 0\n1 alias command(s)\n"; out.String() != want {
		t.Errorf("alias listed %q want %q", out.String(), want)
	}

	cb.AddText("unalias fast\n")
	if err := cb.Execute(); err != nil {
		t.Fatalf("unalias: %v", err)
	}
	if _, ok := al.Get("fast"); ok {
		t.Errorf("fast still defined")
	}
	cb.AddText("unalias fast\n")
	if err := cb.Execute(); err == nil {
		t.Errorf("removing a missing alias succeeded")
	}
	cb.AddText("alias a b\nalias c d\nunaliasall\n")
	if err := cb.Execute(); err != nil || len(al) != 0 {
		t.Errorf("unaliasall left %v, %v", al, err)
	}
}
