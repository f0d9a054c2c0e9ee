// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Globals carries the flags shared by every subcommand.
type Globals struct {
	Verbose bool   `short:"V" name:"verbose" help:"Make the operation more talkative"`
	CWD     string `name:"cwd" help:"Set the path to the repository worktree"`
}

// DbgPrint writes a colored debug line to stderr when --verbose is set.
func (g *Globals) DbgPrint(format string, args ...any) {
	if !g.Verbose {
		return
	}
	message := strings.TrimSuffix(fmt.Sprintf(format, args...), "\n")
	var buffer bytes.Buffer
	for _, s := range strings.Split(message, "\n") {
		_, _ = buffer.WriteString("\x1b[33m* ")
		_, _ = buffer.WriteString(s)
		_, _ = buffer.WriteString("\x1b[0m\n")
	}
	_, _ = os.Stderr.Write(buffer.Bytes())
}

type Debuger interface {
	DbgPrint(format string, args ...any)
}

var ErrArgRequired = errors.New("arg required")
