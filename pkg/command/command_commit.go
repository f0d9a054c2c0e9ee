// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"strings"

	"github.com/fitvcs/fit/pkg/fit"
)

type Commit struct {
	Message []string `name:"message" short:"m" help:"Use the given as the commit message. Concatenate multiple -m options as separate paragraphs" placeholder:"<message>"`
}

func (c *Commit) Run(g *Globals) error {
	if len(c.Message) == 0 {
		die("aborting commit due to empty commit message")
		return ErrArgRequired
	}
	r, err := fit.Open(g.CWD)
	if err != nil {
		diev("%v", err)
		return err
	}
	r.Verbose = g.Verbose
	message := strings.Join(c.Message, "\n\n")
	hash, err := r.Commit(message)
	if err != nil {
		if errors.Is(err, fit.ErrNothingToCommit) {
			die("nothing to commit, working tree clean")
			return err
		}
		diev("commit: %v", err)
		return err
	}
	g.DbgPrint("create commit: %s", hash)
	return nil
}
