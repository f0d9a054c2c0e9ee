// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"os"

	"github.com/fitvcs/fit/pkg/fit"
)

type Cat struct {
	Hash string `arg:"" name:"object" help:"The name of the object to show"`
	T    bool   `name:"type" short:"t" help:"Show object type"`
	Size bool   `name:"size" short:"s" help:"Show object size"`
}

func (c *Cat) Run(g *Globals) error {
	r, err := fit.Open(g.CWD)
	if err != nil {
		diev("%v", err)
		return err
	}
	r.Verbose = g.Verbose
	result, err := r.CatFile(c.Hash)
	if err != nil {
		diev("cat-file: %v", err)
		return err
	}
	switch {
	case c.T:
		fmt.Fprintln(os.Stdout, result.Kind)
	case c.Size:
		fmt.Fprintln(os.Stdout, result.Size)
	default:
		os.Stdout.Write(result.Payload)
	}
	return nil
}
