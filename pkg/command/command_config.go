// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"os"
	"strings"

	"github.com/fitvcs/fit/pkg/fit"
)

type Config struct {
	Args []string `arg:"" name:"args" help:"key, or key=value"`
}

func (c *Config) Run(g *Globals) error {
	r, err := fit.Open(g.CWD)
	if err != nil {
		diev("%v", err)
		return err
	}
	r.Verbose = g.Verbose
	if len(c.Args) == 0 {
		die("usage: fit config <key>[=<value>]")
		return ErrArgRequired
	}
	kv := c.Args[0]
	key, value, hasValue := strings.Cut(kv, "=")
	if !hasValue {
		got, ok := r.GetConfig(key)
		if !ok {
			return fmt.Errorf("fit: no such config key: %s", key)
		}
		fmt.Fprintln(os.Stdout, got)
		return nil
	}
	if err := r.SetConfig(key, value); err != nil {
		diev("config: %v", err)
		return err
	}
	return nil
}
