// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"os"
)

const fitVersion = "0.1.0"

type Version struct {
}

func (c *Version) Run(g *Globals) error {
	fmt.Fprintf(os.Stdout, "fit version %s\n", fitVersion)
	return nil
}
