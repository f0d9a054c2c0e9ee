// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"os"
)

func diev(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "fatal: "+format+"\n", a...)
}

func die(m string) {
	fmt.Fprintln(os.Stderr, "fatal: "+m)
}
