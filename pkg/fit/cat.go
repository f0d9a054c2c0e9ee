// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package fit

import (
	"fmt"

	"github.com/fitvcs/fit/modules/objfmt"
)

// CatResult is what `cat-file` needs to print: the object's type,
// size, and raw payload.
type CatResult struct {
	Kind    objfmt.Kind
	Size    int
	Payload []byte
}

// CatFile reads the object named by hashStr and returns its type, size
// and payload. The command layer picks which field of CatResult to
// print for the `-t`/`-s` display-only variants.
func (r *Repository) CatFile(hashStr string) (*CatResult, error) {
	h, err := objfmt.NewHash(hashStr)
	if err != nil {
		return nil, fmt.Errorf("fit: %w", err)
	}
	kind, payload, err := r.Objects.Get(h)
	if err != nil {
		return nil, fmt.Errorf("fit: cat-file %s: %w", hashStr, err)
	}
	return &CatResult{Kind: kind, Size: len(payload), Payload: payload}, nil
}
