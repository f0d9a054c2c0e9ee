// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package fit

// SetConfig applies key=value to the repository's config and persists it.
func (r *Repository) SetConfig(key, value string) error {
	if err := r.Config.Set(key, value); err != nil {
		return err
	}
	return r.Config.Save(r.configPath())
}

// GetConfig reads back a single config key.
func (r *Repository) GetConfig(key string) (string, bool) {
	return r.Config.Get(key)
}
