// SPDX-License-Identifier: MIT

package model

import (
	"maps"
	"slices"
	"strings"
)

// registry is built at package initialisation and read-only afterwards.
var registry = map[string]*Plugin{
	sphereName:   newSphere(),
	cylinderName: newCylinder(),
}

// Lookup returns the plugin registered under name (case-insensitive).
func Lookup(name string) (*Plugin, error) {
	p, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, modelErrorf("Lookup "+name, ErrUnknownModel)
	}

	return p, nil
}

// Names returns the registered model names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}
