// This file is part of Steel6502.
//
// Steel6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Steel6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Steel6502.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/JForte05/Steel6502/curated"
)

// Sentinel error patterns.
const (
	DuplicateKey = "prefs: duplicate key (%s)"
	SetFailed    = "prefs: %s: %v"
)

// Group is a named collection of preference values. Values in the group are
// addressed by key, for example "cpu.reservednop".
type Group struct {
	entries map[string]Pref
}

// NewGroup is the preferred method of initialisation for the Group type.
func NewGroup() *Group {
	return &Group{
		entries: make(map[string]Pref),
	}
}

// Add a preference value to the group.
func (g *Group) Add(key string, p Pref) error {
	if _, ok := g.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	g.entries[key] = p
	return nil
}

// Keys returns the sorted list of keys in the group.
func (g *Group) Keys() []string {
	k := make([]string, 0, len(g.entries))
	for key := range g.entries {
		k = append(k, key)
	}
	sort.Strings(k)
	return k
}

// Set the value of the preference identified by key.
func (g *Group) Set(key string, v Value) error {
	p, ok := g.entries[key]
	if !ok {
		return curated.Errorf(SetFailed, key, "no such preference")
	}
	if err := p.Set(v); err != nil {
		return curated.Errorf(SetFailed, key, err)
	}
	return nil
}

// Reset all values in the group.
func (g *Group) Reset() error {
	for _, key := range g.Keys() {
		if err := g.entries[key].Reset(); err != nil {
			return curated.Errorf(SetFailed, key, err)
		}
	}
	return nil
}

// ApplyCommandLine takes values from the current command line group (see
// PushCommandLineStack()) for every key in the group that has one.
func (g *Group) ApplyCommandLine() error {
	for _, key := range g.Keys() {
		if ok, v := GetCommandLinePref(key); ok {
			if err := g.Set(key, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Group) String() string {
	s := strings.Builder{}
	for _, key := range g.Keys() {
		s.WriteString(fmt.Sprintf("%s :: %s\n", key, g.entries[key]))
	}
	return s.String()
}
