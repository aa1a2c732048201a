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

package preferences

import (
	"fmt"

	"github.com/JForte05/Steel6502/logger"
	"github.com/JForte05/Steel6502/prefs"
)

// DefaultMaxSteps is the number of instructions a run is allowed to execute
// before it is stopped.
const DefaultMaxSteps = 10000000

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	grp *prefs.Group

	// execute the undefined opcodes as NOPs of the documented length rather
	// than failing with an illegal opcode error
	ReservedNOP prefs.Bool

	// the number of instructions a call to Machine.Run() will execute before
	// giving up. a value of zero means no limit
	MaxSteps prefs.Int

	// log every instruction as it is executed
	Trace prefs.Bool

	// log writes to ROM. a rejected write is never fatal but it is normally
	// a sign that the program is misbehaving
	LogROMWrites prefs.Bool
}

func (p *Preferences) String() string {
	return p.grp.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values from the current command line preference group
// (see prefs.PushCommandLineStack()) are applied after the defaults.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		grp: prefs.NewGroup(),
	}

	p.MaxSteps.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return fmt.Errorf("max steps cannot be negative")
		}
		return nil
	})

	err := p.grp.Add("cpu.reservednop", &p.ReservedNOP)
	if err != nil {
		return nil, err
	}
	err = p.grp.Add("machine.maxsteps", &p.MaxSteps)
	if err != nil {
		return nil, err
	}
	err = p.grp.Add("cpu.trace", &p.Trace)
	if err != nil {
		return nil, err
	}
	err = p.grp.Add("bus.logromwrites", &p.LogROMWrites)
	if err != nil {
		return nil, err
	}

	err = p.SetDefaults()
	if err != nil {
		return nil, err
	}

	err = p.grp.ApplyCommandLine()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to their default values.
func (p *Preferences) SetDefaults() error {
	err := p.grp.Reset()
	if err != nil {
		return err
	}
	err = p.MaxSteps.Set(DefaultMaxSteps)
	if err != nil {
		return err
	}
	return p.LogROMWrites.Set(true)
}

// Set the preference identified by key. See String() for the list of keys.
func (p *Preferences) Set(key string, v prefs.Value) error {
	return p.grp.Set(key, v)
}

// permission adapts a boolean preference to the logger.Permission interface.
type permission struct {
	b *prefs.Bool
}

func (p permission) AllowLogging() bool {
	return p.b.Get().(bool)
}

// TracePermission returns a logger.Permission that allows logging when the
// cpu.trace preference is true.
func (p *Preferences) TracePermission() logger.Permission {
	return permission{b: &p.Trace}
}

// ROMWritePermission returns a logger.Permission that allows logging when the
// bus.logromwrites preference is true.
func (p *Preferences) ROMWritePermission() logger.Permission {
	return permission{b: &p.LogROMWrites}
}
