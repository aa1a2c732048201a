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

// Package ansi defines ANSI control codes for pen colours and styles.
package ansi

import (
	"fmt"
	"strings"
)

// ansi colour numbers.
var colours = map[string]int{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
	"normal":  9,
}

// ansi target.
const (
	targetPen       = 3
	targetBrightPen = 9
)

// ansi attributes.
var attributes = map[string]int{
	"bold":      1,
	"underline": 4,
	"inverse":   7,
}

// Pens is the table of bright colours to be used for text.
var Pens = map[string]string{}

// DimPens is the table of normal intensity colours to be used for text.
var DimPens = map[string]string{}

// PenStyles is the table of styles to be used for text.
var PenStyles = map[string]string{}

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[0m"

func init() {
	for c := range colours {
		if c == "normal" {
			continue
		}
		Pens[c], _ = Build(c, "", true)
		DimPens[c], _ = Build(c, "", false)
	}
	for a := range attributes {
		PenStyles[a], _ = Build("", a, false)
	}
}

// Build creates the ANSI sequence for a pen with the named colour and
// attribute. Either can be the empty string.
func Build(pen string, attribute string, bright bool) (string, error) {
	var codes []string

	if pen != "" {
		c, ok := colours[strings.ToLower(pen)]
		if !ok {
			return "", fmt.Errorf("ansi: unknown pen (%s)", pen)
		}
		t := targetPen
		if bright {
			t = targetBrightPen
		}
		codes = append(codes, fmt.Sprintf("%d%d", t, c))
	}

	if attribute != "" {
		a, ok := attributes[strings.ToLower(attribute)]
		if !ok {
			return "", fmt.Errorf("ansi: unknown attribute (%s)", attribute)
		}
		codes = append(codes, fmt.Sprintf("%d", a))
	}

	if len(codes) == 0 {
		return NormalPen, nil
	}

	return fmt.Sprintf("\033[%sm", strings.Join(codes, ";")), nil
}
