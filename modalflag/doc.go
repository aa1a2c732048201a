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

// Package modalflag wraps the flag package of the standard library with
// support for program modes. A mode is a command line argument that selects a
// different way of running the program, each with its own set of flags. The
// go command is the obvious example: build, test and run all take different
// flags and arguments.
//
// Unlike flag.FlagSet, the arguments are supplied with NewArgs() and Parse()
// takes no arguments. This allows Parse() to be called once per layer of
// modes, each call consuming the arguments that belong to it:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DISASM")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		trace := md.AddBool("trace", false, "log every instruction")
//		...
//	}
//
// The first mode passed to AddSubModes() is the default mode. It is selected
// when the next argument is not one of the listed modes. Mode comparisons are
// case insensitive and modes are reported in upper case.
//
// Help is handled automatically when the -help flag is present. The help
// message lists the flags and the modes available at that layer, followed by
// any text given to AdditionalHelp(). The Output field must be set for help
// messages to be seen.
package modalflag
