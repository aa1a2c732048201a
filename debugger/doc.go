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

// Package debugger implements an interactive stepper for the W65C02S
// emulation. Each key press moves the emulation forward one instruction and
// the result of the instruction is printed.
//
// Initialisation of the debugger is done with the NewDebugger() function
//
//	dbg := debugger.NewDebugger(machine, term)
//
// The term argument must be an instance of a type that satisfies the
// terminal.Terminal interface. The colorterm and plainterm sub-packages of
// the terminal package provide reference implementations. NewTerminal()
// chooses between them depending on whether the standard input is a real
// terminal.
//
// Once initialised, the debugger can be started with the Start() function.
// The Start() function returns when the user quits or the input is exhausted.
package debugger
