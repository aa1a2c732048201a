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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions report a test error and return false if the
// expectation is not met. The Demand functions are fatal to the test.
//
// It is worth describing how nil is handled because it is not obvious. The
// nil type is considered a success and consequently will cause ExpectFailure
// to fail and ExpectSuccess to succeed. This is because of how errors usually
// work, nil indicating no error.
//
// All Expect and Demand functions accept optional tags which are prefixed to
// any failure message. This is useful when testing inside a loop:
//
//	for i := 0; i <= 255; i++ {
//		test.ExpectEquality(t, r.IsZero(), i == 0, i)
//	}
//
// The Writer type implements the io.Writer interface and should be used to
// capture output for comparison.
package test
