// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.

// Package state is the console's application state store. It holds one
// slice per flow (pager, currency list, rate submission, exchange query) and
// changes them only through Reduce, a pure transition from (State, Msg) to a
// new State plus the remote calls (Effects) the transition asks for.
//
// Effects are values. The TUI runs each one as a tea.Cmd and feeds the
// resulting Msg back into Reduce; the headless Store runs them inline.
package state
