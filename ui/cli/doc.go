// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface of the console using
// Cobra. The root command launches the TUI; the subcommands drive the same
// state flows headless through `state.Store`, so messages and error texts
// match what the TUI shows. CLI code should stay thin.
package cli
