// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for FX Console.
//
// Usage:
//
//	go run . [flags]
//	./fxconsole [flags]
//
// This launches the console CLI. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/fxconsole/internal/logging"
	"github.com/toeirei/fxconsole/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
