// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.

// Package client talks to the remote currency API. The console treats the
// API as a black box: it lists and creates currencies, creates rates and
// asks for conversions.
package client
