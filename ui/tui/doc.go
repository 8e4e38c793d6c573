// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui is the interactive console. Views render snapshots of
// core/state and send intents through the root model, which is the only
// place the state changes.
package tui
