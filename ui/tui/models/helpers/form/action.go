// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package form

const (
	ActionNone = iota
	ActionNext
	ActionPrev
	ActionSubmit
)

type Action int
