// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.

// Package model contains the wire and form types shared by the API client,
// the state store and the user interfaces.
package model
