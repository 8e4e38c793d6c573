// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.

// package sandbox is an in-memory implementation of the currency API. It
// follows the validation rules of the real backend closely enough to try the
// console, and the client tests, without a database.
package sandbox
