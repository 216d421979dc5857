// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package prize defines the wheel's entries and how an outcome is drawn.
package prize
