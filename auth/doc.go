// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identifier generation and admin key checks.

# Spin IDs

Spin records use random UUIDv4 identifiers:

	id := auth.NewSpinID()

The ID doubles as the reference number printed in the prize email.

# Admin Keys

Admin routes compare the X-Admin-Key header against the configured key:

	err := auth.ValidateAdminKey(r.Header.Get("X-Admin-Key"), cfg.AdminKey)

Both values are hashed with SHA-256 and compared with hmac.Equal, so the
check runs in constant time regardless of key length. An empty configured
key never validates; callers decide whether admin protection is enabled.
*/
package auth
