// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - CreateSpinRequest: customerName, nationalId, email, phoneNumber,
    and optional branch, award, isSpecialPrize

Requests are validated server-side:

	req.Normalize()
	if err := req.Validate(); err != nil {
		var verr *models.ValidationError
		// verr.Fields maps JSON field names to messages
	}

Rules:

  - nationalId: exactly 9 digits
  - phoneNumber: 8 digits, first digit 2-8
  - email: valid address
  - customerName: required, at most 100 characters

# Response Types

  - SpecialPrizeResponse: awarded
  - MessageResponse: message
  - ErrorResponse: error, message

# Domain Types

  - Spin: one participation record (award, special flag, disbursement flag)
*/
package models
