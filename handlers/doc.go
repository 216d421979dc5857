// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the fortune wheel API.

SpinHandler translates HTTP requests into wheel.Service calls and maps the
service's errors onto status codes:

	spinHandler := handlers.NewSpinHandler(svc)

# Participation

POST /spins decodes a models.CreateSpinRequest and calls Play. Responses:

  - 201 with the recorded Spin
  - 400 for malformed JSON or field validation errors (per-field messages in "fields")
  - 409 when the national ID already played
  - 500 for storage failures

# Lookups

GET /spins/nationalId/{nationalId} returns the participant's spin or 404 with
{"message": "Spin not found"}. GET /spins/special-prize reports
{"awarded": bool}. GET /prizes lists the wheel entries in display order.

# Administration

GET /spins lists every spin newest first. PATCH /spins/{id}/disburse marks a
prize as handed over; repeating it is harmless. Admin key checks happen in
the router, not here.
*/
package handlers
