// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the fortune wheel API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(svc, cfg)

# Endpoints

Operational:

	GET /health  - Liveness check
	GET /metrics - Prometheus metrics

Participants (public):

	POST /spins                          - Spin the wheel
	GET  /spins/nationalId/{nationalId}  - Look up a participant's spin
	GET  /spins/special-prize            - Whether the special prize is gone
	GET  /prizes                         - Wheel entries in display order

Administration (X-Admin-Key when ADMIN_KEY is set):

	GET   /spins               - All spins, newest first
	PATCH /spins/{id}/disburse - Mark a prize as handed over

CORS is applied around the whole mux by the caller.
*/
package router
