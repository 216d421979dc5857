// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms), and records the request in the metrics package under the
matched route pattern.

# Admin Key

Protect administrator routes:

	mux.HandleFunc("GET /spins", middleware.WithLogging(
		middleware.RequireAdminKey(cfg.AdminKey, h.ListSpins)))

Requests must carry a matching X-Admin-Key header. An empty configured key
leaves the route open.

# CORS Middleware

Enable cross-origin requests from the wheel frontend:

	server := http.Server{
		Handler: middleware.CORS(cfg.Origins())(mux),
	}

Backed by github.com/rs/cors. Allows methods GET, POST, PATCH, OPTIONS with
headers Content-Type, Authorization, X-Admin-Key, and credentials.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.CreateSpinRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used in request and admin-rejection logs.
*/
package middleware
