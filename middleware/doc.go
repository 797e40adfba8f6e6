// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

	mux.HandleFunc("GET /view", middleware.WithLogging(handler))

Logs method, path, client IP, status and duration_ms once the handler returns.

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows GET, POST, PUT, DELETE, OPTIONS with Content-Type and X-Edit-Key.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

ParseJSONBody reads at most MaxBodyBytes and rejects trailing data.
*/
package middleware
