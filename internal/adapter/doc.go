// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The fraenkctl Authors

// Package adapter provides the transport layer for talking to the fraenk
// REST API.
//
// The primary abstraction is [CarrierAdapter], which decouples the service
// layer from the HTTP details of the carrier's undocumented endpoints. The
// package ships a resty-based implementation ([NewCarrierAdapter]) that owns
// the in-memory [session.Session] for one run.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401). A 401 carrying the
// carrier's "mfa_required" error code is deliberately not an error: it is
// the expected first half of the login handshake.
package adapter
