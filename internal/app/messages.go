// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-entity-vc server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgMissingTenantHeader is returned when a request arrives without the
	// X-Tenant-ID header the API scopes every operation by.
	MsgMissingTenantHeader = "missing X-Tenant-ID header"

	// MsgRequestNotFound is returned when a status poll names a request id
	// that was never issued or has already been evicted.
	MsgRequestNotFound = "request not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
