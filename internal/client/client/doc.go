// Package client contains the HTTP client for the staffscore API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) used by
//     the CLI: Signup, Login, Refresh, Me, the store lookups, score
//     operations and the catalog listings.
//  2. A concrete implementation over HTTP/JSON (see HTTPClient) built on
//     resty. It keeps the token pair returned by Login and transparently
//     refreshes an expired access token once before giving up.
//
// # Error Handling
//
// Non-2xx replies are returned as *APIError carrying the status code and the
// server's message. APIError unwraps to a sentinel, so callers can match
// with errors.Is: ErrUnauthorized, ErrNotFound, common.ErrDuplicateEmail.
// Transport failures are reported as ErrUnavailable.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation and timeouts.
package client
