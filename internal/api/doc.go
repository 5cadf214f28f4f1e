// Package api implements the HTTP client for the wishlist service.
//
// The client is the application's sole network-facing collaborator. It
// attaches the per-session credential to every request, decodes JSON
// payloads into typed structs, and normalizes every failure (HTTP or
// transport) into *Error so callers surface one message per failed
// action. There are no retries: a failed call returns immediately.
package api
