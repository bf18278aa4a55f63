// Package api defines the request and response messages of the lifecubes
// RPC services. Messages travel as JSON with snake_case field names; dates
// are ISO 8601 strings (YYYY-MM-DD) and timestamps are Unix seconds.
package api
