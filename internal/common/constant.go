// Package common contains shared constants and the error taxonomy used across
// folio components.
package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the token inside the Authorization header.
const BearerPrefix = "Bearer "

// EnvProduction disables stack traces in error responses.
const EnvProduction = "production"
