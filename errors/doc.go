// Package errors provides the structured error type shared by the request
// building layer. Every error raised before a request reaches the transport
// (bad arguments, unserializable bodies, vetoed requests, invalid settings)
// is an *AppError carrying a machine-readable code.
package errors
