// Package apperrors defines the typed errors and process exit codes used
// across the polycalc application. Errors are plain structs implementing the
// error interface, so callers can inspect them with errors.Is and errors.As
// without depending on message text.
package apperrors
