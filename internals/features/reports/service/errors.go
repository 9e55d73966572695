// file: internals/features/reports/service/errors.go
package service

import "errors"

// Pipeline error taxonomy. Every failure in the export pipeline is
// terminal for the request and wraps exactly one of these sentinels, so
// the controller can map kinds to HTTP statuses with errors.Is. The
// pipeline is read-only and idempotent end to end; callers may safely
// retry the whole request, nothing is retried internally.
var (
	ErrInvalidScope    = errors.New("invalid report scope")
	ErrTeacherNotFound = errors.New("teacher not found")
	ErrDataSource      = errors.New("data source error")
	ErrRender          = errors.New("render error")
	ErrRenderTimeout   = errors.New("render timeout")
	ErrPackaging       = errors.New("packaging error")
)
