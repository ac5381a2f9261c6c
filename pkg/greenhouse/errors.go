// Package greenhouse implements the monitoring core: range evaluation of
// environmental readings, the issue lifecycle, notification dispatch and
// the dashboard projection. Callers (HTTP layer, CLI bootstrap) talk to it
// through the service interfaces on Core.
package greenhouse

import "errors"

// Sentinel errors returned by the core. Handlers translate these into
// HTTP statuses; everything else is treated as a storage failure.
var (
	ErrNotFound           = errors.New("not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
