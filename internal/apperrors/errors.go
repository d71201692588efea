package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrStore indicates that the record store rejected a request or the request failed in transit.
var ErrStore = errors.New("record store request failed")

// ErrPartialConsistency indicates that a balance update and its paired usage
// record were not persisted together. The ledger's balance and history are
// out of sync and the condition must not be reported as a clean failure.
var ErrPartialConsistency = errors.New("ledger balance and usage history out of sync")
