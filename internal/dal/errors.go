package dal

import "errors"

// ErrNotFound reports an operation that targeted an id not present in the
// current collection. Update propagates it loudly; Delete converts the
// same condition into a soft boolean false.
var ErrNotFound = errors.New("record not found")

// ErrInvalidStatus reports an appointment status outside the closed
// scheduled/completed/cancelled set. No other value is ever persisted.
var ErrInvalidStatus = errors.New("invalid appointment status")
