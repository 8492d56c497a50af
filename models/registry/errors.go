package registry

import (
	"errors"
)

// Sentinel errors.
var (
	// ErrNotFound indicates that an address lacks the record required by the
	// operation.
	ErrNotFound = errors.New("account not found")
	// ErrAlreadyExists indicates that account creation collides with an
	// existing representation of the address.
	ErrAlreadyExists = errors.New("account already exists")
	// ErrReservedAddress indicates that account creation targets one of the
	// reserved addresses.
	ErrReservedAddress = errors.New("address is reserved")
	// ErrOutOfRange indicates that the sequence counter would overflow.
	ErrOutOfRange = errors.New("sequence number out of range")
	// ErrPermissionDenied indicates that the caller is not the recorded
	// owner of the targeted account.
	ErrPermissionDenied = errors.New("permission denied")
)
