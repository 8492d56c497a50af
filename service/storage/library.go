package storage

import (
	"github.com/optakt/account-registry/models/registry"
)

// Library is the storage library.
type Library struct {
	codec registry.Codec
}

// New returns a new storage library using the given codec.
func New(codec registry.Codec) *Library {
	lib := Library{
		codec: codec,
	}

	return &lib
}
