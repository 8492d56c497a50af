package helpers

import (
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/require"

	"github.com/optakt/account-registry/models/registry"
)

// InMemoryDB returns an ephemeral Badger database for registry tests.
func InMemoryDB(t *testing.T) *badger.DB {
	t.Helper()

	opts := badger.DefaultOptions("")
	opts.InMemory = true
	opts.Logger = nil

	db, err := badger.Open(opts)
	require.NoError(t, err)

	return db
}

// OnDiskDB returns a Badger database in a temporary directory, opened the
// way a host process should open the registry database.
func OnDiskDB(t *testing.T) *badger.DB {
	t.Helper()

	db, err := badger.Open(registry.DefaultOptions(t.TempDir()))
	require.NoError(t, err)

	return db
}
