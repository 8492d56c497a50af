package registry

import (
	"github.com/dgraph-io/badger/v2"
)

// Library represents something that produces operations to read and write
// the keyed records of the account registry.
type Library interface {
	ReadLibrary
	WriteLibrary
}

// ReadLibrary represents something that produces operations to read keyed
// registry records within a database transaction.
type ReadLibrary interface {
	RetrieveAccount(address Address, account *AccountRecord) func(*badger.Txn) error
	RetrieveObjectAccount(address Address, account *AccountRecord) func(*badger.Txn) error
	RetrieveObject(address Address, object *ObjectCore) func(*badger.Txn) error

	CheckAccount(address Address, present *bool) func(*badger.Txn) error
	CheckObjectAccount(address Address, present *bool) func(*badger.Txn) error
	CheckObject(address Address, present *bool) func(*badger.Txn) error
	CheckLegacyMarker(address Address, present *bool) func(*badger.Txn) error

	LookupAccountsForModule(module string, addresses *[]Address) func(*badger.Txn) error
}

// WriteLibrary represents something that produces operations to write keyed
// registry records within a database transaction.
type WriteLibrary interface {
	SaveAccount(address Address, account *AccountRecord) func(*badger.Txn) error
	SaveObjectAccount(address Address, account *AccountRecord) func(*badger.Txn) error
	SaveObject(address Address, object *ObjectCore) func(*badger.Txn) error
	SaveLegacyMarker(address Address) func(*badger.Txn) error

	IndexAccountForModule(module string, address Address) func(*badger.Txn) error
	UnindexAccountForModule(module string, address Address) func(*badger.Txn) error
}

// Legacy represents the external collaborator for the monolithic legacy
// account scheme. It exposes nothing but a presence check.
type Legacy interface {
	ExistsLegacy(address Address) (bool, error)
}
