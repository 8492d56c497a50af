// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package storage

import (
	"fmt"

	"github.com/OneOfOne/xxhash"
	"github.com/dgraph-io/badger/v2"

	"github.com/optakt/account-registry/models/registry"
)

// SaveAccount is an operation that writes the account record of an address
// under the lite representation.
func (l *Library) SaveAccount(address registry.Address, account *registry.AccountRecord) func(*badger.Txn) error {
	return l.save(EncodeKey(PrefixAccount, address), account)
}

// SaveObjectAccount is an operation that writes the account record carried
// by the object at the given address.
func (l *Library) SaveObjectAccount(address registry.Address, account *registry.AccountRecord) func(*badger.Txn) error {
	return l.save(EncodeKey(PrefixObjectAccount, address), account)
}

// SaveObject is an operation that writes the core record of the object at
// the given address.
func (l *Library) SaveObject(address registry.Address, object *registry.ObjectCore) func(*badger.Txn) error {
	return l.save(EncodeKey(PrefixObject, address), object)
}

// SaveLegacyMarker is an operation that writes the presence marker of a
// legacy account. It exists to bridge legacy state into the registry
// database; the legacy record contents remain opaque to this library.
func (l *Library) SaveLegacyMarker(address registry.Address) func(*badger.Txn) error {
	return l.save(EncodeKey(PrefixLegacyAccount, address), true)
}

// IndexAccountForModule is an operation that indexes the given address under
// the hash of the verification module its customized authenticator points to.
func (l *Library) IndexAccountForModule(module string, address registry.Address) func(*badger.Txn) error {
	hash := xxhash.ChecksumString64(module)
	return func(tx *badger.Txn) error {
		key := EncodeKey(PrefixAccountsForModule, hash, address)
		err := tx.Set(key, nil)
		if err != nil {
			return fmt.Errorf("could not set value (key: %x): %w", key, err)
		}

		return nil
	}
}

// UnindexAccountForModule is an operation that removes the module index
// entry of the given address.
func (l *Library) UnindexAccountForModule(module string, address registry.Address) func(*badger.Txn) error {
	hash := xxhash.ChecksumString64(module)
	return func(tx *badger.Txn) error {
		key := EncodeKey(PrefixAccountsForModule, hash, address)
		err := tx.Delete(key)
		if err != nil {
			return fmt.Errorf("could not delete value (key: %x): %w", key, err)
		}

		return nil
	}
}

// RetrieveAccount retrieves the account record of the given address under
// the lite representation.
func (l *Library) RetrieveAccount(address registry.Address, account *registry.AccountRecord) func(*badger.Txn) error {
	return l.retrieve(EncodeKey(PrefixAccount, address), account)
}

// RetrieveObjectAccount retrieves the account record carried by the object
// at the given address.
func (l *Library) RetrieveObjectAccount(address registry.Address, account *registry.AccountRecord) func(*badger.Txn) error {
	return l.retrieve(EncodeKey(PrefixObjectAccount, address), account)
}

// RetrieveObject retrieves the core record of the object at the given
// address.
func (l *Library) RetrieveObject(address registry.Address, object *registry.ObjectCore) func(*badger.Txn) error {
	return l.retrieve(EncodeKey(PrefixObject, address), object)
}

// CheckAccount checks whether an account record is present for the given
// address under the lite representation.
func (l *Library) CheckAccount(address registry.Address, present *bool) func(*badger.Txn) error {
	return l.check(EncodeKey(PrefixAccount, address), present)
}

// CheckObjectAccount checks whether the object at the given address carries
// an account record.
func (l *Library) CheckObjectAccount(address registry.Address, present *bool) func(*badger.Txn) error {
	return l.check(EncodeKey(PrefixObjectAccount, address), present)
}

// CheckObject checks whether the given address is a generic object.
func (l *Library) CheckObject(address registry.Address, present *bool) func(*badger.Txn) error {
	return l.check(EncodeKey(PrefixObject, address), present)
}

// CheckLegacyMarker checks whether a legacy presence marker exists for the
// given address.
func (l *Library) CheckLegacyMarker(address registry.Address, present *bool) func(*badger.Txn) error {
	return l.check(EncodeKey(PrefixLegacyAccount, address), present)
}

// LookupAccountsForModule retrieves the addresses of all accounts whose
// customized authenticator points to the given verification module. The
// address is part of the index key, so no values need to be decoded.
func (l *Library) LookupAccountsForModule(module string, addresses *[]registry.Address) func(*badger.Txn) error {
	hash := xxhash.ChecksumString64(module)
	return func(tx *badger.Txn) error {
		prefix := EncodeKey(PrefixAccountsForModule, hash)
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix

		it := tx.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().Key()
			if len(key) != len(prefix)+registry.AddressLength {
				return fmt.Errorf("invalid index key length (key: %x)", key)
			}

			var address registry.Address
			copy(address[:], key[len(prefix):])
			*addresses = append(*addresses, address)
		}

		return nil
	}
}
