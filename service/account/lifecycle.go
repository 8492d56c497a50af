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

package account

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"

	"github.com/optakt/account-registry/models/registry"
	"github.com/optakt/account-registry/service/storage"
)

// CreateAccount creates a lite account at the given address, with a sequence
// number of zero and the implicit native authenticator derived from the
// address. It fails with ErrReservedAddress for reserved addresses and with
// ErrAlreadyExists when any representation already claims the address. On
// success, it returns a signer usable by the creator to act as the new
// account.
func (r *Registry) CreateAccount(address registry.Address) (Signer, error) {

	if r.params.IsReserved(address) {
		return Signer{}, fmt.Errorf("could not create account (address: %s): %w", address, registry.ErrReservedAddress)
	}

	err := r.db.Update(func(tx *badger.Txn) error {
		taken, err := r.claimed(tx, address)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("address already claimed (address: %s): %w", address, registry.ErrAlreadyExists)
		}

		account := registry.AccountRecord{SequenceNumber: 0}

		return r.lib.SaveAccount(address, &account)(tx)
	})
	if err != nil {
		return Signer{}, fmt.Errorf("could not create account: %w", err)
	}

	r.invalidate(address)
	r.log.Debug().Str("address", address.String()).Msg("account created")

	return Signer{address: address}, nil
}

// CreateObjectAccount creates an object-backed account at the given address.
// The backing object initially owns itself. On success, it returns a signer
// derived from the backing object, along with the transfer and extend
// capabilities scoped to the new account.
func (r *Registry) CreateObjectAccount(address registry.Address) (Signer, TransferCapability, ExtendCapability, error) {

	if r.params.IsReserved(address) {
		return Signer{}, TransferCapability{}, ExtendCapability{}, fmt.Errorf("could not create object account (address: %s): %w", address, registry.ErrReservedAddress)
	}

	err := r.db.Update(func(tx *badger.Txn) error {
		return r.createObjectAccount(tx, address)
	})
	if err != nil {
		return Signer{}, TransferCapability{}, ExtendCapability{}, fmt.Errorf("could not create object account: %w", err)
	}

	r.invalidate(address)
	r.log.Debug().Str("address", address.String()).Msg("object account created")

	signer := Signer{address: address}
	transfer := TransferCapability{address: address}
	extend := ExtendCapability{address: address}

	return signer, transfer, extend, nil
}

// CreateResourceAccount creates an object-backed account at the address
// deterministically derived from the source address and the given seed, and
// immediately reassigns its ownership to the source. Supplying the same seed
// again later allows the source to rederive the address without persisting
// any capability. It fails with ErrAlreadyExists when the derived address
// already resolves.
func (r *Registry) CreateResourceAccount(source Signer, seed []byte) (Signer, error) {

	derived := registry.DeriveResourceAddress(source.Address(), seed)
	if r.params.IsReserved(derived) {
		return Signer{}, fmt.Errorf("could not create resource account (address: %s): %w", derived, registry.ErrReservedAddress)
	}

	err := r.db.Update(func(tx *badger.Txn) error {
		err := r.createObjectAccount(tx, derived)
		if err != nil {
			return err
		}

		// Hand the fresh account over to the source by exchanging its
		// transfer capability right away.
		transfer := r.exchangeTransfer(TransferCapability{address: derived}, source.Address())

		return r.applyTransfer(tx, transfer)
	})
	if err != nil {
		return Signer{}, fmt.Errorf("could not create resource account: %w", err)
	}

	r.invalidate(derived)
	r.log.Debug().
		Str("source", source.Address().String()).
		Str("address", derived.String()).
		Msg("resource account created")

	return Signer{address: derived}, nil
}

// Owner returns the address currently recorded as the owner of the
// object-backed account at the given address.
func (r *Registry) Owner(address registry.Address) (registry.Address, error) {

	var object registry.ObjectCore
	err := r.db.View(r.lib.RetrieveObject(address, &object))
	if isKeyNotFound(err) {
		return registry.Address{}, fmt.Errorf("no object at address (address: %s): %w", address, registry.ErrNotFound)
	}
	if err != nil {
		return registry.Address{}, fmt.Errorf("could not retrieve object (address: %s): %w", address, err)
	}

	return object.Owner, nil
}

// createObjectAccount writes the backing object and the account record of a
// new object-backed account within the given transaction.
func (r *Registry) createObjectAccount(tx *badger.Txn, address registry.Address) error {

	taken, err := r.claimed(tx, address)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("address already claimed (address: %s): %w", address, registry.ErrAlreadyExists)
	}

	object := registry.ObjectCore{Owner: address}
	account := registry.AccountRecord{
		SequenceNumber:   0,
		TransferRetained: true,
		ExtendRetained:   true,
	}

	return storage.Combine(
		r.lib.SaveObject(address, &object),
		r.lib.SaveObjectAccount(address, &account),
	)(tx)
}
