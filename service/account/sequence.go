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
	"errors"
	"fmt"
	"math"

	"github.com/dgraph-io/badger/v2"

	"github.com/optakt/account-registry/models/registry"
)

// IncrementSequence increments the sequence counter of the account at the
// given address, lazily materializing the account record if none exists yet.
// This is the path taken once per accepted transaction. It fails with
// ErrReservedAddress when materialization targets a reserved address and
// with ErrOutOfRange when the counter has reached its maximum value, leaving
// the counter unchanged.
func (r *Registry) IncrementSequence(address registry.Address) error {

	err := r.db.Update(func(tx *badger.Txn) error {
		account, objectBacked, err := r.loadAccount(tx, address)
		if errors.Is(err, registry.ErrNotFound) {
			if r.params.IsReserved(address) {
				return fmt.Errorf("could not materialize account (address: %s): %w", address, registry.ErrReservedAddress)
			}
			account = &registry.AccountRecord{}
			objectBacked = false
			err = nil
		}
		if err != nil {
			return err
		}

		if account.SequenceNumber == math.MaxUint64 {
			return fmt.Errorf("sequence number at maximum (address: %s): %w", address, registry.ErrOutOfRange)
		}

		account.SequenceNumber++

		return r.storeAccount(tx, address, account, objectBacked)
	})
	if err != nil {
		return fmt.Errorf("could not increment sequence number: %w", err)
	}

	r.invalidate(address)

	return nil
}

// SequenceNumber returns the sequence counter of the account at the given
// address. It fails with ErrNotFound if no account record exists.
func (r *Registry) SequenceNumber(address registry.Address) (uint64, error) {

	account, found, err := r.account(address)
	if err != nil {
		return 0, fmt.Errorf("could not look up account (address: %s): %w", address, err)
	}
	if !found {
		return 0, fmt.Errorf("no account record (address: %s): %w", address, registry.ErrNotFound)
	}

	return account.SequenceNumber, nil
}

// SequenceNumberOrZero returns the sequence counter of the account at the
// given address, defaulting to zero for addresses that exist only implicitly
// under the lite representation, without a materialized counter record.
func (r *Registry) SequenceNumberOrZero(address registry.Address) (uint64, error) {

	seq, err := r.SequenceNumber(address)
	if err == nil {
		return seq, nil
	}
	if !errors.Is(err, registry.ErrNotFound) {
		return 0, err
	}

	var lite bool
	verr := r.db.View(func(tx *badger.Txn) error {
		claimed, err := r.checkLite(tx, address)
		if err != nil {
			return err
		}
		lite = claimed
		return nil
	})
	if verr != nil {
		return 0, fmt.Errorf("could not resolve existence (address: %s): %w", address, verr)
	}
	if !lite {
		return 0, err
	}

	return 0, nil
}
