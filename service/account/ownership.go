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

	"github.com/dgraph-io/badger/v2"

	"github.com/optakt/account-registry/models/registry"
)

// TransferOwnership reassigns ownership of the object-backed account at the
// signer's address to the new owner. Only the holder of a signer for the
// owned address itself may initiate the transfer; ownership of the backing
// object is tracked separately from that address. Transferring to the
// current owner is a valid no-op. It fails with ErrNotFound when no
// object-backed account exists at the signer's address.
func (r *Registry) TransferOwnership(current Signer, newOwner registry.Address) error {

	address := current.Address()
	err := r.db.Update(func(tx *badger.Txn) error {
		var present bool
		err := r.lib.CheckObjectAccount(address, &present)(tx)
		if err != nil {
			return fmt.Errorf("could not check object account record: %w", err)
		}
		if !present {
			return fmt.Errorf("no object account at address (address: %s): %w", address, registry.ErrNotFound)
		}

		var object registry.ObjectCore
		err = r.lib.RetrieveObject(address, &object)(tx)
		if err != nil {
			return fmt.Errorf("could not retrieve object: %w", err)
		}
		if object.Owner == newOwner {
			return nil
		}

		var account registry.AccountRecord
		err = r.lib.RetrieveObjectAccount(address, &account)(tx)
		if err != nil {
			return fmt.Errorf("could not retrieve object account record: %w", err)
		}
		if !account.TransferRetained {
			return fmt.Errorf("transfer capability not retained (address: %s): %w", address, registry.ErrPermissionDenied)
		}

		transfer := r.exchangeTransfer(TransferCapability{address: address}, newOwner)

		return r.applyTransfer(tx, transfer)
	})
	if err != nil {
		return fmt.Errorf("could not transfer ownership: %w", err)
	}

	r.log.Debug().
		Str("address", address.String()).
		Str("owner", newOwner.String()).
		Msg("ownership transferred")

	return nil
}

// ReclaimSelfOwnership transfers ownership of the object-backed account at
// the signer's address back to that same address, after temporary control
// was delegated elsewhere.
func (r *Registry) ReclaimSelfOwnership(current Signer) error {
	return r.TransferOwnership(current, current.Address())
}

// SignerFromOwner derives a fresh signer for the target account from its
// extend capability. It fails with ErrPermissionDenied unless the caller's
// signer matches the currently recorded owner of the target account. This is
// how an owner acts as an account it owns without holding that account's own
// credential.
func (r *Registry) SignerFromOwner(owner Signer, target registry.Address) (Signer, error) {

	var signer Signer
	err := r.db.View(func(tx *badger.Txn) error {
		var object registry.ObjectCore
		err := r.lib.RetrieveObject(target, &object)(tx)
		if isKeyNotFound(err) {
			return fmt.Errorf("no object at address (address: %s): %w", target, registry.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("could not retrieve object: %w", err)
		}
		if object.Owner != owner.Address() {
			return fmt.Errorf("signer is not the recorded owner (address: %s, owner: %s): %w", target, object.Owner, registry.ErrPermissionDenied)
		}

		var account registry.AccountRecord
		err = r.lib.RetrieveObjectAccount(target, &account)(tx)
		if isKeyNotFound(err) {
			return fmt.Errorf("no object account at address (address: %s): %w", target, registry.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("could not retrieve object account record: %w", err)
		}
		if !account.ExtendRetained {
			return fmt.Errorf("extend capability not retained (address: %s): %w", target, registry.ErrPermissionDenied)
		}

		signer = Signer{address: target}
		return nil
	})
	if err != nil {
		return Signer{}, fmt.Errorf("could not derive signer from owner: %w", err)
	}

	return signer, nil
}

// exchangeTransfer exchanges a transfer capability for a one-shot transfer
// token bound to the given new owner.
func (r *Registry) exchangeTransfer(capability TransferCapability, newOwner registry.Address) *linearTransfer {
	transfer := linearTransfer{
		address: capability.address,
		owner:   newOwner,
	}

	return &transfer
}

// applyTransfer consumes a one-shot transfer token, atomically flipping the
// recorded owner of the backing object.
func (r *Registry) applyTransfer(tx *badger.Txn, transfer *linearTransfer) error {

	if transfer.used {
		return fmt.Errorf("transfer token already consumed (address: %s): %w", transfer.address, registry.ErrPermissionDenied)
	}
	transfer.used = true

	object := registry.ObjectCore{Owner: transfer.owner}
	err := r.lib.SaveObject(transfer.address, &object)(tx)
	if err != nil {
		return fmt.Errorf("could not save object: %w", err)
	}

	return nil
}

// isKeyNotFound checks whether an error stems from a missing database key.
func isKeyNotFound(err error) bool {
	return errors.Is(err, badger.ErrKeyNotFound)
}
