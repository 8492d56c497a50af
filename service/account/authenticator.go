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

// InstallNativeAuthenticator installs a native authenticator with the given
// key material on the account at the given address, displacing any
// customized authenticator. Installing a key identical to the stored one is
// a valid no-op. It fails with ErrNotFound if the address does not exist.
func (r *Registry) InstallNativeAuthenticator(address registry.Address, key []byte) error {

	err := r.db.Update(func(tx *badger.Txn) error {
		account, objectBacked, err := r.authAccount(tx, address)
		if err != nil {
			return err
		}

		auth := registry.NativeAuthenticator(key)
		if account.Authenticator.Equal(auth) {
			return nil
		}

		err = r.clearCustomized(tx, address, account)
		if err != nil {
			return err
		}

		account.Authenticator = auth

		return r.storeAccount(tx, address, account, objectBacked)
	})
	if err != nil {
		return fmt.Errorf("could not install native authenticator: %w", err)
	}

	r.invalidate(address)
	r.log.Debug().Str("address", address.String()).Msg("native authenticator installed")

	return nil
}

// InstallCustomizedAuthenticator installs a customized authenticator
// referencing the given verification module on the account at the given
// address, displacing any native authenticator. It fails with ErrNotFound if
// the address does not exist.
func (r *Registry) InstallCustomizedAuthenticator(address registry.Address, module string, account registry.Address) error {

	err := r.db.Update(func(tx *badger.Txn) error {
		record, objectBacked, err := r.authAccount(tx, address)
		if err != nil {
			return err
		}

		auth := registry.CustomizedAuthenticator(module, account)
		if record.Authenticator.Equal(auth) {
			return nil
		}

		err = r.clearCustomized(tx, address, record)
		if err != nil {
			return err
		}

		err = r.lib.IndexAccountForModule(module, address)(tx)
		if err != nil {
			return fmt.Errorf("could not index account for module: %w", err)
		}

		record.Authenticator = auth

		return r.storeAccount(tx, address, record, objectBacked)
	})
	if err != nil {
		return fmt.Errorf("could not install customized authenticator: %w", err)
	}

	r.invalidate(address)
	r.log.Debug().
		Str("address", address.String()).
		Str("module", module).
		Msg("customized authenticator installed")

	return nil
}

// IsUsingNativeAuthenticator returns true if the given address exists and
// uses native authentication, which is the default whenever no customized
// authenticator is installed.
func (r *Registry) IsUsingNativeAuthenticator(address registry.Address) (bool, error) {

	account, found, err := r.account(address)
	if err != nil {
		return false, fmt.Errorf("could not look up account (address: %s): %w", address, err)
	}
	if found {
		return !account.Authenticator.IsCustomized(), nil
	}

	return r.Exists(address)
}

// IsUsingCustomizedAuthenticator returns true if a customized authenticator
// is installed at the given address.
func (r *Registry) IsUsingCustomizedAuthenticator(address registry.Address) (bool, error) {

	account, found, err := r.account(address)
	if err != nil {
		return false, fmt.Errorf("could not look up account (address: %s): %w", address, err)
	}
	if !found {
		return false, nil
	}

	return account.Authenticator.IsCustomized(), nil
}

// NativeAuthKey returns the native authentication key of the account at the
// given address. For accounts without an explicit native authenticator, this
// is the canonical byte encoding of the address itself. It fails with
// ErrNotFound if the address does not exist or uses customized
// authentication.
func (r *Registry) NativeAuthKey(address registry.Address) ([]byte, error) {

	account, found, err := r.account(address)
	if err != nil {
		return nil, fmt.Errorf("could not look up account (address: %s): %w", address, err)
	}

	if found {
		switch {
		case account.Authenticator.IsCustomized():
			return nil, fmt.Errorf("no native authenticator (address: %s): %w", address, registry.ErrNotFound)
		case account.Authenticator.IsNative():
			return account.Authenticator.Key, nil
		default:
			return address.Bytes(), nil
		}
	}

	exists, err := r.Exists(address)
	if err != nil {
		return nil, fmt.Errorf("could not resolve existence (address: %s): %w", address, err)
	}
	if !exists {
		return nil, fmt.Errorf("no account at address (address: %s): %w", address, registry.ErrNotFound)
	}

	return address.Bytes(), nil
}

// AccountsForModule returns the addresses of all accounts whose customized
// authenticator points to the given verification module.
func (r *Registry) AccountsForModule(module string) ([]registry.Address, error) {

	var addresses []registry.Address
	err := r.db.View(r.lib.LookupAccountsForModule(module, &addresses))
	if err != nil {
		return nil, fmt.Errorf("could not look up accounts for module (module: %s): %w", module, err)
	}

	return addresses, nil
}

// authAccount loads the account record targeted by an authenticator
// operation, materializing the record of an implicitly existing lite
// account on its first rotation.
func (r *Registry) authAccount(tx *badger.Txn, address registry.Address) (*registry.AccountRecord, bool, error) {

	account, objectBacked, err := r.loadAccount(tx, address)
	if err == nil {
		return account, objectBacked, nil
	}
	if !errors.Is(err, registry.ErrNotFound) {
		return nil, false, err
	}

	lite, err := r.checkLite(tx, address)
	if err != nil {
		return nil, false, err
	}
	if !lite {
		return nil, false, fmt.Errorf("no account at address (address: %s): %w", address, registry.ErrNotFound)
	}

	return &registry.AccountRecord{}, false, nil
}

// clearCustomized removes the module index entry of the currently installed
// customized authenticator, if any.
func (r *Registry) clearCustomized(tx *badger.Txn, address registry.Address, account *registry.AccountRecord) error {

	if !account.Authenticator.IsCustomized() {
		return nil
	}

	err := r.lib.UnindexAccountForModule(account.Authenticator.Module, address)(tx)
	if err != nil {
		return fmt.Errorf("could not unindex account for module: %w", err)
	}

	return nil
}
