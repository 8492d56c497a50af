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
)

// representation is one storage scheme that can claim an address. The
// resolver evaluates representations in order and short-circuits on the
// first one that claims the address, which keeps each compatibility bridge
// rule centralized and testable on its own.
type representation struct {
	name  string
	check func(*badger.Txn, registry.Address) (bool, error)
}

func (r *Registry) representations() []representation {
	return []representation{
		{name: "object", check: r.checkObject},
		{name: "legacy", check: r.checkLegacy},
		{name: "lite", check: r.checkLite},
	}
}

// Exists returns true if any of the three storage representations claims the
// given address. Callers that need an account at an address should create
// one exactly when this returns false.
func (r *Registry) Exists(address registry.Address) (bool, error) {

	var exists bool
	err := r.db.View(func(tx *badger.Txn) error {
		for _, rep := range r.representations() {
			claimed, err := rep.check(tx, address)
			if err != nil {
				return fmt.Errorf("could not check %s representation: %w", rep.name, err)
			}
			if claimed {
				exists = true
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("could not resolve existence (address: %s): %w", address, err)
	}

	return exists, nil
}

// ExistsLite returns true if the lite representation claims the given
// address.
func (r *Registry) ExistsLite(address registry.Address) (bool, error) {
	return r.existsIn(address, r.checkLite)
}

// ExistsObject returns true if the object-backed representation claims the
// given address.
func (r *Registry) ExistsObject(address registry.Address) (bool, error) {
	return r.existsIn(address, r.checkObject)
}

// ExistsLegacy returns true if the legacy collaborator claims the given
// address.
func (r *Registry) ExistsLegacy(address registry.Address) (bool, error) {
	return r.existsIn(address, r.checkLegacy)
}

func (r *Registry) existsIn(address registry.Address, check func(*badger.Txn, registry.Address) (bool, error)) (bool, error) {
	var exists bool
	err := r.db.View(func(tx *badger.Txn) error {
		claimed, err := check(tx, address)
		if err != nil {
			return err
		}
		exists = claimed
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("could not resolve existence (address: %s): %w", address, err)
	}

	return exists, nil
}

// checkLite implements the lite existence rule: an address is a lite account
// if it has a lite account record, or if no other representation has any
// footprint there. The second half is a deliberate compatibility default: a
// freshly unused address counts as an implicit, not-yet-materialized lite
// account. Reserved addresses are excluded from the implicit default, since
// no account can ever be created there.
func (r *Registry) checkLite(tx *badger.Txn, address registry.Address) (bool, error) {

	var present bool
	err := r.lib.CheckAccount(address, &present)(tx)
	if err != nil {
		return false, fmt.Errorf("could not check account record: %w", err)
	}
	if present {
		return true, nil
	}

	if r.params.IsReserved(address) {
		return false, nil
	}

	legacy, err := r.legacy.ExistsLegacy(address)
	if err != nil {
		return false, fmt.Errorf("could not check legacy account: %w", err)
	}
	if legacy {
		return false, nil
	}

	var object bool
	err = r.lib.CheckObject(address, &object)(tx)
	if err != nil {
		return false, fmt.Errorf("could not check object: %w", err)
	}

	return !object, nil
}

// checkObject implements the object-backed existence rule: the address must
// be a generic object and that object must carry an account record.
func (r *Registry) checkObject(tx *badger.Txn, address registry.Address) (bool, error) {

	var object bool
	err := r.lib.CheckObject(address, &object)(tx)
	if err != nil {
		return false, fmt.Errorf("could not check object: %w", err)
	}
	if !object {
		return false, nil
	}

	var present bool
	err = r.lib.CheckObjectAccount(address, &present)(tx)
	if err != nil {
		return false, fmt.Errorf("could not check object account record: %w", err)
	}

	return present, nil
}

// checkLegacy delegates entirely to the legacy account collaborator.
func (r *Registry) checkLegacy(_ *badger.Txn, address registry.Address) (bool, error) {
	return r.legacy.ExistsLegacy(address)
}

// claimed checks whether any representation has a materialized footprint at
// the given address. Unlike Exists, it does not count implicit lite
// accounts, as account creation would otherwise never be possible.
func (r *Registry) claimed(tx *badger.Txn, address registry.Address) (bool, error) {

	var present bool
	err := r.lib.CheckAccount(address, &present)(tx)
	if err != nil {
		return false, fmt.Errorf("could not check account record: %w", err)
	}
	if present {
		return true, nil
	}

	var object bool
	err = r.lib.CheckObject(address, &object)(tx)
	if err != nil {
		return false, fmt.Errorf("could not check object: %w", err)
	}
	if object {
		return true, nil
	}

	return r.legacy.ExistsLegacy(address)
}
