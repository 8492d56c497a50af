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

// Package legacy bridges the presence markers of monolithic legacy accounts
// into the collaborator interface the registry resolves existence against.
// The contents of legacy records remain opaque; only their presence matters.
package legacy

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"

	"github.com/optakt/account-registry/models/registry"
)

// Store reads legacy account presence markers from the registry database.
type Store struct {
	db  *badger.DB
	lib registry.ReadLibrary
}

// FromIndex creates a legacy account store reading presence markers from the
// given database through the given storage library.
func FromIndex(db *badger.DB, lib registry.ReadLibrary) *Store {

	s := Store{
		db:  db,
		lib: lib,
	}

	return &s
}

// ExistsLegacy returns true if a legacy account marker is present for the
// given address.
func (s *Store) ExistsLegacy(address registry.Address) (bool, error) {

	var present bool
	err := s.db.View(s.lib.CheckLegacyMarker(address, &present))
	if err != nil {
		return false, fmt.Errorf("could not check legacy marker (address: %s): %w", address, err)
	}

	return present, nil
}
