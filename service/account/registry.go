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
	"github.com/dgraph-io/ristretto"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/optakt/account-registry/models/registry"
)

// Registry is the account identity and authentication registry. It maps each
// address to a replay-protection sequence counter and at most one active
// authentication mechanism, bridges the legacy, lite and object-backed
// storage representations, and manages ownership of object-backed accounts.
//
// Each public operation runs inside a single database transaction, so
// partial effects are never visible and every failure leaves the registry
// state untouched.
type Registry struct {
	log    zerolog.Logger
	db     *badger.DB
	lib    registry.Library
	legacy registry.Legacy
	params registry.Params
	cache  Cache
}

// New returns a new account registry on top of the given database, using the
// given storage library and legacy account collaborator.
func New(log zerolog.Logger, db *badger.DB, lib registry.Library, legacy registry.Legacy, options ...Option) (*Registry, error) {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	err := validator.New().Struct(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Ristretto recommends keeping ten times as many counters as items in
	// the cache when full. The cache size is expressed in account records.
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: int64(cfg.CacheSize) * 10,
		MaxCost:     int64(cfg.CacheSize),
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("could not initialize cache: %w", err)
	}

	r := Registry{
		log: log.With().
			Str("component", "account_registry").
			Str("chain", cfg.Params.ChainID).
			Logger(),
		db:     db,
		lib:    lib,
		legacy: legacy,
		params: cfg.Params,
		cache:  cache,
	}

	return &r, nil
}

// loadAccount returns the account record of the given address, preferring
// the object-backed representation over the lite one.
func (r *Registry) loadAccount(tx *badger.Txn, address registry.Address) (*registry.AccountRecord, bool, error) {

	var account registry.AccountRecord
	err := r.lib.RetrieveObjectAccount(address, &account)(tx)
	if err == nil {
		return &account, true, nil
	}
	if !errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, fmt.Errorf("could not retrieve object account: %w", err)
	}

	err = r.lib.RetrieveAccount(address, &account)(tx)
	if err == nil {
		return &account, false, nil
	}
	if !errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, fmt.Errorf("could not retrieve account: %w", err)
	}

	return nil, false, fmt.Errorf("no account record (address: %s): %w", address, registry.ErrNotFound)
}

// storeAccount persists the account record of the given address under the
// representation it was loaded from. Callers must invalidate the cache entry
// of the address once the transaction has committed.
func (r *Registry) storeAccount(tx *badger.Txn, address registry.Address, account *registry.AccountRecord, objectBacked bool) error {

	var err error
	if objectBacked {
		err = r.lib.SaveObjectAccount(address, account)(tx)
	} else {
		err = r.lib.SaveAccount(address, account)(tx)
	}
	if err != nil {
		return fmt.Errorf("could not save account record: %w", err)
	}

	return nil
}

// account returns the account record of the given address through the read
// cache, along with whether any record is present.
func (r *Registry) account(address registry.Address) (*registry.AccountRecord, bool, error) {

	cached, ok := r.cache.Get(string(address[:]))
	if ok {
		return cached.(*registry.AccountRecord), true, nil
	}

	var account *registry.AccountRecord
	err := r.db.View(func(tx *badger.Txn) error {
		loaded, _, err := r.loadAccount(tx, address)
		if err != nil {
			return err
		}
		account = loaded
		return nil
	})
	if errors.Is(err, registry.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	_ = r.cache.Set(string(address[:]), account, 1)

	return account, true, nil
}

// invalidate drops the cached account record of the given address. It must
// be called after every mutation of that address. Buffered cache writes are
// drained so that no stale record survives the invalidation.
func (r *Registry) invalidate(address registry.Address) {
	r.cache.Del(string(address[:]))
	r.cache.Wait()
}
