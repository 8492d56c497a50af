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

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/account-registry/codec/zbor"
	"github.com/optakt/account-registry/models/registry"
	"github.com/optakt/account-registry/service/storage"
	"github.com/optakt/account-registry/testing/helpers"
	"github.com/optakt/account-registry/testing/mocks"
)

func TestSaveAndRetrieve_Account(t *testing.T) {
	db := helpers.OnDiskDB(t)
	defer db.Close()

	lib := storage.New(zbor.NewCodec())

	address := mocks.GenericAddress(0)
	account := registry.AccountRecord{
		SequenceNumber: mocks.GenericSequence,
		Authenticator:  registry.NativeAuthenticator(mocks.GenericKey),
	}

	t.Run("save account", func(t *testing.T) {
		err := db.Update(lib.SaveAccount(address, &account))
		assert.NoError(t, err)
	})

	t.Run("retrieve account", func(t *testing.T) {
		var got registry.AccountRecord
		err := db.View(lib.RetrieveAccount(address, &got))

		assert.NoError(t, err)
		assert.Equal(t, account, got)
	})

	t.Run("check account presence", func(t *testing.T) {
		var present bool
		err := db.View(lib.CheckAccount(address, &present))

		assert.NoError(t, err)
		assert.True(t, present)
	})

	t.Run("check missing account", func(t *testing.T) {
		var present bool
		err := db.View(lib.CheckAccount(mocks.GenericAddress(1), &present))

		assert.NoError(t, err)
		assert.False(t, present)
	})
}

func TestSaveAndRetrieve_ObjectAccount(t *testing.T) {
	db := helpers.InMemoryDB(t)
	defer db.Close()

	lib := storage.New(zbor.NewCodec())

	address := mocks.GenericAddress(0)
	account := registry.AccountRecord{
		SequenceNumber:   mocks.GenericSequence,
		TransferRetained: true,
		ExtendRetained:   true,
	}

	t.Run("save object account", func(t *testing.T) {
		err := db.Update(lib.SaveObjectAccount(address, &account))
		assert.NoError(t, err)
	})

	t.Run("retrieve object account", func(t *testing.T) {
		var got registry.AccountRecord
		err := db.View(lib.RetrieveObjectAccount(address, &got))

		assert.NoError(t, err)
		assert.Equal(t, account, got)
	})

	t.Run("lite and object records do not alias", func(t *testing.T) {
		var present bool
		err := db.View(lib.CheckAccount(address, &present))

		assert.NoError(t, err)
		assert.False(t, present)
	})
}

func TestSaveAndRetrieve_Object(t *testing.T) {
	db := helpers.InMemoryDB(t)
	defer db.Close()

	lib := storage.New(zbor.NewCodec())

	address := mocks.GenericAddress(0)
	object := registry.ObjectCore{Owner: mocks.GenericAddress(1)}

	t.Run("save object", func(t *testing.T) {
		err := db.Update(lib.SaveObject(address, &object))
		assert.NoError(t, err)
	})

	t.Run("retrieve object", func(t *testing.T) {
		var got registry.ObjectCore
		err := db.View(lib.RetrieveObject(address, &got))

		assert.NoError(t, err)
		assert.Equal(t, object, got)
	})

	t.Run("check object presence", func(t *testing.T) {
		var present bool
		err := db.View(lib.CheckObject(address, &present))

		assert.NoError(t, err)
		assert.True(t, present)
	})
}

func TestSaveAndCheck_LegacyMarker(t *testing.T) {
	db := helpers.InMemoryDB(t)
	defer db.Close()

	lib := storage.New(zbor.NewCodec())

	address := mocks.GenericAddress(0)

	var present bool
	err := db.View(lib.CheckLegacyMarker(address, &present))
	require.NoError(t, err)
	assert.False(t, present)

	err = db.Update(lib.SaveLegacyMarker(address))
	require.NoError(t, err)

	err = db.View(lib.CheckLegacyMarker(address, &present))
	require.NoError(t, err)
	assert.True(t, present)
}

func TestModuleIndex(t *testing.T) {
	db := helpers.InMemoryDB(t)
	defer db.Close()

	lib := storage.New(zbor.NewCodec())

	first := mocks.GenericAddress(0)
	second := mocks.GenericAddress(1)

	t.Run("index accounts for module", func(t *testing.T) {
		err := db.Update(lib.IndexAccountForModule(mocks.GenericModule, first))
		require.NoError(t, err)

		err = db.Update(lib.IndexAccountForModule(mocks.GenericModule, second))
		require.NoError(t, err)
	})

	t.Run("lookup finds all indexed accounts", func(t *testing.T) {
		var addresses []registry.Address
		err := db.View(lib.LookupAccountsForModule(mocks.GenericModule, &addresses))

		require.NoError(t, err)
		assert.ElementsMatch(t, []registry.Address{first, second}, addresses)
	})

	t.Run("lookup ignores other modules", func(t *testing.T) {
		var addresses []registry.Address
		err := db.View(lib.LookupAccountsForModule("0x1::other_auth", &addresses))

		require.NoError(t, err)
		assert.Empty(t, addresses)
	})

	t.Run("unindex removes one account", func(t *testing.T) {
		err := db.Update(lib.UnindexAccountForModule(mocks.GenericModule, first))
		require.NoError(t, err)

		var addresses []registry.Address
		err = db.View(lib.LookupAccountsForModule(mocks.GenericModule, &addresses))

		require.NoError(t, err)
		assert.Equal(t, []registry.Address{second}, addresses)
	})
}
