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

package account_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/account-registry/models/registry"
	"github.com/optakt/account-registry/testing/helpers"
	"github.com/optakt/account-registry/testing/mocks"
)

func TestRegistry_NativeAuthKey(t *testing.T) {
	db := helpers.InMemoryDB(t)
	defer db.Close()

	reg, _ := baselineRegistry(t, db)

	t.Run("defaults to the address bytes after creation", func(t *testing.T) {
		address := mocks.GenericAddress(0)

		_, err := reg.CreateAccount(address)
		require.NoError(t, err)

		key, err := reg.NativeAuthKey(address)
		require.NoError(t, err)
		assert.Equal(t, address.Bytes(), key)
	})

	t.Run("defaults to the address bytes for implicit accounts", func(t *testing.T) {
		address := mocks.GenericAddress(1)

		key, err := reg.NativeAuthKey(address)
		require.NoError(t, err)
		assert.Equal(t, address.Bytes(), key)
	})

	t.Run("returns the installed key material", func(t *testing.T) {
		address := mocks.GenericAddress(2)

		err := reg.InstallNativeAuthenticator(address, mocks.GenericKey)
		require.NoError(t, err)

		key, err := reg.NativeAuthKey(address)
		require.NoError(t, err)
		assert.Equal(t, mocks.GenericKey, key)
	})

	t.Run("fails on reserved address", func(t *testing.T) {
		address := reservedAddress(t)

		_, err := reg.NativeAuthKey(address)
		assert.ErrorIs(t, err, registry.ErrNotFound)
	})
}

func TestRegistry_InstallAuthenticator(t *testing.T) {
	db := helpers.InMemoryDB(t)
	defer db.Close()

	reg, _ := baselineRegistry(t, db)

	address := mocks.GenericAddress(0)
	module := mocks.GenericModule
	verifier := mocks.GenericAddress(3)

	_, err := reg.CreateAccount(address)
	require.NoError(t, err)

	t.Run("starts out native", func(t *testing.T) {
		native, err := reg.IsUsingNativeAuthenticator(address)
		require.NoError(t, err)
		assert.True(t, native)

		customized, err := reg.IsUsingCustomizedAuthenticator(address)
		require.NoError(t, err)
		assert.False(t, customized)
	})

	t.Run("customized install displaces native authentication", func(t *testing.T) {
		err := reg.InstallCustomizedAuthenticator(address, module, verifier)
		require.NoError(t, err)

		customized, err := reg.IsUsingCustomizedAuthenticator(address)
		require.NoError(t, err)
		assert.True(t, customized)

		native, err := reg.IsUsingNativeAuthenticator(address)
		require.NoError(t, err)
		assert.False(t, native)

		// No native key is available while the customized authenticator is
		// installed.
		_, err = reg.NativeAuthKey(address)
		assert.ErrorIs(t, err, registry.ErrNotFound)

		accounts, err := reg.AccountsForModule(module)
		require.NoError(t, err)
		assert.Equal(t, []registry.Address{address}, accounts)
	})

	t.Run("native install displaces customized authentication", func(t *testing.T) {
		err := reg.InstallNativeAuthenticator(address, mocks.GenericKey)
		require.NoError(t, err)

		customized, err := reg.IsUsingCustomizedAuthenticator(address)
		require.NoError(t, err)
		assert.False(t, customized)

		key, err := reg.NativeAuthKey(address)
		require.NoError(t, err)
		assert.Equal(t, mocks.GenericKey, key)

		// The displaced module index entry is gone as well.
		accounts, err := reg.AccountsForModule(module)
		require.NoError(t, err)
		assert.Empty(t, accounts)
	})

	t.Run("reinstalling the same key is a no-op", func(t *testing.T) {
		err := reg.InstallNativeAuthenticator(address, mocks.GenericKey)
		require.NoError(t, err)

		key, err := reg.NativeAuthKey(address)
		require.NoError(t, err)
		assert.Equal(t, mocks.GenericKey, key)
	})

	t.Run("install materializes implicit lite account", func(t *testing.T) {
		implicit := mocks.GenericAddress(1)

		err := reg.InstallCustomizedAuthenticator(implicit, module, verifier)
		require.NoError(t, err)

		customized, err := reg.IsUsingCustomizedAuthenticator(implicit)
		require.NoError(t, err)
		assert.True(t, customized)
	})

	t.Run("install fails on nonexistent address", func(t *testing.T) {
		err := reg.InstallNativeAuthenticator(reservedAddress(t), mocks.GenericKey)
		assert.ErrorIs(t, err, registry.ErrNotFound)

		err = reg.InstallCustomizedAuthenticator(reservedAddress(t), module, verifier)
		assert.ErrorIs(t, err, registry.ErrNotFound)
	})
}

func TestRegistry_IsUsingNativeAuthenticator(t *testing.T) {
	db := helpers.InMemoryDB(t)
	defer db.Close()

	reg, _ := baselineRegistry(t, db)

	t.Run("implicit account uses native authentication", func(t *testing.T) {
		native, err := reg.IsUsingNativeAuthenticator(mocks.GenericAddress(0))
		require.NoError(t, err)
		assert.True(t, native)
	})

	t.Run("nonexistent address uses no authentication", func(t *testing.T) {
		native, err := reg.IsUsingNativeAuthenticator(reservedAddress(t))
		require.NoError(t, err)
		assert.False(t, native)
	})
}
