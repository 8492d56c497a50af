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

func TestRegistry_TransferOwnership(t *testing.T) {
	db := helpers.InMemoryDB(t)
	defer db.Close()

	reg, _ := baselineRegistry(t, db)

	address := mocks.GenericAddress(0)
	newOwner := mocks.GenericAddress(1)

	signer, _, _, err := reg.CreateObjectAccount(address)
	require.NoError(t, err)

	t.Run("nominal case", func(t *testing.T) {
		err := reg.TransferOwnership(signer, newOwner)
		require.NoError(t, err)

		owner, err := reg.Owner(address)
		require.NoError(t, err)
		assert.Equal(t, newOwner, owner)
	})

	t.Run("transfer to current owner is a no-op", func(t *testing.T) {
		err := reg.TransferOwnership(signer, newOwner)
		require.NoError(t, err)

		owner, err := reg.Owner(address)
		require.NoError(t, err)
		assert.Equal(t, newOwner, owner)
	})

	t.Run("reclaim restores self-ownership", func(t *testing.T) {
		err := reg.ReclaimSelfOwnership(signer)
		require.NoError(t, err)

		owner, err := reg.Owner(address)
		require.NoError(t, err)
		assert.Equal(t, address, owner)
	})

	t.Run("fails without an object account", func(t *testing.T) {
		lite := mocks.GenericAddress(2)

		liteSigner, err := reg.CreateAccount(lite)
		require.NoError(t, err)

		err = reg.TransferOwnership(liteSigner, newOwner)
		assert.ErrorIs(t, err, registry.ErrNotFound)
	})
}

func TestRegistry_SignerFromOwner(t *testing.T) {
	db := helpers.InMemoryDB(t)
	defer db.Close()

	reg, _ := baselineRegistry(t, db)

	source := mocks.GenericAddress(0)
	stranger := mocks.GenericAddress(1)

	sourceSigner, err := reg.CreateAccount(source)
	require.NoError(t, err)

	strangerSigner, err := reg.CreateAccount(stranger)
	require.NoError(t, err)

	target, err := reg.CreateResourceAccount(sourceSigner, []byte(`owned resource`))
	require.NoError(t, err)

	t.Run("owner derives a signer for the owned account", func(t *testing.T) {
		derived, err := reg.SignerFromOwner(sourceSigner, target.Address())
		require.NoError(t, err)
		assert.Equal(t, target.Address(), derived.Address())

		// The derived signer carries full account authority.
		err = reg.IncrementSequence(derived.Address())
		require.NoError(t, err)
	})

	t.Run("fails for a signer that is not the owner", func(t *testing.T) {
		_, err := reg.SignerFromOwner(strangerSigner, target.Address())
		assert.ErrorIs(t, err, registry.ErrPermissionDenied)
	})

	t.Run("fails without an object at the target", func(t *testing.T) {
		_, err := reg.SignerFromOwner(sourceSigner, stranger)
		assert.ErrorIs(t, err, registry.ErrNotFound)
	})

	t.Run("follows ownership transfers", func(t *testing.T) {
		err := reg.TransferOwnership(target, stranger)
		require.NoError(t, err)

		_, err = reg.SignerFromOwner(sourceSigner, target.Address())
		assert.ErrorIs(t, err, registry.ErrPermissionDenied)

		derived, err := reg.SignerFromOwner(strangerSigner, target.Address())
		require.NoError(t, err)
		assert.Equal(t, target.Address(), derived.Address())
	})
}
