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
	"github.com/optakt/account-registry/models/registry"
)

// Signer is an identity token proving control of an address for the current
// call chain. Its fields are unexported, so it can only be minted by the
// registry itself; it is never persisted.
type Signer struct {
	address registry.Address
}

// Address returns the address the signer is scoped to.
func (s Signer) Address() registry.Address {
	return s.address
}

// TransferCapability grants its holder the right to reassign ownership of
// one object-backed account. It is issued once, at account creation, to the
// caller already holding the account's signer.
type TransferCapability struct {
	address registry.Address
}

// Address returns the address the capability is scoped to.
func (c TransferCapability) Address() registry.Address {
	return c.address
}

// ExtendCapability grants its holder the right to derive fresh signers for
// one object-backed account.
type ExtendCapability struct {
	address registry.Address
}

// Address returns the address the capability is scoped to.
func (c ExtendCapability) Address() registry.Address {
	return c.address
}

// linearTransfer is a one-shot token obtained by exchanging a transfer
// capability. It binds an ownership reassignment to one specific new owner
// and is consumed when applied.
type linearTransfer struct {
	address registry.Address
	owner   registry.Address
	used    bool
}
