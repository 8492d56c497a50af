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

package registry

import (
	"bytes"
)

// AuthenticatorKind tags the active variant of an authenticator descriptor.
type AuthenticatorKind uint8

const (
	// KindNative denotes key material consumed by the external signature
	// verification collaborator.
	KindNative AuthenticatorKind = iota + 1
	// KindCustomized denotes a reference to externally defined verification
	// logic, identified by a module and an account address.
	KindCustomized
)

// Authenticator describes the single active authentication mechanism of an
// account. The kind tag makes the two variants mutually exclusive by
// construction; installing one variant always displaces the other.
type Authenticator struct {
	Kind    AuthenticatorKind `cbor:"1,keyasint"`
	Key     []byte            `cbor:"2,keyasint,omitempty"`
	Module  string            `cbor:"3,keyasint,omitempty"`
	Account Address           `cbor:"4,keyasint,omitempty"`
}

// NativeAuthenticator creates a native authenticator descriptor with the
// given key material.
func NativeAuthenticator(key []byte) *Authenticator {
	a := Authenticator{
		Kind: KindNative,
		Key:  key,
	}

	return &a
}

// CustomizedAuthenticator creates a customized authenticator descriptor
// referencing the given module and account.
func CustomizedAuthenticator(module string, account Address) *Authenticator {
	a := Authenticator{
		Kind:    KindCustomized,
		Module:  module,
		Account: account,
	}

	return &a
}

// IsNative returns true if the native variant is active.
func (a *Authenticator) IsNative() bool {
	return a != nil && a.Kind == KindNative
}

// IsCustomized returns true if the customized variant is active.
func (a *Authenticator) IsCustomized() bool {
	return a != nil && a.Kind == KindCustomized
}

// Equal returns true if both descriptors hold the same variant with the
// same contents.
func (a *Authenticator) Equal(other *Authenticator) bool {
	if a == nil || other == nil {
		return a == other
	}
	if a.Kind != other.Kind {
		return false
	}
	switch a.Kind {
	case KindNative:
		return bytes.Equal(a.Key, other.Key)
	case KindCustomized:
		return a.Module == other.Module && a.Account == other.Account
	}

	return false
}
