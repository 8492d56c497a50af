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
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// AddressLength is the length of a canonical account address in bytes.
const AddressLength = 32

// Address is the sole identifier for an account in the registry. Its
// canonical byte encoding doubles as the implicit native authentication key
// for accounts that never had an explicit authenticator installed.
type Address [AddressLength]byte

// ZeroAddress is the all-zero address, which is always reserved.
var ZeroAddress = Address{}

// HexToAddress converts a hex string into an address. Inputs shorter than
// the canonical length are left-padded with zero bytes, so that short forms
// such as "0x1" resolve to the corresponding reserved address.
func HexToAddress(input string) (Address, error) {
	var address Address

	input = strings.TrimPrefix(input, "0x")
	if len(input)%2 != 0 {
		input = "0" + input
	}
	data, err := hex.DecodeString(input)
	if err != nil {
		return Address{}, fmt.Errorf("could not decode address hex: %w", err)
	}
	if len(data) > AddressLength {
		return Address{}, fmt.Errorf("invalid address length (have: %d, want at most: %d)", len(data), AddressLength)
	}

	copy(address[AddressLength-len(data):], data)

	return address, nil
}

// Bytes returns the canonical byte encoding of the address.
func (a Address) Bytes() []byte {
	return a[:]
}

// Hex returns the lowercase hex encoding of the address without prefix.
func (a Address) Hex() string {
	return hex.EncodeToString(a[:])
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return "0x" + a.Hex()
}

// DeriveResourceAddress deterministically derives the address of a resource
// account from its source address and a seed. The derivation is a pure
// function, so a module that always supplies the same seed can reconstruct
// the derived address without persisting anything.
func DeriveResourceAddress(source Address, seed []byte) Address {
	return deriveAddress(source, seed, SchemeDeriveResource)
}

// DeriveObjectAddress deterministically derives the address of a child
// object from its parent address and a seed.
func DeriveObjectAddress(parent Address, seed []byte) Address {
	return deriveAddress(parent, seed, SchemeDeriveObject)
}

func deriveAddress(parent Address, seed []byte, scheme byte) Address {
	input := make([]byte, 0, AddressLength+len(seed)+1)
	input = append(input, parent[:]...)
	input = append(input, seed...)
	input = append(input, scheme)

	return Address(sha3.Sum256(input))
}
