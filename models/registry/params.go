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

// Derivation domain separators. Appending a distinct scheme byte to the
// hashed input keeps resource account addresses and child object addresses
// in disjoint namespaces.
const (
	SchemeDeriveObject   byte = 0xFE
	SchemeDeriveResource byte = 0xFF
)

// Params contains the chain-level parameters of a registry deployment. The
// reserved set is a configuration constant, not a business rule: creation at
// these addresses always fails, regardless of storage state.
type Params struct {
	ChainID  string
	Reserved []Address
}

// IsReserved returns true if the given address belongs to the reserved set.
func (p Params) IsReserved(address Address) bool {
	for _, reserved := range p.Reserved {
		if address == reserved {
			return true
		}
	}

	return false
}

// DefaultParams returns the default registry parameters, reserving the zero
// address and the system and framework addresses 0x1 through 0xa.
func DefaultParams() Params {
	reserved := []Address{ZeroAddress}
	for i := byte(1); i <= 10; i++ {
		var address Address
		address[AddressLength-1] = i
		reserved = append(reserved, address)
	}

	p := Params{
		ChainID:  "registry-main",
		Reserved: reserved,
	}

	return p
}
