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

package mocks

import (
	"encoding/binary"
	"errors"
	"io"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/optakt/account-registry/models/registry"
)

// Global variables that can be used for testing. They are non-nil valid
// values for the types commonly needed to test registry components.
var (
	NoopLogger = zerolog.New(io.Discard)

	GenericError = errors.New("dummy error")

	GenericSequence = uint64(42)

	GenericKey = []byte{0x1, 0x2, 0x3}

	GenericModule = "0x1::custom_auth"
)

func GenericAddresses(number int) []registry.Address {
	// Ensure consistent deterministic results.
	random := rand.New(rand.NewSource(5))

	var addresses []registry.Address
	for i := 0; i < number; i++ {
		var address registry.Address
		binary.BigEndian.PutUint64(address[0:], random.Uint64())
		binary.BigEndian.PutUint64(address[8:], random.Uint64())
		binary.BigEndian.PutUint64(address[16:], random.Uint64())
		binary.BigEndian.PutUint64(address[24:], random.Uint64())

		addresses = append(addresses, address)
	}

	return addresses
}

func GenericAddress(index int) registry.Address {
	return GenericAddresses(index + 1)[index]
}

func GenericAccount(index int) *registry.AccountRecord {
	account := registry.AccountRecord{
		SequenceNumber: GenericSequence + uint64(index),
	}

	return &account
}
