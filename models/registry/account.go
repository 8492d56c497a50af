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

// AccountRecord is the persisted state of one account, keyed by its address.
// The sequence number is monotonically non-decreasing and never wraps. A nil
// authenticator means the account falls back on the implicit native key
// derived from its own address.
type AccountRecord struct {
	SequenceNumber uint64         `cbor:"1,keyasint"`
	Authenticator  *Authenticator `cbor:"2,keyasint,omitempty"`

	// Capability retention flags, set only for object-backed accounts. The
	// capability values themselves are unforgeable runtime tokens and are
	// never persisted.
	TransferRetained bool `cbor:"3,keyasint,omitempty"`
	ExtendRetained   bool `cbor:"4,keyasint,omitempty"`
}

// ObjectCore is the persisted core record of a generic object. Its presence
// at an address is what makes that address an object; the owner may differ
// from the object's own address.
type ObjectCore struct {
	Owner Address `cbor:"1,keyasint"`
}
