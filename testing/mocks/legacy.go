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
	"testing"

	"github.com/optakt/account-registry/models/registry"
)

type Legacy struct {
	ExistsLegacyFunc func(address registry.Address) (bool, error)
}

func BaselineLegacy(t *testing.T) *Legacy {
	t.Helper()

	l := Legacy{
		ExistsLegacyFunc: func(registry.Address) (bool, error) { return false, nil },
	}

	return &l
}

func (l *Legacy) ExistsLegacy(address registry.Address) (bool, error) {
	return l.ExistsLegacyFunc(address)
}
