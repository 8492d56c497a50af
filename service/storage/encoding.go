package storage

import (
	"encoding/binary"
	"fmt"

	"github.com/optakt/account-registry/models/registry"
)

func EncodeKey(prefix uint8, segments ...interface{}) []byte {
	key := []byte{prefix}
	var val []byte
	for _, segment := range segments {
		switch s := segment.(type) {
		case uint64:
			val = make([]byte, 8)
			binary.BigEndian.PutUint64(val, s)
		case registry.Address:
			val = make([]byte, registry.AddressLength)
			copy(val, s[:])
		default:
			panic(fmt.Sprintf("unknown type (%T)", segment))
		}
		key = append(key, val...)
	}

	return key
}
