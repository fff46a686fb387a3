package upsert

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"

	"github.com/spaolacci/murmur3"

	"github.com/meridiandb/meridian/pkg/types"
)

// HashPrimaryKey returns the bytes under which a primary key is stored in
// the key index, per the configured hash function. HashFunctionNone returns
// the key unchanged.
func HashPrimaryKey(key []byte, fn types.HashFunction) ([]byte, error) {
	switch fn {
	case types.HashFunctionNone:
		return key, nil
	case types.HashFunctionMD5:
		sum := md5.Sum(key)
		return sum[:], nil
	case types.HashFunctionMurmur3:
		h1, h2 := murmur3.Sum128(key)
		out := make([]byte, 16)
		binary.BigEndian.PutUint64(out[0:8], h1)
		binary.BigEndian.PutUint64(out[8:16], h2)
		return out, nil
	default:
		return nil, fmt.Errorf("hash primary key: %q: %w", fn, types.ErrUnknownHashFunction)
	}
}
