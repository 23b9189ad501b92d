package typedhash

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// encodeString reduces a dynamic string field to its 32-byte encoded slot:
// the keccak256 of its UTF-8 bytes.
func encodeString(s string) common.Hash {
	return crypto.Keccak256Hash([]byte(s))
}

// encodeAddress left-zero-pads a 20-byte address into a 32-byte slot.
func encodeAddress(a common.Address) common.Hash {
	var out common.Hash
	copy(out[12:], a[:])
	return out
}

// encodeUint64 big-endian-encodes v into a 32-byte slot (the uint256 slot
// with everything above the low 8 bytes zero).
func encodeUint64(v uint64) common.Hash {
	var out common.Hash
	binary.BigEndian.PutUint64(out[24:], v)
	return out
}

// hashConcat keccak256's the concatenation of the given 32-byte chunks with
// no length prefix and no separator, matching encodePacked(concat(...)).
func hashConcat(chunks []common.Hash) common.Hash {
	buf := make([]byte, 0, 32*len(chunks))
	for _, c := range chunks {
		buf = append(buf, c[:]...)
	}
	return crypto.Keccak256Hash(buf)
}

// encodeStringArray reduces a dynamic array of strings to its 32-byte slot:
// keccak256 of the concatenation of the keccak256 of each element.
func encodeStringArray(ss []string) common.Hash {
	hashes := make([]common.Hash, len(ss))
	for i, s := range ss {
		hashes[i] = encodeString(s)
	}
	return hashConcat(hashes)
}

// encodeStructArray reduces a dynamic array of 32-byte struct hashes to its
// slot: keccak256 of their concatenation, no separator.
func encodeStructArray(hashes []common.Hash) common.Hash {
	return hashConcat(hashes)
}

// encodeStruct implements abi.encode(TYPEHASH, field0, field1, ...)
// followed by keccak256 of the whole buffer: each field occupies one
// 32-byte slot, in declared order.
func encodeStruct(typeHash common.Hash, fields ...common.Hash) common.Hash {
	buf := make([]byte, 0, 32*(1+len(fields)))
	buf = append(buf, typeHash[:]...)
	for _, f := range fields {
		buf = append(buf, f[:]...)
	}
	return crypto.Keccak256Hash(buf)
}
