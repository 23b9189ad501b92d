package typedhash

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// digestFrom composes the final signing digest from a struct hash and the
// cached domain separator of the fixed domain.
func digestFrom(structHash common.Hash) common.Hash {
	buf := make([]byte, 0, 2+32+32)
	buf = append(buf, 0x19, 0x01)
	buf = append(buf, cachedDomainSeparator[:]...)
	buf = append(buf, structHash[:]...)
	return crypto.Keccak256Hash(buf)
}
