// Package model defines the on-chain-style records exchanged by the
// proof-of-authority / proof-of-signature / proof-of-agreement workflow.
package model

import (
	ethcommon "github.com/ethereum/go-ethereum/common"
)

// Address is the 20-byte signer address recovered from a signature.
type Address = ethcommon.Address

// CIDLength is the fixed length of an IPFS v0 (base58) content identifier.
// CIDs are treated as opaque strings by this package: their internal
// structure is never parsed, only their length is checked.
const CIDLength = 46

// CID is an opaque content identifier. Valid CIDs are exactly CIDLength
// bytes long; shorter or longer values are rejected by the validator.
type CID string

// Valid reports whether c has the length required of a stored CID.
func (c CID) Valid() bool {
	return len(c) == CIDLength
}

// Timestamp is seconds since the Unix epoch. It is never compared against
// wall-clock time by this package.
type Timestamp uint64

// Bytes65Sig is a raw Ethereum-style signature: 32 bytes r, 32 bytes s and
// one byte v (27/28 or 0/1).
type Bytes65Sig [65]byte

// R returns the r component of the signature.
func (s Bytes65Sig) R() [32]byte {
	var r [32]byte
	copy(r[:], s[0:32])
	return r
}

// S returns the s component of the signature.
func (s Bytes65Sig) S() [32]byte {
	var v [32]byte
	copy(v[:], s[32:64])
	return v
}

// V returns the recovery id byte, unnormalized.
func (s Bytes65Sig) V() byte {
	return s[64]
}
