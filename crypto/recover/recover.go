// Package recover implements secp256k1 / Ethereum-style signature recovery:
// given a 32-byte digest and a 65-byte (r, s, v) signature, it returns the
// 20-byte signer address.
package recover

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/daosign/daosign-go/model"
)

// ErrMalformedSignature is returned when the recovery id is outside
// {27,28,0,1} or the signature fails the low-S malleability check.
var ErrMalformedSignature = errors.New("recover: malformed signature")

// ErrZeroAddress is returned when recovery succeeds but yields the zero
// address, which this registry treats as a recovery failure.
var ErrZeroAddress = errors.New("recover: recovered the zero address")

// Recover returns the address that produced sig over digest. It accepts
// both v encodings (27/28 and 0/1), normalizing v<27 by adding 27 before
// further checks and subtracting 27 again before calling into
// go-ethereum's recovery primitive (which expects v as 0/1). It rejects
// signatures with s above secp256k1's half order (the same low-S rule
// go-ethereum's homestead signer enforces) and rejects a recovered zero
// address.
func Recover(digest [32]byte, sig model.Bytes65Sig) (model.Address, error) {
	v := sig.V()
	if v < 27 {
		v += 27
	}
	if v != 27 && v != 28 {
		return model.Address{}, ErrMalformedSignature
	}
	recoveryID := v - 27

	r := new(big.Int).SetBytes(sig[0:32])
	s := new(big.Int).SetBytes(sig[32:64])
	if !crypto.ValidateSignatureValues(recoveryID, r, s, true) {
		return model.Address{}, ErrMalformedSignature
	}

	normalized := make([]byte, 65)
	copy(normalized, sig[:64])
	normalized[64] = recoveryID

	pub, err := crypto.SigToPub(digest[:], normalized)
	if err != nil {
		return model.Address{}, err
	}

	addr := crypto.PubkeyToAddress(*pub)
	if addr == (common.Address{}) {
		return model.Address{}, ErrZeroAddress
	}
	return addr, nil
}
