// Package storage defines the persisted state model of the registry: the
// five maps (poaus, posis, poags, proof2signer, poauSignersIdx) behind one
// Store interface, with an in-memory backend (storage/mem), a persistent
// badger-backed one (storage/badger) and an LRU read-cache decorator
// (storage/cache) that can wrap either.
package storage

import (
	"github.com/daosign/daosign-go/model"
)

// Store is the persisted state model. Every write is append-only: no
// method mutates or deletes a record once accepted. Implementations must
// serialize writes — callers never observe a partially-committed record.
type Store interface {
	// StoreAuthority persists rec under cid, populates the signer index for
	// every signer in rec.Message.Signers (last occurrence of a repeated
	// address wins) and records proof2signer[cid] = from.
	// Returns ErrAlreadyExists if cid is already bound to a different
	// record; a byte-identical resubmission is a no-op success.
	StoreAuthority(cid model.CID, rec model.SignedProofOfAuthority) error
	// Authority returns the record stored under cid, or ok=false.
	Authority(cid model.CID) (model.SignedProofOfAuthority, bool)

	// StoreSignature persists rec under cid and records
	// proof2signer[cid] = signer. Same duplicate-CID semantics as
	// StoreAuthority.
	StoreSignature(cid model.CID, rec model.SignedProofOfSignature) error
	// Signature returns the record stored under cid, or ok=false.
	Signature(cid model.CID) (model.SignedProofOfSignature, bool)

	// StoreAgreement persists rec under cid. Agreement messages carry no
	// signer field, so proof2signer is left unset for agreement CIDs.
	// Same duplicate-CID semantics as StoreAuthority.
	StoreAgreement(cid model.CID, rec model.SignedProofOfAgreement) error
	// Agreement returns the record stored under cid, or ok=false.
	Agreement(cid model.CID) (model.SignedProofOfAgreement, bool)

	// SignerIndex looks up the index of addr within the signers array of
	// the authority stored under authorityCID. It returns ok=false for an
	// unknown authority or an address absent from that authority's signer
	// set, rather than silently defaulting to index zero.
	SignerIndex(authorityCID model.CID, addr model.Address) (int, bool)

	// ProofSigner returns the recovered signer address stored for cid
	// (proof2signer[cid]), or ok=false if unset.
	ProofSigner(cid model.CID) (model.Address, bool)
}
