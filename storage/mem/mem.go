// Package mem implements storage.Store with sync.RWMutex-guarded Go maps:
// one exclusive lock over all five maps, read methods taking the read
// lock. This backend never yields mid-write and is thus safe as a
// single-writer state machine.
package mem

import (
	"sync"

	"github.com/daosign/daosign-go/model"
	"github.com/daosign/daosign-go/storage"
)

type signerKey struct {
	authorityCID model.CID
	addr         model.Address
}

// Store is an in-memory storage.Store.
type Store struct {
	mu sync.RWMutex

	authorities map[model.CID]model.SignedProofOfAuthority
	signatures  map[model.CID]model.SignedProofOfSignature
	agreements  map[model.CID]model.SignedProofOfAgreement
	proof2signer map[model.CID]model.Address
	signerIdx   map[signerKey]int
}

// New returns an empty in-memory Store.
func New() *Store {
	return &Store{
		authorities:  make(map[model.CID]model.SignedProofOfAuthority),
		signatures:   make(map[model.CID]model.SignedProofOfSignature),
		agreements:   make(map[model.CID]model.SignedProofOfAgreement),
		proof2signer: make(map[model.CID]model.Address),
		signerIdx:    make(map[signerKey]int),
	}
}

var _ storage.Store = (*Store)(nil)

func (s *Store) StoreAuthority(cid model.CID, rec model.SignedProofOfAuthority) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.authorities[cid]; ok {
		if !authorityEqual(existing, rec) {
			return storage.ErrAlreadyExists
		}
		return nil
	}

	s.authorities[cid] = rec
	for i, signer := range rec.Message.Signers {
		s.signerIdx[signerKey{authorityCID: cid, addr: signer.Addr}] = i
	}
	s.proof2signer[cid] = rec.Message.From
	return nil
}

func (s *Store) Authority(cid model.CID) (model.SignedProofOfAuthority, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.authorities[cid]
	return rec, ok
}

func (s *Store) StoreSignature(cid model.CID, rec model.SignedProofOfSignature) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.signatures[cid]; ok {
		if !signatureEqual(existing, rec) {
			return storage.ErrAlreadyExists
		}
		return nil
	}

	s.signatures[cid] = rec
	s.proof2signer[cid] = rec.Message.Signer
	return nil
}

func (s *Store) Signature(cid model.CID) (model.SignedProofOfSignature, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.signatures[cid]
	return rec, ok
}

func (s *Store) StoreAgreement(cid model.CID, rec model.SignedProofOfAgreement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.agreements[cid]; ok {
		if !agreementEqual(existing, rec) {
			return storage.ErrAlreadyExists
		}
		return nil
	}

	s.agreements[cid] = rec
	return nil
}

func (s *Store) Agreement(cid model.CID) (model.SignedProofOfAgreement, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.agreements[cid]
	return rec, ok
}

func (s *Store) SignerIndex(authorityCID model.CID, addr model.Address) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.signerIdx[signerKey{authorityCID: authorityCID, addr: addr}]
	return idx, ok
}

func (s *Store) ProofSigner(cid model.CID) (model.Address, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	addr, ok := s.proof2signer[cid]
	return addr, ok
}

func authorityEqual(a, b model.SignedProofOfAuthority) bool {
	if a.Signature != b.Signature || a.ProofCID != b.ProofCID {
		return false
	}
	am, bm := a.Message, b.Message
	if am.Name != bm.Name || am.From != bm.From || am.AgreementCID != bm.AgreementCID ||
		am.App != bm.App || am.Timestamp != bm.Timestamp || am.Metadata != bm.Metadata {
		return false
	}
	if len(am.Signers) != len(bm.Signers) {
		return false
	}
	for i := range am.Signers {
		if am.Signers[i] != bm.Signers[i] {
			return false
		}
	}
	return true
}

func signatureEqual(a, b model.SignedProofOfSignature) bool {
	return a == b
}

func agreementEqual(a, b model.SignedProofOfAgreement) bool {
	if a.Signature != b.Signature || a.ProofCID != b.ProofCID {
		return false
	}
	am, bm := a.Message, b.Message
	if am.AgreementCID != bm.AgreementCID || am.App != bm.App || am.Timestamp != bm.Timestamp || am.Metadata != bm.Metadata {
		return false
	}
	if len(am.SignatureCIDs) != len(bm.SignatureCIDs) {
		return false
	}
	for i := range am.SignatureCIDs {
		if am.SignatureCIDs[i] != bm.SignatureCIDs[i] {
			return false
		}
	}
	return true
}
