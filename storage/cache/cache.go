// Package cache wraps a storage.Store with an LRU read cache over its three
// record maps, built on github.com/hashicorp/golang-lru. Writes always go
// through to the wrapped Store first; a write only populates the cache
// after the underlying Store accepts it, so a rejected write can never
// leave a stale cache entry visible.
package cache

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/daosign/daosign-go/model"
	"github.com/daosign/daosign-go/storage"
)

// DefaultSize is the number of entries kept per record kind.
const DefaultSize = 1024

// Store decorates another storage.Store with LRU read caches.
type Store struct {
	inner storage.Store

	authorities *lru.Cache
	signatures  *lru.Cache
	agreements  *lru.Cache
}

// Wrap returns a Store that caches reads from inner. size is the per-kind
// cache capacity; DefaultSize is used if size <= 0.
func Wrap(inner storage.Store, size int) (*Store, error) {
	if size <= 0 {
		size = DefaultSize
	}
	authorities, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	signatures, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	agreements, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Store{inner: inner, authorities: authorities, signatures: signatures, agreements: agreements}, nil
}

var _ storage.Store = (*Store)(nil)

func (s *Store) StoreAuthority(cid model.CID, rec model.SignedProofOfAuthority) error {
	if err := s.inner.StoreAuthority(cid, rec); err != nil {
		return err
	}
	s.authorities.Add(cid, rec)
	return nil
}

func (s *Store) Authority(cid model.CID) (model.SignedProofOfAuthority, bool) {
	if v, ok := s.authorities.Get(cid); ok {
		return v.(model.SignedProofOfAuthority), true
	}
	rec, ok := s.inner.Authority(cid)
	if ok {
		s.authorities.Add(cid, rec)
	}
	return rec, ok
}

func (s *Store) StoreSignature(cid model.CID, rec model.SignedProofOfSignature) error {
	if err := s.inner.StoreSignature(cid, rec); err != nil {
		return err
	}
	s.signatures.Add(cid, rec)
	return nil
}

func (s *Store) Signature(cid model.CID) (model.SignedProofOfSignature, bool) {
	if v, ok := s.signatures.Get(cid); ok {
		return v.(model.SignedProofOfSignature), true
	}
	rec, ok := s.inner.Signature(cid)
	if ok {
		s.signatures.Add(cid, rec)
	}
	return rec, ok
}

func (s *Store) StoreAgreement(cid model.CID, rec model.SignedProofOfAgreement) error {
	if err := s.inner.StoreAgreement(cid, rec); err != nil {
		return err
	}
	s.agreements.Add(cid, rec)
	return nil
}

func (s *Store) Agreement(cid model.CID) (model.SignedProofOfAgreement, bool) {
	if v, ok := s.agreements.Get(cid); ok {
		return v.(model.SignedProofOfAgreement), true
	}
	rec, ok := s.inner.Agreement(cid)
	if ok {
		s.agreements.Add(cid, rec)
	}
	return rec, ok
}

// SignerIndex and ProofSigner are small fixed-size lookups already O(1) on
// every backend; caching them would only add complexity for no measurable
// benefit, so they pass straight through.
func (s *Store) SignerIndex(authorityCID model.CID, addr model.Address) (int, bool) {
	return s.inner.SignerIndex(authorityCID, addr)
}

func (s *Store) ProofSigner(cid model.CID) (model.Address, bool) {
	return s.inner.ProofSigner(cid)
}
