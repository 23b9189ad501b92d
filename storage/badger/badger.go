// Package badger implements storage.Store on top of an embedded
// github.com/dgraph-io/badger/v2 database: one key prefix per logical map,
// records round-tripped through github.com/fxamacker/cbor/v2, and a
// per-authority signer index kept as its own key range so SignerIndex
// lookups never require scanning the authority record.
package badger

import (
	"encoding/binary"

	badgerdb "github.com/dgraph-io/badger/v2"
	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/daosign/daosign-go/model"
	"github.com/daosign/daosign-go/storage"
)

const (
	prefixAuthority   = "poau:"
	prefixSignature   = "posi:"
	prefixAgreement   = "poag:"
	prefixProofSigner = "p2s:"
	prefixSignerIdx   = "sidx:"
)

// Store is a badger-backed storage.Store.
type Store struct {
	db  *badgerdb.DB
	log zerolog.Logger
}

// Open opens (creating if absent) a badger database at dir.
func Open(dir string) (*Store, error) {
	opts := badgerdb.DefaultOptions(dir).WithLogger(nil)
	db, err := badgerdb.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "badger: open %s", dir)
	}
	return &Store{db: db, log: log.With().Str("component", "badger_store").Logger()}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

var _ storage.Store = (*Store)(nil)

func authorityKey(cid model.CID) []byte { return []byte(prefixAuthority + string(cid)) }
func signatureKey(cid model.CID) []byte { return []byte(prefixSignature + string(cid)) }
func agreementKey(cid model.CID) []byte { return []byte(prefixAgreement + string(cid)) }
func proofSignerKey(cid model.CID) []byte { return []byte(prefixProofSigner + string(cid)) }
func signerIdxKey(authorityCID model.CID, addr model.Address) []byte {
	return []byte(prefixSignerIdx + string(authorityCID) + ":" + addr.Hex())
}

func (s *Store) StoreAuthority(cid model.CID, rec model.SignedProofOfAuthority) error {
	encoded, err := cbor.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "badger: encode authority")
	}

	return s.db.Update(func(txn *badgerdb.Txn) error {
		key := authorityKey(cid)
		item, err := txn.Get(key)
		if err == nil {
			existing, derr := item.ValueCopy(nil)
			if derr != nil {
				return derr
			}
			if string(existing) != string(encoded) {
				return storage.ErrAlreadyExists
			}
			return nil
		}
		if err != badgerdb.ErrKeyNotFound {
			return err
		}

		if err := txn.Set(key, encoded); err != nil {
			return err
		}
		for i, signer := range rec.Message.Signers {
			idxBuf := make([]byte, 8)
			binary.BigEndian.PutUint64(idxBuf, uint64(i))
			if err := txn.Set(signerIdxKey(cid, signer.Addr), idxBuf); err != nil {
				return err
			}
		}
		return txn.Set(proofSignerKey(cid), rec.Message.From.Bytes())
	})
}

func (s *Store) Authority(cid model.CID) (model.SignedProofOfAuthority, bool) {
	var rec model.SignedProofOfAuthority
	found := false
	_ = s.db.View(func(txn *badgerdb.Txn) error {
		item, err := txn.Get(authorityKey(cid))
		if err != nil {
			return nil
		}
		raw, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		if err := cbor.Unmarshal(raw, &rec); err != nil {
			s.log.Warn().Err(err).Str("proofCID", string(cid)).Msg("corrupted authority record")
			return nil
		}
		found = true
		return nil
	})
	return rec, found
}

func (s *Store) StoreSignature(cid model.CID, rec model.SignedProofOfSignature) error {
	encoded, err := cbor.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "badger: encode signature")
	}

	return s.db.Update(func(txn *badgerdb.Txn) error {
		key := signatureKey(cid)
		item, err := txn.Get(key)
		if err == nil {
			existing, derr := item.ValueCopy(nil)
			if derr != nil {
				return derr
			}
			if string(existing) != string(encoded) {
				return storage.ErrAlreadyExists
			}
			return nil
		}
		if err != badgerdb.ErrKeyNotFound {
			return err
		}

		if err := txn.Set(key, encoded); err != nil {
			return err
		}
		return txn.Set(proofSignerKey(cid), rec.Message.Signer.Bytes())
	})
}

func (s *Store) Signature(cid model.CID) (model.SignedProofOfSignature, bool) {
	var rec model.SignedProofOfSignature
	found := false
	_ = s.db.View(func(txn *badgerdb.Txn) error {
		item, err := txn.Get(signatureKey(cid))
		if err != nil {
			return nil
		}
		raw, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		if err := cbor.Unmarshal(raw, &rec); err != nil {
			s.log.Warn().Err(err).Str("proofCID", string(cid)).Msg("corrupted signature record")
			return nil
		}
		found = true
		return nil
	})
	return rec, found
}

func (s *Store) StoreAgreement(cid model.CID, rec model.SignedProofOfAgreement) error {
	encoded, err := cbor.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "badger: encode agreement")
	}

	return s.db.Update(func(txn *badgerdb.Txn) error {
		key := agreementKey(cid)
		item, err := txn.Get(key)
		if err == nil {
			existing, derr := item.ValueCopy(nil)
			if derr != nil {
				return derr
			}
			if string(existing) != string(encoded) {
				return storage.ErrAlreadyExists
			}
			return nil
		}
		if err != badgerdb.ErrKeyNotFound {
			return err
		}
		return txn.Set(key, encoded)
	})
}

func (s *Store) Agreement(cid model.CID) (model.SignedProofOfAgreement, bool) {
	var rec model.SignedProofOfAgreement
	found := false
	_ = s.db.View(func(txn *badgerdb.Txn) error {
		item, err := txn.Get(agreementKey(cid))
		if err != nil {
			return nil
		}
		raw, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		if err := cbor.Unmarshal(raw, &rec); err != nil {
			s.log.Warn().Err(err).Str("proofCID", string(cid)).Msg("corrupted agreement record")
			return nil
		}
		found = true
		return nil
	})
	return rec, found
}

func (s *Store) SignerIndex(authorityCID model.CID, addr model.Address) (int, bool) {
	var idx int
	found := false
	_ = s.db.View(func(txn *badgerdb.Txn) error {
		item, err := txn.Get(signerIdxKey(authorityCID, addr))
		if err != nil {
			return nil
		}
		raw, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		if len(raw) != 8 {
			return storage.ErrDataMismatch
		}
		idx = int(binary.BigEndian.Uint64(raw))
		found = true
		return nil
	})
	return idx, found
}

func (s *Store) ProofSigner(cid model.CID) (model.Address, bool) {
	var addr model.Address
	found := false
	_ = s.db.View(func(txn *badgerdb.Txn) error {
		item, err := txn.Get(proofSignerKey(cid))
		if err != nil {
			return nil
		}
		raw, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		addr = model.Address(common20(raw))
		found = true
		return nil
	})
	return addr, found
}

func common20(b []byte) [20]byte {
	var out [20]byte
	copy(out[:], b)
	return out
}
