package badger

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daosign/daosign-go/model"
	"github.com/daosign/daosign-go/storage"
)

func pad46(s string) model.CID {
	out := s
	for len(out) < model.CIDLength {
		out += "x"
	}
	return model.CID(out[:model.CIDLength])
}

func openTestStore(t *testing.T) *Store {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })
	return s
}

func TestStoreAuthority_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	cid := pad46("authority cid")
	addrA := model.Address{0x01}
	addrB := model.Address{0x02}

	rec := model.SignedProofOfAuthority{
		Message: model.ProofOfAuthorityMsg{
			Name:         "Proof-of-Authority",
			From:         addrA,
			AgreementCID: pad46("agreement cid"),
			Signers: []model.Signer{
				{Addr: addrA, Metadata: "first"},
				{Addr: addrB, Metadata: "second"},
			},
			App: "daosign",
		},
		ProofCID: cid,
	}

	require.NoError(t, s.StoreAuthority(cid, rec))

	got, ok := s.Authority(cid)
	require.True(t, ok)
	require.Equal(t, rec, got)

	idxA, ok := s.SignerIndex(cid, addrA)
	require.True(t, ok)
	require.Equal(t, 0, idxA)

	idxB, ok := s.SignerIndex(cid, addrB)
	require.True(t, ok)
	require.Equal(t, 1, idxB)

	_, ok = s.SignerIndex(cid, model.Address{0x09})
	require.False(t, ok)

	signer, ok := s.ProofSigner(cid)
	require.True(t, ok)
	require.Equal(t, addrA, signer)
}

func TestStoreAuthority_DuplicateAddressLastWins(t *testing.T) {
	s := openTestStore(t)
	cid := pad46("dup signer cid")
	addr := model.Address{0x01}

	rec := model.SignedProofOfAuthority{
		Message: model.ProofOfAuthorityMsg{
			Name: "Proof-of-Authority",
			From: addr,
			Signers: []model.Signer{
				{Addr: addr, Metadata: "first"},
				{Addr: addr, Metadata: "second"},
			},
		},
		ProofCID: cid,
	}
	require.NoError(t, s.StoreAuthority(cid, rec))

	idx, ok := s.SignerIndex(cid, addr)
	require.True(t, ok)
	require.Equal(t, 1, idx)
}

func TestStoreAuthority_SameCIDIdenticalIsNoop(t *testing.T) {
	s := openTestStore(t)
	cid := pad46("idempotent cid")
	rec := model.SignedProofOfAuthority{
		Message:  model.ProofOfAuthorityMsg{Name: "Proof-of-Authority", From: model.Address{0x01}},
		ProofCID: cid,
	}

	require.NoError(t, s.StoreAuthority(cid, rec))
	require.NoError(t, s.StoreAuthority(cid, rec))
}

func TestStoreAuthority_ConflictingCIDRejected(t *testing.T) {
	s := openTestStore(t)
	cid := pad46("conflict cid")
	rec1 := model.SignedProofOfAuthority{
		Message:  model.ProofOfAuthorityMsg{Name: "Proof-of-Authority", From: model.Address{0x01}},
		ProofCID: cid,
	}
	rec2 := rec1
	rec2.Message.From = model.Address{0x02}

	require.NoError(t, s.StoreAuthority(cid, rec1))
	err := s.StoreAuthority(cid, rec2)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}

func TestAuthority_UnknownCIDNotFound(t *testing.T) {
	s := openTestStore(t)
	_, ok := s.Authority(pad46("does not exist"))
	require.False(t, ok)
}

func TestStoreSignature_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	cid := pad46("signature cid")
	addr := model.Address{0x03}

	rec := model.SignedProofOfSignature{
		Message:  model.ProofOfSignatureMsg{Name: "Proof-of-Signature", Signer: addr},
		ProofCID: cid,
	}
	require.NoError(t, s.StoreSignature(cid, rec))

	got, ok := s.Signature(cid)
	require.True(t, ok)
	require.Equal(t, rec, got)

	signer, ok := s.ProofSigner(cid)
	require.True(t, ok)
	require.Equal(t, addr, signer)
}

func TestStoreSignature_ConflictingCIDRejected(t *testing.T) {
	s := openTestStore(t)
	cid := pad46("sig conflict cid")
	rec1 := model.SignedProofOfSignature{
		Message:  model.ProofOfSignatureMsg{Name: "Proof-of-Signature", Signer: model.Address{0x01}},
		ProofCID: cid,
	}
	rec2 := rec1
	rec2.Message.Signer = model.Address{0x02}

	require.NoError(t, s.StoreSignature(cid, rec1))
	err := s.StoreSignature(cid, rec2)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}

func TestStoreAgreement_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	cid := pad46("agreement proof cid")

	rec := model.SignedProofOfAgreement{
		Message:  model.ProofOfAgreementMsg{AgreementCID: pad46("authority cid")},
		ProofCID: cid,
	}
	require.NoError(t, s.StoreAgreement(cid, rec))

	got, ok := s.Agreement(cid)
	require.True(t, ok)
	require.Equal(t, rec, got)

	// Agreement messages carry no signer; proof2signer stays unset.
	_, ok = s.ProofSigner(cid)
	require.False(t, ok)
}

func TestStoreAgreement_ConflictingCIDRejected(t *testing.T) {
	s := openTestStore(t)
	cid := pad46("agreement conflict cid")
	rec1 := model.SignedProofOfAgreement{
		Message:  model.ProofOfAgreementMsg{AgreementCID: pad46("authority cid one")},
		ProofCID: cid,
	}
	rec2 := rec1
	rec2.Message.AgreementCID = pad46("authority cid two")

	require.NoError(t, s.StoreAgreement(cid, rec1))
	err := s.StoreAgreement(cid, rec2)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}

func TestSignerIndex_UnknownAuthorityNotFound(t *testing.T) {
	s := openTestStore(t)
	_, ok := s.SignerIndex(pad46("no such authority"), model.Address{0x01})
	require.False(t, ok)
}

// TestStore_SurvivesReopen checks that records written before a close are
// readable again after the database is reopened at the same directory,
// exercising the actual on-disk persistence storage/mem can never cover.
func TestStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	cid := pad46("persisted cid")
	addr := model.Address{0x07}

	s1, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, s1.StoreAuthority(cid, model.SignedProofOfAuthority{
		Message: model.ProofOfAuthorityMsg{
			Name:    "Proof-of-Authority",
			From:    addr,
			Signers: []model.Signer{{Addr: addr, Metadata: "m"}},
		},
		ProofCID: cid,
	}))
	require.NoError(t, s1.Close())

	s2, err := Open(dir)
	require.NoError(t, err)
	defer func() { require.NoError(t, s2.Close()) }()

	got, ok := s2.Authority(cid)
	require.True(t, ok)
	require.Equal(t, addr, got.Message.From)

	idx, ok := s2.SignerIndex(cid, addr)
	require.True(t, ok)
	require.Equal(t, 0, idx)
}
