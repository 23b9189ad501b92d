package validator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daosign/daosign-go/model"
)

func pad46(s string) model.CID {
	if len(s) >= model.CIDLength {
		return model.CID(s[:model.CIDLength])
	}
	out := s
	for len(out) < model.CIDLength {
		out += "x"
	}
	return model.CID(out)
}

var addrA = model.Address{0x01}
var addrB = model.Address{0x02}

func validAuthorityMsg() model.ProofOfAuthorityMsg {
	return model.ProofOfAuthorityMsg{
		Name:         "Proof-of-Authority",
		From:         addrA,
		AgreementCID: pad46("agreement file cid"),
		Signers:      []model.Signer{{Addr: addrA, Metadata: "some metadata"}},
		App:          "daosign",
		Timestamp:    1700000000,
		Metadata:     "proof metadata",
	}
}

// S1: short proofCID rejected.
func TestProofOfAuthority_ShortProofCID(t *testing.T) {
	err := ProofOfAuthority(model.CID("..."), validAuthorityMsg())
	require.EqualError(t, err, "Invalid proof CID")
}

func TestProofOfAuthority_LongProofCID(t *testing.T) {
	err := ProofOfAuthority(pad46("ProofOfAuthority proof cid")+"yy", validAuthorityMsg())
	require.EqualError(t, err, "Invalid proof CID")
}

// S2: wrong app name rejected.
func TestProofOfAuthority_WrongAppName(t *testing.T) {
	msg := validAuthorityMsg()
	msg.App = "DAOsign"
	err := ProofOfAuthority(pad46("ProofOfAuthority proof cid"), msg)
	require.EqualError(t, err, "Invalid app name")
}

func TestProofOfAuthority_WrongProofName(t *testing.T) {
	msg := validAuthorityMsg()
	msg.Name = "not-the-right-name"
	err := ProofOfAuthority(pad46("ProofOfAuthority proof cid"), msg)
	require.EqualError(t, err, "Invalid proof name")
}

func TestProofOfAuthority_ShortAgreementCID(t *testing.T) {
	msg := validAuthorityMsg()
	msg.AgreementCID = "short"
	err := ProofOfAuthority(pad46("ProofOfAuthority proof cid"), msg)
	require.EqualError(t, err, "Invalid agreement CID")
}

// S3: zero-address signer rejected.
func TestProofOfAuthority_ZeroAddressSigner(t *testing.T) {
	msg := validAuthorityMsg()
	msg.Signers = []model.Signer{{Addr: model.Address{}, Metadata: "some metadata"}}
	err := ProofOfAuthority(pad46("ProofOfAuthority proof cid"), msg)
	require.EqualError(t, err, "Invalid signer")
}

// S4: happy path.
func TestProofOfAuthority_Accepted(t *testing.T) {
	err := ProofOfAuthority(pad46("ProofOfAuthority proof cid"), validAuthorityMsg())
	require.NoError(t, err)
}

func TestProofOfAuthority_EmptySignersAccepted(t *testing.T) {
	msg := validAuthorityMsg()
	msg.Signers = nil
	err := ProofOfAuthority(pad46("ProofOfAuthority proof cid"), msg)
	require.NoError(t, err)
}

// fakeAuthorities is a minimal AuthorityReader/SignatureReader test double.
type fakeAuthorities struct {
	authorities map[model.CID]model.SignedProofOfAuthority
	signerIdx   map[model.CID]map[model.Address]int
	signatures  map[model.CID]model.SignedProofOfSignature
}

func newFakeAuthorities() *fakeAuthorities {
	return &fakeAuthorities{
		authorities: map[model.CID]model.SignedProofOfAuthority{},
		signerIdx:   map[model.CID]map[model.Address]int{},
		signatures:  map[model.CID]model.SignedProofOfSignature{},
	}
}

func (f *fakeAuthorities) put(cid model.CID, rec model.SignedProofOfAuthority) {
	f.authorities[cid] = rec
	idx := map[model.Address]int{}
	for i, s := range rec.Message.Signers {
		idx[s.Addr] = i
	}
	f.signerIdx[cid] = idx
}

func (f *fakeAuthorities) Authority(cid model.CID) (model.SignedProofOfAuthority, bool) {
	rec, ok := f.authorities[cid]
	return rec, ok
}

func (f *fakeAuthorities) SignerIndex(authorityCID model.CID, addr model.Address) (int, bool) {
	idx, ok := f.signerIdx[authorityCID]
	if !ok {
		return 0, false
	}
	i, ok := idx[addr]
	return i, ok
}

func (f *fakeAuthorities) Signature(cid model.CID) (model.SignedProofOfSignature, bool) {
	rec, ok := f.signatures[cid]
	return rec, ok
}

func TestProofOfSignature_S5(t *testing.T) {
	authorityCID := pad46("ProofOfAuthority proof cid")
	store := newFakeAuthorities()
	store.put(authorityCID, model.SignedProofOfAuthority{Message: validAuthorityMsg(), ProofCID: authorityCID})

	msg := model.ProofOfSignatureMsg{
		Name:         "Proof-of-Signature",
		Signer:       addrA,
		AgreementCID: authorityCID,
		App:          "daosign",
		Timestamp:    1700000001,
		Metadata:     "signature metadata",
	}

	err := ProofOfSignature(pad46("ProofOfSignature proof cid"), msg, store)
	require.NoError(t, err)
}

func TestProofOfSignature_UnknownAuthority(t *testing.T) {
	store := newFakeAuthorities()
	msg := model.ProofOfSignatureMsg{
		Name:         "Proof-of-Signature",
		Signer:       addrA,
		AgreementCID: pad46("does not exist"),
		App:          "daosign",
		Timestamp:    1,
	}
	err := ProofOfSignature(pad46("sig cid"), msg, store)
	require.EqualError(t, err, "Invalid signer")
}

func TestProofOfSignature_UnrelatedSigner(t *testing.T) {
	authorityCID := pad46("ProofOfAuthority proof cid")
	store := newFakeAuthorities()
	store.put(authorityCID, model.SignedProofOfAuthority{Message: validAuthorityMsg(), ProofCID: authorityCID})

	msg := model.ProofOfSignatureMsg{
		Name:         "Proof-of-Signature",
		Signer:       addrB,
		AgreementCID: authorityCID,
		App:          "daosign",
		Timestamp:    1,
	}
	err := ProofOfSignature(pad46("sig cid"), msg, store)
	require.EqualError(t, err, "Invalid signer")
}

func TestProofOfAgreement_S6(t *testing.T) {
	authorityCID := pad46("ProofOfAuthority proof cid")
	sigCID := pad46("ProofOfSignature proof cid")

	store := newFakeAuthorities()
	store.put(authorityCID, model.SignedProofOfAuthority{Message: validAuthorityMsg(), ProofCID: authorityCID})
	store.signatures[sigCID] = model.SignedProofOfSignature{
		Message: model.ProofOfSignatureMsg{
			Name:         "Proof-of-Signature",
			Signer:       addrA,
			AgreementCID: authorityCID,
			App:          "daosign",
		},
		ProofCID: sigCID,
	}

	msg := model.ProofOfAgreementMsg{
		AgreementCID:  authorityCID,
		SignatureCIDs: []model.CID{sigCID},
		App:           "daosign",
		Timestamp:     1700000002,
		Metadata:      "agreement metadata",
	}

	err := ProofOfAgreement(pad46("ProofOfAgreement proof cid"), msg, store, store)
	require.NoError(t, err)
}

// S7: cardinality mismatch.
func TestProofOfAgreement_CardinalityMismatch(t *testing.T) {
	authorityCID := pad46("ProofOfAuthority proof cid")
	store := newFakeAuthorities()
	store.put(authorityCID, model.SignedProofOfAuthority{Message: validAuthorityMsg(), ProofCID: authorityCID})

	msg := model.ProofOfAgreementMsg{
		AgreementCID:  authorityCID,
		SignatureCIDs: nil,
		App:           "daosign",
	}

	err := ProofOfAgreement(pad46("ProofOfAgreement proof cid"), msg, store, store)
	require.EqualError(t, err, "Invalid Proofs-of-Signatures length")
}

func TestProofOfAgreement_UnknownAuthorityName(t *testing.T) {
	store := newFakeAuthorities()
	msg := model.ProofOfAgreementMsg{
		AgreementCID: pad46("missing"),
		App:          "daosign",
	}
	err := ProofOfAgreement(pad46("agr cid"), msg, store, store)
	require.EqualError(t, err, "Invalid Proof-of-Authority name")
}
