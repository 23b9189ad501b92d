// Package validator implements the structural and cross-referential
// acceptance rules for the three proof kinds. Each of ProofOfAuthority,
// ProofOfSignature and ProofOfAgreement returns nil on success or a *ValidationError whose Error() is the exact
// short string a caller is meant to surface verbatim.
package validator

import (
	"github.com/daosign/daosign-go/model"
)

// ValidationError is the typed form of a validation failure. Its message
// is always one of a fixed set of short strings, so callers that need the
// verbatim string can call Error() directly, and callers that need to
// branch on the failed check kind can errors.As into it.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func fail(msg string) *ValidationError { return &ValidationError{msg: msg} }

const (
	appName              = "daosign"
	proofOfAuthorityName = "Proof-of-Authority"
	proofOfSignatureName = "Proof-of-Signature"
)

// AuthorityReader is the subset of storage.Store the referential rules for
// Proof-of-Signature and Proof-of-Agreement need. Declaring it here rather
// than importing the storage package keeps this package dependency-free in
// the opposite direction: storage never needs to know about validator.
type AuthorityReader interface {
	Authority(cid model.CID) (model.SignedProofOfAuthority, bool)
	SignerIndex(authorityCID model.CID, addr model.Address) (int, bool)
}

// SignatureReader is the subset of storage.Store Proof-of-Agreement
// validation needs to resolve each referenced signature's signer.
type SignatureReader interface {
	Signature(cid model.CID) (model.SignedProofOfSignature, bool)
}

// ProofOfAuthority enforces the structural acceptance rules for a
// Proof-of-Authority record.
func ProofOfAuthority(proofCID model.CID, msg model.ProofOfAuthorityMsg) error {
	if !proofCID.Valid() {
		return fail("Invalid proof CID")
	}
	if msg.App != appName {
		return fail("Invalid app name")
	}
	if msg.Name != proofOfAuthorityName {
		return fail("Invalid proof name")
	}
	if !msg.AgreementCID.Valid() {
		return fail("Invalid agreement CID")
	}
	var zero model.Address
	for _, s := range msg.Signers {
		if s.Addr == zero {
			return fail("Invalid signer")
		}
	}
	return nil
}

// ProofOfSignature enforces the structural and referential acceptance
// rules for a Proof-of-Signature record. The referential check
// deliberately mirrors the source contract's default-zero-map behavior via
// the Option-style AuthorityReader: an unknown authority or an
// unregistered signer both fail with "Invalid signer", exactly as an
// unrelated address would against signers[0] under the source's
// map-default semantics.
func ProofOfSignature(proofCID model.CID, msg model.ProofOfSignatureMsg, authorities AuthorityReader) error {
	if !proofCID.Valid() {
		return fail("Invalid proof CID")
	}
	if msg.App != appName {
		return fail("Invalid app name")
	}
	if msg.Name != proofOfSignatureName {
		return fail("Invalid proof name")
	}

	authority, ok := authorities.Authority(msg.AgreementCID)
	if !ok {
		return fail("Invalid signer")
	}
	idx, ok := authorities.SignerIndex(msg.AgreementCID, msg.Signer)
	if !ok {
		return fail("Invalid signer")
	}
	if idx >= len(authority.Message.Signers) || authority.Message.Signers[idx].Addr != msg.Signer {
		return fail("Invalid signer")
	}
	return nil
}

// ProofOfAgreement enforces the structural and referential acceptance
// rules for a Proof-of-Agreement record.
func ProofOfAgreement(proofCID model.CID, msg model.ProofOfAgreementMsg, authorities AuthorityReader, signatures SignatureReader) error {
	if !proofCID.Valid() {
		return fail("Invalid proof CID")
	}
	if msg.App != appName {
		return fail("Invalid app name")
	}

	authority, ok := authorities.Authority(msg.AgreementCID)
	if !ok || authority.Message.Name != proofOfAuthorityName {
		return fail("Invalid Proof-of-Authority name")
	}
	if len(authority.Message.Signers) != len(msg.SignatureCIDs) {
		return fail("Invalid Proofs-of-Signatures length")
	}

	for _, sigCID := range msg.SignatureCIDs {
		sig, ok := signatures.Signature(sigCID)
		if !ok {
			return fail("Invalid Proofs-of-Signature signer")
		}
		idx, ok := authorities.SignerIndex(msg.AgreementCID, sig.Message.Signer)
		if !ok || idx >= len(authority.Message.Signers) || authority.Message.Signers[idx].Addr != sig.Message.Signer {
			return fail("Invalid Proofs-of-Signature signer")
		}
	}
	return nil
}
