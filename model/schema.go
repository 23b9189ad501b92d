package model

// FieldType is one entry of an EIP-712 type descriptor: the field's
// declared name and its ABI type string.
type FieldType struct {
	Name string
	Type string
}

// The following field lists are the canonical EIP-712 type descriptors for
// this domain's primary types. They are fixed at init and returned
// verbatim inside every get* response.
var (
	EIP712DomainFields = []FieldType{
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
		{Name: "chainId", Type: "uint256"},
		{Name: "verifyingContract", Type: "address"},
	}

	SignerFields = []FieldType{
		{Name: "addr", Type: "address"},
		{Name: "metadata", Type: "string"},
	}

	ProofOfAuthorityFields = []FieldType{
		{Name: "name", Type: "string"},
		{Name: "from", Type: "address"},
		{Name: "agreementCID", Type: "string"},
		{Name: "signers", Type: "Signer[]"},
		{Name: "app", Type: "string"},
		{Name: "timestamp", Type: "uint256"},
		{Name: "metadata", Type: "string"},
	}

	ProofOfSignatureFields = []FieldType{
		{Name: "name", Type: "string"},
		{Name: "signer", Type: "address"},
		{Name: "agreementCID", Type: "string"},
		{Name: "app", Type: "string"},
		{Name: "timestamp", Type: "uint256"},
		{Name: "metadata", Type: "string"},
	}

	ProofOfAgreementFields = []FieldType{
		{Name: "agreementCID", Type: "string"},
		{Name: "signatureCIDs", Type: "string[]"},
		{Name: "app", Type: "string"},
		{Name: "timestamp", Type: "uint256"},
		{Name: "metadata", Type: "string"},
	}
)

// AuthorityView is the enriched read response returned by getProofOfAuthority.
type AuthorityView struct {
	Domain      Domain
	Types       map[string][]FieldType
	PrimaryType string
	Message     ProofOfAuthorityMsg
	Signature   Bytes65Sig
}

// SignatureView is the enriched read response returned by getProofOfSignature.
type SignatureView struct {
	Domain      Domain
	Types       map[string][]FieldType
	PrimaryType string
	Message     ProofOfSignatureMsg
	Signature   Bytes65Sig
}

// AgreementView is the enriched read response returned by getProofOfAgreement.
type AgreementView struct {
	Domain      Domain
	Types       map[string][]FieldType
	PrimaryType string
	Message     ProofOfAgreementMsg
	Signature   Bytes65Sig
}

// NewAuthorityView builds the read response for a stored Proof-of-Authority.
// Callers detect "not found" via the zero-valued AuthorityView, matching
// the source contract's default-zero-map read semantics.
func NewAuthorityView(rec SignedProofOfAuthority) AuthorityView {
	return AuthorityView{
		Domain: FixedDomain,
		Types: map[string][]FieldType{
			"EIP712Domain":     EIP712DomainFields,
			"Signer":           SignerFields,
			"ProofOfAuthority": ProofOfAuthorityFields,
		},
		PrimaryType: "ProofOfAuthority",
		Message:     rec.Message,
		Signature:   rec.Signature,
	}
}

// NewSignatureView builds the read response for a stored Proof-of-Signature.
func NewSignatureView(rec SignedProofOfSignature) SignatureView {
	return SignatureView{
		Domain: FixedDomain,
		Types: map[string][]FieldType{
			"EIP712Domain":     EIP712DomainFields,
			"ProofOfSignature": ProofOfSignatureFields,
		},
		PrimaryType: "ProofOfSignature",
		Message:     rec.Message,
		Signature:   rec.Signature,
	}
}

// NewAgreementView builds the read response for a stored Proof-of-Agreement.
func NewAgreementView(rec SignedProofOfAgreement) AgreementView {
	return AgreementView{
		Domain: FixedDomain,
		Types: map[string][]FieldType{
			"EIP712Domain":     EIP712DomainFields,
			"ProofOfAgreement": ProofOfAgreementFields,
		},
		PrimaryType: "ProofOfAgreement",
		Message:     rec.Message,
		Signature:   rec.Signature,
	}
}
