package model

// ProofOfAuthorityMsg declares who is entitled to sign a given agreement.
type ProofOfAuthorityMsg struct {
	Name         string
	From         Address
	AgreementCID CID
	Signers      []Signer
	App          string
	Timestamp    Timestamp
	Metadata     string
}

// ProofOfSignatureMsg records one signer's acknowledgment of an agreement
// governed by a previously stored ProofOfAuthorityMsg.
type ProofOfSignatureMsg struct {
	Name         string
	Signer       Address
	AgreementCID CID
	App          string
	Timestamp    Timestamp
	Metadata     string
}

// ProofOfAgreementMsg bundles every Proof-of-Signature belonging to an
// agreement, marking it complete.
type ProofOfAgreementMsg struct {
	AgreementCID  CID
	SignatureCIDs []CID
	App           string
	Timestamp     Timestamp
	Metadata      string
}

// SignedProofOfAuthority is a ProofOfAuthorityMsg together with the
// signature over its EIP-712 digest and the CID it was stored under.
type SignedProofOfAuthority struct {
	Message   ProofOfAuthorityMsg
	Signature Bytes65Sig
	ProofCID  CID
}

// SignedProofOfSignature is the signed counterpart of ProofOfSignatureMsg.
type SignedProofOfSignature struct {
	Message   ProofOfSignatureMsg
	Signature Bytes65Sig
	ProofCID  CID
}

// SignedProofOfAgreement is the signed counterpart of ProofOfAgreementMsg.
// Its signature is stored but never recovered or verified: clients must
// not treat it as authenticating the agreement.
type SignedProofOfAgreement struct {
	Message   ProofOfAgreementMsg
	Signature Bytes65Sig
	ProofCID  CID
}
