package typedhash

import "github.com/daosign/daosign-go/model"

// Message is the tagged variant over the three proof messages this package
// reduces to a struct hash (Signer and Domain are hashed by
// SignerStructHash and DomainSeparator instead). Collapsing the source's
// overloaded hash()/recover() methods into one dispatch keeps the EIP-712
// type-string table self-documenting: each case of StructHash's switch
// corresponds to exactly one of the proof type hashes declared in
// typehashes.go.
type Message interface {
	isMessage()
}

// AuthorityMessage wraps a ProofOfAuthorityMsg for hashing.
type AuthorityMessage struct{ Msg model.ProofOfAuthorityMsg }

// SignatureMessage wraps a ProofOfSignatureMsg for hashing.
type SignatureMessage struct{ Msg model.ProofOfSignatureMsg }

// AgreementMessage wraps a ProofOfAgreementMsg for hashing.
type AgreementMessage struct{ Msg model.ProofOfAgreementMsg }

func (AuthorityMessage) isMessage() {}
func (SignatureMessage) isMessage() {}
func (AgreementMessage) isMessage() {}
