package typedhash

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/daosign/daosign-go/model"
)

// SignerStructHash reduces a single Signer to its 32-byte struct hash.
func SignerStructHash(s model.Signer) common.Hash {
	return encodeStruct(signerTypeHash,
		encodeAddress(s.Addr),
		encodeString(s.Metadata),
	)
}

// signersArraySlot reduces signers to the 32-byte slot a dynamic array of
// Signer structs occupies in the enclosing ProofOfAuthority buffer.
func signersArraySlot(signers []model.Signer) common.Hash {
	hashes := make([]common.Hash, len(signers))
	for i, s := range signers {
		hashes[i] = SignerStructHash(s)
	}
	return encodeStructArray(hashes)
}

func authorityStructHash(m model.ProofOfAuthorityMsg) common.Hash {
	return encodeStruct(proofAuthorityTypeHash,
		encodeString(m.Name),
		encodeAddress(m.From),
		encodeString(string(m.AgreementCID)),
		signersArraySlot(m.Signers),
		encodeString(m.App),
		encodeUint64(uint64(m.Timestamp)),
		encodeString(m.Metadata),
	)
}

func signatureStructHash(m model.ProofOfSignatureMsg) common.Hash {
	return encodeStruct(proofSignatureTypeHash,
		encodeString(m.Name),
		encodeAddress(m.Signer),
		encodeString(string(m.AgreementCID)),
		encodeString(m.App),
		encodeUint64(uint64(m.Timestamp)),
		encodeString(m.Metadata),
	)
}

func agreementStructHash(m model.ProofOfAgreementMsg) common.Hash {
	sigCIDs := make([]string, len(m.SignatureCIDs))
	for i, c := range m.SignatureCIDs {
		sigCIDs[i] = string(c)
	}
	return encodeStruct(proofAgreementTypeHash,
		encodeString(string(m.AgreementCID)),
		encodeStringArray(sigCIDs),
		encodeString(m.App),
		encodeUint64(uint64(m.Timestamp)),
		encodeString(m.Metadata),
	)
}

// DomainSeparator reduces a Domain to its 32-byte separator.
func DomainSeparator(d model.Domain) common.Hash {
	return encodeStruct(eip712DomainTypeHash,
		encodeString(d.Name),
		encodeString(d.Version),
		encodeUint64(d.ChainID),
		encodeAddress(d.VerifyingContract),
	)
}

// cachedDomainSeparator is computed once for the fixed domain; the Domain
// is immutable for the process lifetime so the separator never changes.
var cachedDomainSeparator = DomainSeparator(model.FixedDomain)

// StructHash dispatches m to its struct hash, polymorphic over the three
// message variants.
func StructHash(m Message) (common.Hash, error) {
	switch v := m.(type) {
	case AuthorityMessage:
		return authorityStructHash(v.Msg), nil
	case SignatureMessage:
		return signatureStructHash(v.Msg), nil
	case AgreementMessage:
		return agreementStructHash(v.Msg), nil
	default:
		return common.Hash{}, fmt.Errorf("typedhash: unsupported message type %T", m)
	}
}

// Digest computes keccak256(0x19 0x01 || domainSeparator || structHash(m)),
// the value that is signed and later recovered against.
func Digest(m Message) (common.Hash, error) {
	sh, err := StructHash(m)
	if err != nil {
		return common.Hash{}, err
	}
	return digestFrom(sh), nil
}
