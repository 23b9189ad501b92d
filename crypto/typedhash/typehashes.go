// Package typedhash implements the EIP-712 structured-data hashing
// discipline this registry signs and recovers against: a fixed domain
// separator composed with a per-message struct hash into a single 32-byte
// digest, byte-for-byte compatible with an Ethereum wallet's
// signTypedData_v4.
package typedhash

import (
	"github.com/ethereum/go-ethereum/crypto"
)

// Type strings and their precomputed keccak256 hashes, fixed for the
// lifetime of the process. The field set matches DAOSignApp.sol rather
// than the older Proofs.sol type strings.
var (
	eip712DomainTypeString  = "EIP712Domain(string name,string version,uint256 chainId,address verifyingContract)"
	signerTypeString        = "Signer(address addr,string metadata)"
	proofAuthorityTypeString = "ProofOfAuthority(string name,address from,string agreementCID,Signer[] signers,string app,uint256 timestamp,string metadata)Signer(address addr,string metadata)"
	proofSignatureTypeString = "ProofOfSignature(string name,address signer,string agreementCID,string app,uint256 timestamp,string metadata)"
	proofAgreementTypeString = "ProofOfAgreement(string agreementCID,string[] signatureCIDs,string app,uint256 timestamp,string metadata)"

	eip712DomainTypeHash  = crypto.Keccak256Hash([]byte(eip712DomainTypeString))
	signerTypeHash        = crypto.Keccak256Hash([]byte(signerTypeString))
	proofAuthorityTypeHash = crypto.Keccak256Hash([]byte(proofAuthorityTypeString))
	proofSignatureTypeHash = crypto.Keccak256Hash([]byte(proofSignatureTypeString))
	proofAgreementTypeHash = crypto.Keccak256Hash([]byte(proofAgreementTypeString))
)
