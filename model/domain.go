package model

// Domain is the EIP-712 domain separator input. It is fixed at process
// start and never mutated.
type Domain struct {
	Name              string
	Version           string
	ChainID           uint64
	VerifyingContract Address
}

// FixedDomain is the single domain this registry signs and recovers
// against. A different chainId or verifyingContract produces a different
// domain separator and therefore a digest no signature made against this
// domain will recover against.
var FixedDomain = Domain{
	Name:              "daosign",
	Version:           "0.1.0",
	ChainID:           0,
	VerifyingContract: Address{},
}
