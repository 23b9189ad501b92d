package model

// Signer names one party entitled to sign an agreement under a
// Proof-of-Authority, together with arbitrary caller-supplied metadata.
type Signer struct {
	Addr     Address
	Metadata string
}
