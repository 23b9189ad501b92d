// Package pubsub implements an append-only event log as an in-process
// publisher/subscriber fan-out, grounded on
// consensus/hotstuff/notifications/pubsub/finalization_distributor.go.
// Events are published strictly after the triggering write has committed
// to storage, and a Distributor's consumers see them in that same order
// because Publish* holds the read lock for the whole fan-out.
package pubsub

import (
	"sync"

	"github.com/daosign/daosign-go/model"
)

// OnNewProofOfAuthority is called with the full stored record of a newly
// accepted Proof-of-Authority.
type OnNewProofOfAuthority = func(*model.SignedProofOfAuthority)

// OnNewProofOfSignature is called with the full stored record of a newly
// accepted Proof-of-Signature.
type OnNewProofOfSignature = func(*model.SignedProofOfSignature)

// OnNewProofOfAgreement is called with the full stored record of a newly
// accepted Proof-of-Agreement.
type OnNewProofOfAgreement = func(*model.SignedProofOfAgreement)

// Distributor fans New... events out to every subscribed consumer.
type Distributor struct {
	mu sync.RWMutex

	authorityConsumers []OnNewProofOfAuthority
	signatureConsumers []OnNewProofOfSignature
	agreementConsumers []OnNewProofOfAgreement
}

// New returns an empty Distributor.
func New() *Distributor {
	return &Distributor{}
}

// SubscribeProofOfAuthority registers consumer for NewProofOfAuthority events.
func (d *Distributor) SubscribeProofOfAuthority(consumer OnNewProofOfAuthority) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.authorityConsumers = append(d.authorityConsumers, consumer)
}

// SubscribeProofOfSignature registers consumer for NewProofOfSignature events.
func (d *Distributor) SubscribeProofOfSignature(consumer OnNewProofOfSignature) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.signatureConsumers = append(d.signatureConsumers, consumer)
}

// SubscribeProofOfAgreement registers consumer for NewProofOfAgreement events.
func (d *Distributor) SubscribeProofOfAgreement(consumer OnNewProofOfAgreement) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.agreementConsumers = append(d.agreementConsumers, consumer)
}

// PublishProofOfAuthority fans a NewProofOfAuthority event out to every
// subscriber, in subscription order.
func (d *Distributor) PublishProofOfAuthority(rec *model.SignedProofOfAuthority) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, consumer := range d.authorityConsumers {
		consumer(rec)
	}
}

// PublishProofOfSignature fans a NewProofOfSignature event out to every
// subscriber, in subscription order.
func (d *Distributor) PublishProofOfSignature(rec *model.SignedProofOfSignature) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, consumer := range d.signatureConsumers {
		consumer(rec)
	}
}

// PublishProofOfAgreement fans a NewProofOfAgreement event out to every
// subscriber, in subscription order.
func (d *Distributor) PublishProofOfAgreement(rec *model.SignedProofOfAgreement) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, consumer := range d.agreementConsumers {
		consumer(rec)
	}
}
