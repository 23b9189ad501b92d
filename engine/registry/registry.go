// Package registry is the registry's public API: three store* entry
// points and three get* entry points wrapping the hasher, recoverer,
// validator and store. Every store* call is atomic — a failure at any step
// (recovery, validation, persistence) leaves state exactly as it was
// before the call, under single-writer semantics.
package registry

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	recoverer "github.com/daosign/daosign-go/crypto/recover"
	"github.com/daosign/daosign-go/crypto/typedhash"
	"github.com/daosign/daosign-go/model"
	"github.com/daosign/daosign-go/module/events/pubsub"
	"github.com/daosign/daosign-go/module/metrics"
	"github.com/daosign/daosign-go/module/validator"
	"github.com/daosign/daosign-go/storage"
)

// Registry is the concrete, non-polymorphic implementation: one type,
// validation and persistence as free functions over the injected Store.
type Registry struct {
	store   storage.Store
	events  *pubsub.Distributor
	metrics *metrics.Metrics
	log     zerolog.Logger
}

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithEvents attaches an event distributor; without it, events are simply
// not published.
func WithEvents(d *pubsub.Distributor) Option {
	return func(r *Registry) { r.events = d }
}

// WithMetrics attaches a metrics sink; without it, metrics are not
// recorded.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Registry) { r.metrics = m }
}

// WithLogger overrides the default logger.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Registry) { r.log = l }
}

// New builds a Registry backed by store.
func New(store storage.Store, opts ...Option) *Registry {
	r := &Registry{
		store: store,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) recordReject(kind, reason string, requestID string) error {
	if r.metrics != nil {
		r.metrics.StoreRejected(kind, reason)
	}
	r.log.Warn().Str("request", requestID).Str("kind", kind).Str("reason", reason).Msg("rejected proof")
	return errors.New(reason)
}

// StoreProofOfAuthority recovers the signer from digest(message), requires
// it to equal message.From, validates the structural rules, then persists
// the record and emits NewProofOfAuthority.
func (r *Registry) StoreProofOfAuthority(signed model.SignedProofOfAuthority) error {
	requestID := uuid.NewString()
	kind := "authority"

	if err := r.recoverAndCheck(kind, requestID, typedhash.AuthorityMessage{Msg: signed.Message}, signed.Signature, signed.Message.From); err != nil {
		return err
	}

	if err := validator.ProofOfAuthority(signed.ProofCID, signed.Message); err != nil {
		return r.recordReject(kind, err.Error(), requestID)
	}

	if err := r.store.StoreAuthority(signed.ProofCID, signed); err != nil {
		return r.recordReject(kind, err.Error(), requestID)
	}

	if r.metrics != nil {
		r.metrics.StoreAccepted(kind)
	}
	r.log.Debug().Str("request", requestID).Str("proofCID", string(signed.ProofCID)).Msg("stored proof of authority")
	if r.events != nil {
		r.events.PublishProofOfAuthority(&signed)
	}
	return nil
}

// StoreProofOfSignature recovers the signer from digest(message), requires
// it to equal message.Signer, validates, then persists and emits
// NewProofOfSignature.
func (r *Registry) StoreProofOfSignature(signed model.SignedProofOfSignature) error {
	requestID := uuid.NewString()
	kind := "signature"

	if err := r.recoverAndCheck(kind, requestID, typedhash.SignatureMessage{Msg: signed.Message}, signed.Signature, signed.Message.Signer); err != nil {
		return err
	}

	if err := validator.ProofOfSignature(signed.ProofCID, signed.Message, r.store); err != nil {
		return r.recordReject(kind, err.Error(), requestID)
	}

	if err := r.store.StoreSignature(signed.ProofCID, signed); err != nil {
		return r.recordReject(kind, err.Error(), requestID)
	}

	if r.metrics != nil {
		r.metrics.StoreAccepted(kind)
	}
	r.log.Debug().Str("request", requestID).Str("proofCID", string(signed.ProofCID)).Msg("stored proof of signature")
	if r.events != nil {
		r.events.PublishProofOfSignature(&signed)
	}
	return nil
}

// StoreProofOfAgreement validates and persists the record. It does not
// recover or verify the signature field — agreement records are intended
// to be system-generated; clients must not assume this signature
// authenticates the agreement.
func (r *Registry) StoreProofOfAgreement(signed model.SignedProofOfAgreement) error {
	requestID := uuid.NewString()
	kind := "agreement"

	if err := validator.ProofOfAgreement(signed.ProofCID, signed.Message, r.store, r.store); err != nil {
		return r.recordReject(kind, err.Error(), requestID)
	}

	if err := r.store.StoreAgreement(signed.ProofCID, signed); err != nil {
		return r.recordReject(kind, err.Error(), requestID)
	}

	if r.metrics != nil {
		r.metrics.StoreAccepted(kind)
	}
	r.log.Debug().Str("request", requestID).Str("proofCID", string(signed.ProofCID)).Msg("stored proof of agreement")
	if r.events != nil {
		r.events.PublishProofOfAgreement(&signed)
	}
	return nil
}

// recoverAndCheck computes digest(msg), recovers the signer from sig and
// requires it to equal expected. It returns "Invalid signature" via
// recordReject on any mismatch or malformed signature.
func (r *Registry) recoverAndCheck(kind, requestID string, msg typedhash.Message, sig model.Bytes65Sig, expected model.Address) error {
	digest, err := typedhash.Digest(msg)
	if err != nil {
		return r.recordReject(kind, err.Error(), requestID)
	}

	start := time.Now()
	recovered, err := recoverer.Recover(digest, sig)
	if r.metrics != nil {
		r.metrics.ObserveRecoverSeconds(time.Since(start).Seconds())
	}
	if err != nil {
		return r.recordReject(kind, "Invalid signature", requestID)
	}
	if recovered != expected {
		return r.recordReject(kind, "Invalid signature", requestID)
	}
	return nil
}

// GetProofOfAuthority returns the enriched read response for cid, or a
// zero-valued response if cid is unknown; callers detect "not found" via
// PrimaryType == "".
func (r *Registry) GetProofOfAuthority(cid model.CID) model.AuthorityView {
	rec, ok := r.store.Authority(cid)
	if !ok {
		return model.AuthorityView{}
	}
	return model.NewAuthorityView(rec)
}

// GetProofOfSignature returns the enriched read response for cid, or a
// zero-valued response if cid is unknown.
func (r *Registry) GetProofOfSignature(cid model.CID) model.SignatureView {
	rec, ok := r.store.Signature(cid)
	if !ok {
		return model.SignatureView{}
	}
	return model.NewSignatureView(rec)
}

// GetProofOfAgreement returns the enriched read response for cid, or a
// zero-valued response if cid is unknown.
func (r *Registry) GetProofOfAgreement(cid model.CID) model.AgreementView {
	rec, ok := r.store.Agreement(cid)
	if !ok {
		return model.AgreementView{}
	}
	return model.NewAgreementView(rec)
}
