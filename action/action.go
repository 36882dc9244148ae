// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package action

import (
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/iotexproject/go-pkgs/hash"
	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
)

// vars
var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrInvalidAddress = errors.New("invalid address")
	ErrInvalidEnum    = errors.New("invalid enum value")
	ErrNilAction      = errors.New("nil action")
)

// Origin is the dispatch origin of an envelope
type Origin uint8

const (
	// SignedOrigin is an envelope submitted by a regular account
	SignedOrigin Origin = iota
	// GovernanceOrigin is an envelope passed by on-chain governance, it is the only origin allowed to replace the
	// overlord
	GovernanceOrigin
)

type (
	// Action is the action can be Executed in protocols. The method is added to avoid mistakenly used empty interface as action.
	Action interface {
		SanityCheck() error
	}

	// encoder is implemented by every action so that envelopes can be hashed
	encoder interface {
		encode() ([]byte, error)
	}

	// Envelope wraps an action with the caller who submitted it
	Envelope struct {
		caller address.Address
		nonce  uint64
		origin Origin
		action Action
	}

	envelopeCore struct {
		Caller  []byte
		Nonce   uint64
		Origin  uint8
		Type    string
		Payload []byte
	}
)

// NewEnvelope creates an envelope for a signed account
func NewEnvelope(caller address.Address, nonce uint64, act Action) *Envelope {
	return &Envelope{
		caller: caller,
		nonce:  nonce,
		origin: SignedOrigin,
		action: act,
	}
}

// NewGovernanceEnvelope creates an envelope dispatched by governance on behalf of caller
func NewGovernanceEnvelope(caller address.Address, nonce uint64, act Action) *Envelope {
	return &Envelope{
		caller: caller,
		nonce:  nonce,
		origin: GovernanceOrigin,
		action: act,
	}
}

// Caller returns the caller address
func (elp *Envelope) Caller() address.Address { return elp.caller }

// Nonce returns the nonce, it makes otherwise identical envelopes distinct
func (elp *Envelope) Nonce() uint64 { return elp.nonce }

// Origin returns the dispatch origin
func (elp *Envelope) Origin() Origin { return elp.origin }

// Action returns the action payload.
func (elp *Envelope) Action() Action { return elp.action }

// SanityCheck validates the envelope and its payload
func (elp *Envelope) SanityCheck() error {
	if elp.caller == nil {
		return errors.Wrap(ErrInvalidAddress, "caller is nil")
	}
	if elp.action == nil {
		return ErrNilAction
	}
	return elp.action.SanityCheck()
}

// Hash returns the hash of the envelope
func (elp *Envelope) Hash() (hash.Hash256, error) {
	if elp.caller == nil {
		return hash.ZeroHash256, errors.Wrap(ErrInvalidAddress, "caller is nil")
	}
	enc, ok := elp.action.(encoder)
	if !ok {
		return hash.ZeroHash256, errors.Errorf("action %T cannot be encoded", elp.action)
	}
	payload, err := enc.encode()
	if err != nil {
		return hash.ZeroHash256, errors.Wrap(err, "failed to encode action")
	}
	data, err := rlp.EncodeToBytes(&envelopeCore{
		Caller:  elp.caller.Bytes(),
		Nonce:   elp.nonce,
		Origin:  uint8(elp.origin),
		Type:    Name(elp.action),
		Payload: payload,
	})
	if err != nil {
		return hash.ZeroHash256, err
	}
	return hash.Hash256b(data), nil
}

func encodeFields(fields ...interface{}) ([]byte, error) {
	return rlp.EncodeToBytes(fields)
}

func validateAddress(addr string) error {
	if _, err := address.FromString(addr); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "%s: %v", addr, err)
	}
	return nil
}
