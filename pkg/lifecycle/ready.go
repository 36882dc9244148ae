// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package lifecycle

import (
	"sync/atomic"

	"github.com/pkg/errors"
)

const (
	_notReady int32 = iota
	_ready
)

var (
	// ErrWrongState indicates the service is turned on or off twice
	ErrWrongState = errors.New("service is in wrong state")
	// ErrNotReady indicates a request reached a service that is not started
	ErrNotReady = errors.New("service is not ready")
)

// Readiness is a thread-safe struct to indicate a service's status
type Readiness struct {
	ready atomic.Int32
}

// TurnOn sets the service to ready (can accept service request)
func (r *Readiness) TurnOn() error {
	if r.ready.CompareAndSwap(_notReady, _ready) {
		return nil
	}
	return ErrWrongState
}

// TurnOff sets the service to not ready (initial state)
func (r *Readiness) TurnOff() error {
	if r.ready.CompareAndSwap(_ready, _notReady) {
		return nil
	}
	return ErrWrongState
}

// IsReady returns whether the service is ready (can accept service request)
func (r *Readiness) IsReady() bool {
	return r.ready.Load() == _ready
}

// MustBeReady returns ErrNotReady unless the service is turned on
func (r *Readiness) MustBeReady() error {
	if !r.IsReady() {
		return ErrNotReady
	}
	return nil
}
