// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package nftsale

import (
	"context"

	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-worldsale/action"
	"github.com/iotexproject/iotex-worldsale/action/protocol"
	"github.com/iotexproject/iotex-worldsale/pkg/log"
)

// SetOverlord replaces the overlord. Only governance may call it, and the previous overlord is overwritten
// unconditionally.
func (p *Protocol) SetOverlord(ctx context.Context, sm protocol.StateManager, newOverlord address.Address) ([]*action.Log, error) {
	if err := protocol.AssertGovernanceOrigin(ctx); err != nil {
		return nil, err
	}
	if newOverlord == nil {
		return nil, errors.Wrap(action.ErrInvalidAddress, "new overlord is nil")
	}
	var (
		old     accountRecord
		oldAddr address.Address
	)
	exist, err := getState(sm, []byte(_overlordKey), &old)
	if err != nil {
		return nil, err
	}
	if exist {
		if oldAddr, err = address.FromBytes(old.Addr); err != nil {
			return nil, errors.Wrap(err, "failed to decode the current overlord")
		}
	}
	if err := putState(sm, []byte(_overlordKey), &accountRecord{Addr: newOverlord.Bytes()}); err != nil {
		return nil, err
	}
	log.L().Info("Overlord changed.", zap.String("overlord", newOverlord.String()))
	return p.logs(OverlordChanged{OldOverlord: oldAddr, NewOverlord: newOverlord}), nil
}

// Overlord returns the current overlord
func (p *Protocol) Overlord(_ context.Context, sr protocol.StateReader) (address.Address, error) {
	return loadOverlord(sr)
}

func loadOverlord(sr protocol.StateReader) (address.Address, error) {
	var acct accountRecord
	exist, err := getState(sr, []byte(_overlordKey), &acct)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, ErrOverlordNotSet
	}
	return address.FromBytes(acct.Addr)
}

// assertOverlord returns the overlord if it is the caller in ctx
func (p *Protocol) assertOverlord(ctx context.Context, sr protocol.StateReader) (address.Address, error) {
	caller := protocol.MustGetActionCtx(ctx).Caller
	overlord, err := loadOverlord(sr)
	switch errors.Cause(err) {
	case nil:
	case ErrOverlordNotSet:
		return nil, ErrRequireOverlordAccount
	default:
		return nil, err
	}
	if caller == nil || caller.String() != overlord.String() {
		return nil, ErrRequireOverlordAccount
	}
	return overlord, nil
}
