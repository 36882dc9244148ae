// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package protocol

import (
	"context"

	"github.com/iotexproject/go-pkgs/hash"
	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-worldsale/action"
	"github.com/iotexproject/iotex-worldsale/pkg/log"
)

// ErrRequireGovernanceOrigin indicates the action is only accepted from the governance origin
var ErrRequireGovernanceOrigin = errors.New("require governance origin")

type (
	// Protocol defines the protocol interfaces atop the ledger
	Protocol interface {
		ActionHandler
		Name() string
	}

	// ActionHandler is the interface for the action handlers. For each incoming action, the assembled actions will be
	// called one by one to process it. ActionHandler implementation is supposed to parse the sub-type of the action to
	// decide if it wants to handle this action or not. A handler returning a nil receipt and nil error does not handle
	// the action.
	ActionHandler interface {
		Handle(context.Context, action.Action, StateManager) (*action.Receipt, error)
	}

	// GenesisStateCreator creates some genesis states
	GenesisStateCreator interface {
		CreateGenesisStates(context.Context, StateManager) error
	}

	// Finalizer is run once per block after all its actions were handled
	Finalizer interface {
		Finalize(context.Context, StateManager) ([]*action.Log, error)
	}
)

// Address derives the address of a protocol from its id
func Address(protocolID string) address.Address {
	h := hash.Hash160b([]byte(protocolID))
	addr, err := address.FromBytes(h[:])
	if err != nil {
		log.L().Panic("Error when constructing the address of protocol", zap.String("protocol", protocolID), zap.Error(err))
	}
	return addr
}

// AssertGovernanceOrigin fails unless the action in ctx was dispatched by governance
func AssertGovernanceOrigin(ctx context.Context) error {
	if MustGetActionCtx(ctx).Origin != action.GovernanceOrigin {
		return ErrRequireGovernanceOrigin
	}
	return nil
}

// NewReceipt creates a receipt for the action in ctx
func NewReceipt(ctx context.Context, status uint64, contractAddr string, logs []*action.Log) *action.Receipt {
	blkCtx := MustGetBlockCtx(ctx)
	actCtx := MustGetActionCtx(ctx)
	r := &action.Receipt{
		Status:          status,
		BlockHeight:     blkCtx.BlockHeight,
		ActionHash:      actCtx.ActionHash,
		ContractAddress: contractAddr,
	}
	return r.AddLogs(logs...)
}

// NewLog creates a log for an event of the protocol at contractAddr
func NewLog(contractAddr string, event action.Event) *action.Log {
	return &action.Log{
		Address: contractAddr,
		Event:   event,
	}
}
