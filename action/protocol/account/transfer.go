// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package account

import (
	"context"
	"math/big"

	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"

	"github.com/iotexproject/iotex-worldsale/action"
	"github.com/iotexproject/iotex-worldsale/action/protocol"
)

// TransferEvent is emitted when balance moves between two accounts
type TransferEvent struct {
	From   address.Address
	To     address.Address
	Amount *big.Int
}

// Topic returns the event name
func (TransferEvent) Topic() string { return "Transfer" }

// handleTransfer handles a transfer, the sender always keeps the existential deposit
func (p *Protocol) handleTransfer(ctx context.Context, tsf *action.Transfer, sm protocol.StateManager) (*action.Receipt, error) {
	actionCtx := protocol.MustGetActionCtx(ctx)
	recipient, err := address.FromString(tsf.Recipient())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode recipient address %s", tsf.Recipient())
	}
	if err := p.Transfer(ctx, sm, actionCtx.Caller, recipient, tsf.Amount(), true); err != nil {
		return nil, err
	}
	return protocol.NewReceipt(ctx, action.SuccessReceiptStatus, p.addr.String(), []*action.Log{
		protocol.NewLog(p.addr.String(), TransferEvent{
			From:   actionCtx.Caller,
			To:     recipient,
			Amount: new(big.Int).Set(tsf.Amount()),
		}),
	}), nil
}
