// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package nftsale

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-worldsale/action"
	"github.com/iotexproject/iotex-worldsale/action/protocol"
	"github.com/iotexproject/iotex-worldsale/pkg/log"
)

// SetStatusType turns one sale phase on or off
func (p *Protocol) SetStatusType(
	ctx context.Context,
	sm protocol.StateManager,
	statusType action.StatusType,
	status bool,
) ([]*action.Log, error) {
	if _, err := p.assertOverlord(ctx, sm); err != nil {
		return nil, err
	}
	if !statusType.IsValid() {
		return nil, errors.Wrapf(action.ErrInvalidEnum, "status type %d", statusType)
	}
	if err := putState(sm, statusKey(statusType), &flag{Value: status}); err != nil {
		return nil, err
	}
	log.L().Info("Sale status changed.", zap.Stringer("statusType", statusType), zap.Bool("status", status))
	return p.logs(StatusChanged{StatusType: statusType, Status: status}), nil
}

// Status returns a sale phase switch, false if it was never set
func (p *Protocol) Status(_ context.Context, sr protocol.StateReader, statusType action.StatusType) (bool, error) {
	return loadFlag(sr, statusKey(statusType))
}

// requireStatus fails with errOff unless the switch is on
func requireStatus(sr protocol.StateReader, statusType action.StatusType, errOff error) error {
	on, err := loadFlag(sr, statusKey(statusType))
	if err != nil {
		return err
	}
	if !on {
		return errOff
	}
	return nil
}
