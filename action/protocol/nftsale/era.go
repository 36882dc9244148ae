// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package nftsale

import (
	"context"

	"go.uber.org/zap"

	"github.com/iotexproject/iotex-worldsale/action"
	"github.com/iotexproject/iotex-worldsale/action/protocol"
	"github.com/iotexproject/iotex-worldsale/pkg/log"
)

// InitializeWorldClock sets the zero day to the current block time
func (p *Protocol) InitializeWorldClock(ctx context.Context, sm protocol.StateManager) ([]*action.Log, error) {
	if _, err := p.assertOverlord(ctx, sm); err != nil {
		return nil, err
	}
	wc, err := loadWorldClock(sm)
	if err != nil {
		return nil, err
	}
	if wc.HasZeroDay {
		return nil, ErrWorldClockAlreadySet
	}
	now := protocol.MustGetBlockCtx(ctx).UnixSeconds()
	wc.ZeroDay = now
	wc.HasZeroDay = true
	if err := putState(sm, []byte(_worldClockKey), wc); err != nil {
		return nil, err
	}
	log.L().Info("World clock started.", zap.Uint64("zeroDay", now))
	return p.logs(WorldClockStarted{StartTime: now}), nil
}

// Finalize advances the era once per block. It is a no-op before the zero day, and the era never goes backwards.
func (p *Protocol) Finalize(ctx context.Context, sm protocol.StateManager) ([]*action.Log, error) {
	wc, err := loadWorldClock(sm)
	if err != nil {
		return nil, err
	}
	now := protocol.MustGetBlockCtx(ctx).UnixSeconds()
	if !wc.HasZeroDay || now < wc.ZeroDay || p.cfg.SecondsPerEra == 0 {
		return nil, nil
	}
	era := (now - wc.ZeroDay) / p.cfg.SecondsPerEra
	if era <= wc.Era {
		return nil, nil
	}
	wc.Era = era
	if err := putState(sm, []byte(_worldClockKey), wc); err != nil {
		return nil, err
	}
	log.L().Debug("New era.", zap.Uint64("era", era), zap.Uint64("time", now))
	return p.logs(NewEra{Time: now, Era: era}), nil
}

// ZeroDay returns the world clock start in unix seconds, and false if the clock has not started
func (p *Protocol) ZeroDay(_ context.Context, sr protocol.StateReader) (uint64, bool, error) {
	wc, err := loadWorldClock(sr)
	if err != nil {
		return 0, false, err
	}
	return wc.ZeroDay, wc.HasZeroDay, nil
}

// Era returns the current era
func (p *Protocol) Era(_ context.Context, sr protocol.StateReader) (uint64, error) {
	wc, err := loadWorldClock(sr)
	if err != nil {
		return 0, err
	}
	return wc.Era, nil
}
