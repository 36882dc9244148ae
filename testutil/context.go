// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package testutil

import (
	"context"
	"time"

	"github.com/iotexproject/go-pkgs/hash"
	"github.com/iotexproject/iotex-address/address"

	"github.com/iotexproject/iotex-worldsale/action"
	"github.com/iotexproject/iotex-worldsale/action/protocol"
)

// BlockContext returns a context carrying the block height and time
func BlockContext(height uint64, ts time.Time) context.Context {
	return protocol.WithBlockCtx(context.Background(), protocol.BlockCtx{
		BlockHeight:    height,
		BlockTimeStamp: ts,
	})
}

// SignedContext returns a context for an action signed by caller
func SignedContext(ctx context.Context, caller address.Address) context.Context {
	return protocol.WithActionCtx(ctx, protocol.ActionCtx{
		Caller:     caller,
		ActionHash: hash.Hash256b(caller.Bytes()),
		Origin:     action.SignedOrigin,
	})
}

// GovernanceContext returns a context for an action dispatched by governance
func GovernanceContext(ctx context.Context, caller address.Address) context.Context {
	return protocol.WithActionCtx(ctx, protocol.ActionCtx{
		Caller:     caller,
		ActionHash: hash.Hash256b(caller.Bytes()),
		Origin:     action.GovernanceOrigin,
	})
}
