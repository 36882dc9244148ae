// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package protocol

import (
	"context"
	"testing"
	"time"

	"github.com/iotexproject/go-pkgs/hash"
	"github.com/stretchr/testify/require"

	"github.com/iotexproject/iotex-worldsale/action"
	"github.com/iotexproject/iotex-worldsale/test/identityset"
)

func TestBlockCtx(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	_, ok := GetBlockCtx(ctx)
	require.False(ok)
	require.Panics(func() { MustGetBlockCtx(ctx) })

	blk := BlockCtx{BlockHeight: 7, BlockTimeStamp: time.Unix(1650000000, 0)}
	ctx = WithBlockCtx(ctx, blk)
	got, ok := GetBlockCtx(ctx)
	require.True(ok)
	require.Equal(blk, got)
	require.Equal(uint64(1650000000), got.UnixSeconds())
	require.Zero(BlockCtx{BlockTimeStamp: time.Unix(-5, 0)}.UnixSeconds())
}

func TestActionCtx(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	require.Panics(func() { MustGetActionCtx(ctx) })

	ac := ActionCtx{
		Caller:     identityset.Address(1),
		ActionHash: hash.Hash256b([]byte("act")),
		Origin:     action.SignedOrigin,
	}
	ctx = WithActionCtx(ctx, ac)
	require.Equal(ac, MustGetActionCtx(ctx))
	require.Equal(ErrRequireGovernanceOrigin, AssertGovernanceOrigin(ctx))

	ac.Origin = action.GovernanceOrigin
	require.NoError(AssertGovernanceOrigin(WithActionCtx(ctx, ac)))
}

func TestNewReceipt(t *testing.T) {
	require := require.New(t)
	ctx := WithBlockCtx(context.Background(), BlockCtx{BlockHeight: 3})
	h := hash.Hash256b([]byte("act"))
	ctx = WithActionCtx(ctx, ActionCtx{Caller: identityset.Address(0), ActionHash: h})

	addr := Address("nftsale").String()
	r := NewReceipt(ctx, action.SuccessReceiptStatus, addr, []*action.Log{nil})
	require.Equal(uint64(3), r.BlockHeight)
	require.Equal(h, r.ActionHash)
	require.Empty(r.Logs())
	require.NotEqual(addr, Address("account").String())
}
