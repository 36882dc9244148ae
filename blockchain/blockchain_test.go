// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package blockchain

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/facebookgo/clock"
	"github.com/stretchr/testify/require"

	"github.com/iotexproject/iotex-worldsale/action"
	"github.com/iotexproject/iotex-worldsale/action/protocol"
	"github.com/iotexproject/iotex-worldsale/action/protocol/account"
	"github.com/iotexproject/iotex-worldsale/blockchain/block"
	"github.com/iotexproject/iotex-worldsale/blockchain/genesis"
	"github.com/iotexproject/iotex-worldsale/db"
	"github.com/iotexproject/iotex-worldsale/state/factory"
	"github.com/iotexproject/iotex-worldsale/test/identityset"
)

type blockRecorder struct {
	blks []*block.Block
}

func (r *blockRecorder) HandleBlock(blk *block.Block) error {
	r.blks = append(r.blks, blk)
	return nil
}

func TestMintBlock(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	g := genesis.TestDefault()
	ap := account.NewProtocol(g.Account)
	reg := protocol.NewRegistry()
	require.NoError(reg.Register(ap.Name(), ap))
	sf, err := factory.NewFactory(db.NewMemKVStore(), factory.RegistryOption(reg))
	require.NoError(err)

	clk := clock.NewMock()
	clk.Add(time.Hour)
	bc, err := NewBlockchain(sf, ClockOption(clk))
	require.NoError(err)
	rec := &blockRecorder{}
	require.NoError(bc.AddSubscriber(rec))
	require.Error(bc.AddSubscriber(nil))
	require.NoError(bc.Start(ctx))
	defer func() {
		require.NoError(bc.Stop(ctx))
	}()

	height, err := bc.TipHeight()
	require.NoError(err)
	require.Zero(height)
	genesisTip, err := bc.TipHash()
	require.NoError(err)

	blk, err := bc.MintBlock(ctx, []*action.Envelope{
		action.NewEnvelope(identityset.Address(0), 1, action.NewTransfer(identityset.Address(1).String(), big.NewInt(5))),
	})
	require.NoError(err)
	require.Equal(uint64(1), blk.Height())
	require.Equal(clk.Now(), blk.Timestamp())
	require.Equal(genesisTip, blk.PrevHash())
	require.Len(blk.Receipts, 1)
	require.Equal(action.SuccessReceiptStatus, blk.Receipts[0].Status)

	balance, err := ap.Balance(ctx, bc.Factory(), identityset.Address(1))
	require.NoError(err)
	require.Equal(big.NewInt(100000005), balance)

	// empty blocks still move the chain forward
	clk.Add(10 * time.Second)
	next, err := bc.MintBlock(ctx, nil)
	require.NoError(err)
	require.Equal(uint64(2), next.Height())
	require.Equal(blk.HashHeader(), next.PrevHash())
	require.Equal(clk.Now(), next.Timestamp())
	tip, err := bc.TipHash()
	require.NoError(err)
	require.Equal(next.HashHeader(), tip)

	require.Equal([]*block.Block{blk, next}, rec.blks)

	// a nil envelope rejects the whole block
	_, err = bc.MintBlock(ctx, []*action.Envelope{nil})
	require.Error(err)
	height, err = bc.TipHeight()
	require.NoError(err)
	require.Equal(uint64(2), height)
}

func TestNewBlockchain(t *testing.T) {
	_, err := NewBlockchain(nil)
	require.Error(t, err)
	sf, err := factory.NewFactory(db.NewMemKVStore())
	require.NoError(t, err)
	_, err = NewBlockchain(sf, ClockOption(nil))
	require.Error(t, err)
}
