// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package nftsale

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iotexproject/iotex-worldsale/action"
	"github.com/iotexproject/iotex-worldsale/action/protocol"
	"github.com/iotexproject/iotex-worldsale/action/protocol/account"
	"github.com/iotexproject/iotex-worldsale/action/protocol/uniques"
	"github.com/iotexproject/iotex-worldsale/blockchain/genesis"
	"github.com/iotexproject/iotex-worldsale/test/identityset"
	"github.com/iotexproject/iotex-worldsale/test/mock/mock_nftsale"
	"github.com/iotexproject/iotex-worldsale/testutil"
)

// collections created by saleFixture.open
const (
	_spiritCID = action.CollectionID(0)
	_shellCID  = action.CollectionID(1)
)

type saleFixture struct {
	sm       protocol.StateManager
	p        *Protocol
	acct     *account.Protocol
	uq       *uniques.Protocol
	blk      context.Context
	overlord address.Address
}

func newSaleFixture(t *testing.T, g genesis.Genesis) *saleFixture {
	ctrl := gomock.NewController(t)
	f := &saleFixture{
		sm:       testutil.NewMockStateManager(ctrl),
		acct:     account.NewProtocol(g.Account),
		uq:       uniques.NewProtocol(),
		blk:      testutil.BlockContext(1, time.Unix(100, 0)),
		overlord: identityset.Address(0),
	}
	f.p = NewProtocol(g.NftSale, f.acct, f.uq)
	require.NoError(t, f.acct.CreateGenesisStates(f.blk, f.sm))
	require.NoError(t, f.p.CreateGenesisStates(f.blk, f.sm))
	return f
}

func (f *saleFixture) signed(caller address.Address) context.Context {
	return testutil.SignedContext(f.blk, caller)
}

// open appoints the overlord, binds both collections, stocks the inventory and turns the phases on
func (f *saleFixture) open(t *testing.T, statuses ...action.StatusType) {
	require := require.New(t)
	_, err := f.p.SetOverlord(testutil.GovernanceContext(f.blk, f.overlord), f.sm, f.overlord)
	require.NoError(err)
	ctx := f.signed(f.overlord)
	for _, cid := range []action.CollectionID{_spiritCID, _shellCID} {
		created, err := f.uq.CreateCollection(ctx, f.sm, f.overlord)
		require.NoError(err)
		require.Equal(cid, created)
	}
	_, err = f.p.SetSpiritCollectionID(ctx, f.sm, _spiritCID)
	require.NoError(err)
	_, err = f.p.SetOriginOfShellCollectionID(ctx, f.sm, _shellCID)
	require.NoError(err)
	_, err = f.p.InitOriginOfShellInventory(ctx, f.sm)
	require.NoError(err)
	for _, st := range statuses {
		f.setStatus(t, st, true)
	}
}

func (f *saleFixture) setStatus(t *testing.T, st action.StatusType, on bool) {
	_, err := f.p.SetStatusType(f.signed(f.overlord), f.sm, st, on)
	require.NoError(t, err)
}

// claim gives each account a Spirit, the ClaimSpirits phase must be on
func (f *saleFixture) claim(t *testing.T, accounts ...address.Address) {
	for _, addr := range accounts {
		_, err := f.p.ClaimSpirit(f.signed(addr), f.sm)
		require.NoError(t, err)
	}
}

func (f *saleFixture) balance(t *testing.T, addr address.Address) string {
	balance, err := f.acct.Balance(f.blk, f.sm, addr)
	require.NoError(t, err)
	return balance.String()
}

func (f *saleFixture) reserved(t *testing.T, addr address.Address) string {
	reserved, err := f.acct.ReservedBalance(f.blk, f.sm, addr)
	require.NoError(t, err)
	return reserved.String()
}

func (f *saleFixture) owned(t *testing.T, cid action.CollectionID, addr address.Address) uint32 {
	cnt, err := f.uq.OwnedCount(f.blk, f.sm, cid, addr)
	require.NoError(t, err)
	return cnt
}

func TestCreateGenesisStates(t *testing.T) {
	require := require.New(t)
	g := genesis.TestDefault()
	zeroDay := uint64(50)
	spirit, shell := action.CollectionID(3), action.CollectionID(4)
	g.OverlordAddrStr = identityset.Address(0).String()
	g.ZeroDay = &zeroDay
	g.Era = 2
	g.StatusMap = map[string]bool{"ClaimSpirits": true, "lastDayOfSale": false}
	g.SpiritCollectionID = &spirit
	g.OriginOfShellCollectionID = &shell
	g.IsOriginOfShellsInventorySet = true
	f := newSaleFixture(t, g)
	ctx := f.blk

	require.Equal(protocolID, f.p.Name())
	require.Equal(ProtocolAddr().String(), f.p.addr.String())
	overlord, err := f.p.Overlord(ctx, f.sm)
	require.NoError(err)
	require.Equal(g.OverlordAddrStr, overlord.String())
	day, ok, err := f.p.ZeroDay(ctx, f.sm)
	require.NoError(err)
	require.True(ok)
	require.Equal(zeroDay, day)
	era, err := f.p.Era(ctx, f.sm)
	require.NoError(err)
	require.Equal(uint64(2), era)
	on, err := f.p.Status(ctx, f.sm, action.ClaimSpirits)
	require.NoError(err)
	require.True(on)
	on, err = f.p.Status(ctx, f.sm, action.PreorderOriginOfShells)
	require.NoError(err)
	require.False(on)
	cid, ok, err := f.p.SpiritCollectionID(ctx, f.sm)
	require.NoError(err)
	require.True(ok)
	require.Equal(spirit, cid)
	cid, ok, err = f.p.OriginOfShellCollectionID(ctx, f.sm)
	require.NoError(err)
	require.True(ok)
	require.Equal(shell, cid)
	set, err := f.p.IsOriginOfShellsInventorySet(ctx, f.sm)
	require.NoError(err)
	require.True(set)
	info, err := f.p.OriginOfShellInventory(ctx, f.sm, action.Magic, action.XGene)
	require.NoError(err)
	require.Equal(InitialInventory(action.Magic), *info)

	// an empty genesis leaves the sale unconfigured
	f = newSaleFixture(t, genesis.TestDefault())
	_, err = f.p.Overlord(f.blk, f.sm)
	require.Equal(ErrOverlordNotSet, errors.Cause(err))
	_, ok, err = f.p.ZeroDay(f.blk, f.sm)
	require.NoError(err)
	require.False(ok)
	_, ok, err = f.p.SpiritCollectionID(f.blk, f.sm)
	require.NoError(err)
	require.False(ok)
	set, err = f.p.IsOriginOfShellsInventorySet(f.blk, f.sm)
	require.NoError(err)
	require.False(set)
}

func TestHandle(t *testing.T) {
	require := require.New(t)
	f := newSaleFixture(t, genesis.TestDefault())
	f.open(t, action.ClaimSpirits)
	alice := identityset.Address(1)

	success := promtestutil.ToFloat64(_actionMtc.WithLabelValues("ClaimSpirit", "success"))
	failure := promtestutil.ToFloat64(_actionMtc.WithLabelValues("ClaimSpirit", "failure"))
	receipt, err := f.p.Handle(f.signed(alice), action.NewClaimSpirit(), f.sm)
	require.NoError(err)
	require.Equal(action.SuccessReceiptStatus, receipt.Status)
	require.Equal(ProtocolAddr().String(), receipt.ContractAddress)
	require.Len(receipt.Logs(), 1)
	evt, ok := receipt.Logs()[0].Event.(SpiritClaimed)
	require.True(ok)
	require.Equal(alice.String(), evt.Owner.String())
	require.Equal(_spiritCID, evt.CollectionID)
	require.Equal(action.NftID(0), evt.NftID)
	require.Equal(success+1, promtestutil.ToFloat64(_actionMtc.WithLabelValues("ClaimSpirit", "success")))

	_, err = f.p.Handle(f.signed(alice), action.NewClaimSpirit(), f.sm)
	require.Equal(ErrSpiritAlreadyClaimed, errors.Cause(err))
	require.Equal(failure+1, promtestutil.ToFloat64(_actionMtc.WithLabelValues("ClaimSpirit", "failure")))

	// actions of other protocols are not handled
	receipt, err = f.p.Handle(f.signed(alice), action.NewTransfer(f.overlord.String(), big.NewInt(1)), f.sm)
	require.NoError(err)
	require.Nil(receipt)

	gov := testutil.GovernanceContext(f.blk, alice)
	_, err = f.p.Handle(gov, action.NewSetOverlord("io1invalid"), f.sm)
	require.Equal(action.ErrInvalidAddress, errors.Cause(err))
	receipt, err = f.p.Handle(gov, action.NewSetOverlord(alice.String()), f.sm)
	require.NoError(err)
	require.Equal("OverlordChanged", receipt.Logs()[0].Event.Topic())

	// both lottery outcomes dispatch to the preorder queue
	_, err = f.p.Handle(f.signed(alice), action.NewMintChosenPreorders([]action.PreorderID{7}), f.sm)
	require.Equal(ErrNoAvailablePreorderID, errors.Cause(err))
	_, err = f.p.Handle(f.signed(alice), action.NewRefundNotChosenPreorders([]action.PreorderID{7}), f.sm)
	require.Equal(ErrNoAvailablePreorderID, errors.Cause(err))
	_, err = f.p.Handle(f.signed(f.overlord), action.NewRefundNotChosenPreorders([]action.PreorderID{7}), f.sm)
	require.Equal(ErrRequireOverlordAccount, errors.Cause(err))
}

func TestHandleRevertsPaymentOnFailedMint(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	sm := testutil.NewMockStateManager(ctrl)
	g := genesis.TestDefault()
	acct := account.NewProtocol(g.Account)
	assets := mock_nftsale.NewMockAssetRegistry(ctrl)
	p := NewProtocol(g.NftSale, acct, assets)
	blk := testutil.BlockContext(1, time.Unix(100, 0))
	overlord, alice := identityset.Address(0), identityset.Address(1)
	require.NoError(acct.CreateGenesisStates(blk, sm))

	_, err := p.SetOverlord(testutil.GovernanceContext(blk, overlord), sm, overlord)
	require.NoError(err)
	ctx := testutil.SignedContext(blk, overlord)
	_, err = p.SetSpiritCollectionID(ctx, sm, _spiritCID)
	require.NoError(err)
	_, err = p.SetOriginOfShellCollectionID(ctx, sm, _shellCID)
	require.NoError(err)
	_, err = p.InitOriginOfShellInventory(ctx, sm)
	require.NoError(err)
	_, err = p.SetStatusType(ctx, sm, action.PurchaseRareOriginOfShells, true)
	require.NoError(err)

	errMint := errors.New("registry unavailable")
	assets.EXPECT().OwnedCount(gomock.Any(), gomock.Any(), _spiritCID, gomock.Any()).Return(uint32(1), nil).Times(1)
	assets.EXPECT().OwnedCount(gomock.Any(), gomock.Any(), _shellCID, gomock.Any()).Return(uint32(0), nil).Times(1)
	assets.EXPECT().NextNftID(gomock.Any(), gomock.Any(), _shellCID).Return(action.NftID(0), nil).Times(1)
	assets.EXPECT().Mint(gomock.Any(), gomock.Any(), gomock.Any(), _shellCID, action.NftID(0), gomock.Any()).DoAndReturn(
		func(ctx context.Context, sm protocol.StateManager, _ address.Address, _ action.CollectionID, _ action.NftID, _ address.Address) error {
			// the price is paid before minting
			balance, err := acct.Balance(ctx, sm, alice)
			require.NoError(err)
			require.Equal("99000000", balance.String())
			return errMint
		}).Times(1)

	snapshot := sm.Snapshot()
	_, err = p.Handle(testutil.SignedContext(blk, alice), action.NewBuyRareOriginOfShell(action.Legendary, action.Cyborg, action.Web3Monk), sm)
	require.Equal(errMint, errors.Cause(err))
	require.NoError(sm.Revert(snapshot))

	for _, addr := range []address.Address{alice, overlord} {
		balance, err := acct.Balance(blk, sm, addr)
		require.NoError(err)
		require.Equal("100000000", balance.String())
	}
	info, err := p.OriginOfShellInventory(blk, sm, action.Legendary, action.Cyborg)
	require.NoError(err)
	require.Equal(uint32(1), info.RaceForSaleCount)
	require.Zero(info.RaceCount)
}

func TestPaymentFailureStopsMint(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	sm := testutil.NewMockStateManager(ctrl)
	g := genesis.TestDefault()
	balances := mock_nftsale.NewMockBalances(ctrl)
	uq := uniques.NewProtocol()
	p := NewProtocol(g.NftSale, balances, uq)
	blk := testutil.BlockContext(1, time.Unix(100, 0))
	overlord, alice := identityset.Address(0), identityset.Address(1)

	_, err := p.SetOverlord(testutil.GovernanceContext(blk, overlord), sm, overlord)
	require.NoError(err)
	ctx := testutil.SignedContext(blk, overlord)
	for range []action.CollectionID{_spiritCID, _shellCID} {
		_, err = uq.CreateCollection(ctx, sm, overlord)
		require.NoError(err)
	}
	_, err = p.SetSpiritCollectionID(ctx, sm, _spiritCID)
	require.NoError(err)
	_, err = p.SetOriginOfShellCollectionID(ctx, sm, _shellCID)
	require.NoError(err)
	_, err = p.InitOriginOfShellInventory(ctx, sm)
	require.NoError(err)
	for _, st := range []action.StatusType{action.ClaimSpirits, action.PurchaseRareOriginOfShells} {
		_, err = p.SetStatusType(ctx, sm, st, true)
		require.NoError(err)
	}

	balances.EXPECT().CanReserve(gomock.Any(), gomock.Any(), gomock.Any(), big.NewInt(10)).Return(true, nil).Times(1)
	_, err = p.ClaimSpirit(testutil.SignedContext(blk, alice), sm)
	require.NoError(err)

	balances.EXPECT().Transfer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), big.NewInt(100000), true).
		Return(account.ErrKeepAlive).Times(1)
	_, err = p.BuyRareOriginOfShell(testutil.SignedContext(blk, alice), sm, action.Magic, action.Pandroid, action.HackerWizard)
	require.Equal(account.ErrKeepAlive, errors.Cause(err))
	cnt, err := uq.OwnedCount(blk, sm, _shellCID, alice)
	require.NoError(err)
	require.Zero(cnt)
	info, err := p.OriginOfShellInventory(blk, sm, action.Magic, action.Pandroid)
	require.NoError(err)
	require.Equal(uint32(10), info.RaceForSaleCount)
}
