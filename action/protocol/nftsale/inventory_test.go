// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package nftsale

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/iotexproject/iotex-worldsale/action"
	"github.com/iotexproject/iotex-worldsale/blockchain/genesis"
	"github.com/iotexproject/iotex-worldsale/state"
	"github.com/iotexproject/iotex-worldsale/test/identityset"
	"github.com/iotexproject/iotex-worldsale/testutil"
)

func TestInitOriginOfShellInventory(t *testing.T) {
	require := require.New(t)
	f := newSaleFixture(t, genesis.TestDefault())
	_, err := f.p.SetOverlord(testutil.GovernanceContext(f.blk, f.overlord), f.sm, f.overlord)
	require.NoError(err)

	_, err = f.p.OriginOfShellInventory(f.blk, f.sm, action.Prime, action.Cyborg)
	require.Equal(state.ErrStateNotExist, errors.Cause(err))
	_, err = f.p.UpdateOriginOfShellInventory(f.signed(f.overlord), f.sm, action.Prime, 1, 1)
	require.Equal(ErrOriginOfShellInventoryCorrupted, errors.Cause(err))

	_, err = f.p.InitOriginOfShellInventory(f.signed(identityset.Address(1)), f.sm)
	require.Equal(ErrRequireOverlordAccount, errors.Cause(err))
	logs, err := f.p.InitOriginOfShellInventory(f.signed(f.overlord), f.sm)
	require.NoError(err)
	require.Equal(OriginOfShellsInventoryWasSet{Status: true}, logs[0].Event)
	_, err = f.p.InitOriginOfShellInventory(f.signed(f.overlord), f.sm)
	require.Equal(ErrOriginOfShellInventoryAlreadySet, errors.Cause(err))

	for _, c := range []struct {
		t    action.OriginOfShellType
		info NftSaleInfo
	}{
		{action.Legendary, NftSaleInfo{RaceForSaleCount: 1, RaceReservedCount: 1}},
		{action.Magic, NftSaleInfo{RaceForSaleCount: 10, RaceReservedCount: 10}},
		{action.Prime, NftSaleInfo{RaceForSaleCount: 1250}},
	} {
		for _, race := range action.RaceTypes() {
			info, err := f.p.OriginOfShellInventory(f.blk, f.sm, c.t, race)
			require.NoError(err)
			require.Equal(c.info, *info)
		}
	}
}

func TestUpdateOriginOfShellInventory(t *testing.T) {
	require := require.New(t)
	f := newSaleFixture(t, genesis.TestDefault())
	f.open(t)
	ctx := f.signed(f.overlord)

	_, err := f.p.UpdateOriginOfShellInventory(f.signed(identityset.Address(1)), f.sm, action.Prime, 1, 1)
	require.Equal(ErrRequireOverlordAccount, errors.Cause(err))
	for _, typ := range []action.OriginOfShellType{action.Legendary, action.Magic} {
		_, err = f.p.UpdateOriginOfShellInventory(ctx, f.sm, typ, 1, 1)
		require.Equal(ErrWrongOriginOfShellType, errors.Cause(err))
	}

	logs, err := f.p.UpdateOriginOfShellInventory(ctx, f.sm, action.Prime, 10, 2)
	require.NoError(err)
	require.Equal(OriginOfShellInventoryUpdated{OriginOfShellType: action.Prime}, logs[0].Event)
	for _, race := range action.RaceTypes() {
		info, err := f.p.OriginOfShellInventory(f.blk, f.sm, action.Prime, race)
		require.NoError(err)
		require.Equal(NftSaleInfo{RaceForSaleCount: 1260, RaceGiveawayCount: 2}, *info)
	}

	// top-ups saturate
	_, err = f.p.UpdateOriginOfShellInventory(ctx, f.sm, action.Prime, math.MaxUint32, 0)
	require.NoError(err)
	info, err := f.p.OriginOfShellInventory(f.blk, f.sm, action.Prime, action.Pandroid)
	require.NoError(err)
	require.Equal(uint32(math.MaxUint32), info.RaceForSaleCount)
	require.Equal(uint32(2), info.RaceGiveawayCount)
}

func TestAllocate(t *testing.T) {
	require := require.New(t)
	f := newSaleFixture(t, genesis.TestDefault())
	f.open(t)

	require.NoError(hasRaceTypeLeft(f.sm, action.Legendary, action.XGene))
	require.NoError(allocate(f.sm, action.Legendary, action.XGene))
	info, err := f.p.OriginOfShellInventory(f.blk, f.sm, action.Legendary, action.XGene)
	require.NoError(err)
	require.Equal(NftSaleInfo{RaceCount: 1, RaceReservedCount: 1}, *info)

	// the for-sale count never wraps around
	require.Equal(ErrRaceMintMaxReached, errors.Cause(hasRaceTypeLeft(f.sm, action.Legendary, action.XGene)))
	require.Equal(ErrRaceMintMaxReached, errors.Cause(allocate(f.sm, action.Legendary, action.XGene)))
	info, err = f.p.OriginOfShellInventory(f.blk, f.sm, action.Legendary, action.XGene)
	require.NoError(err)
	require.Equal(NftSaleInfo{RaceCount: 1, RaceReservedCount: 1}, *info)

	require.NoError(putState(f.sm, inventoryKey(action.Magic, action.Cyborg), &NftSaleInfo{
		RaceCount:        math.MaxUint32,
		RaceForSaleCount: 1,
	}))
	require.Equal(ErrCounterOverflow, errors.Cause(allocate(f.sm, action.Magic, action.Cyborg)))

	require.NoError(delState(f.sm, inventoryKey(action.Prime, action.Cyborg)))
	require.Equal(ErrOriginOfShellInventoryCorrupted, errors.Cause(hasRaceTypeLeft(f.sm, action.Prime, action.Cyborg)))
}

func TestCareerTypeCount(t *testing.T) {
	require := require.New(t)
	f := newSaleFixture(t, genesis.TestDefault())

	for i := 0; i < 3; i++ {
		require.NoError(incrementCareer(f.sm, action.RoboWarrior))
	}
	cnt, err := f.p.CareerTypeCount(f.blk, f.sm, action.RoboWarrior)
	require.NoError(err)
	require.Equal(uint32(3), cnt)
	cnt, err = f.p.CareerTypeCount(f.blk, f.sm, action.Web3Monk)
	require.NoError(err)
	require.Zero(cnt)

	require.NoError(putState(f.sm, careerKey(action.Web3Monk), &counter{Value: math.MaxUint32}))
	require.NoError(incrementCareer(f.sm, action.Web3Monk))
	cnt, err = f.p.CareerTypeCount(f.blk, f.sm, action.Web3Monk)
	require.NoError(err)
	require.Equal(uint32(math.MaxUint32), cnt)
}
