// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package nftsale

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/iotexproject/iotex-worldsale/action"
	"github.com/iotexproject/iotex-worldsale/action/protocol"
	"github.com/iotexproject/iotex-worldsale/blockchain/genesis"
	"github.com/iotexproject/iotex-worldsale/test/identityset"
	"github.com/iotexproject/iotex-worldsale/testutil"
)

func TestSetOverlord(t *testing.T) {
	require := require.New(t)
	f := newSaleFixture(t, genesis.TestDefault())
	alice, bob := identityset.Address(1), identityset.Address(2)

	_, err := f.p.Overlord(f.blk, f.sm)
	require.Equal(ErrOverlordNotSet, errors.Cause(err))
	// no overlord means nobody passes the overlord check
	_, err = f.p.SetStatusType(f.signed(alice), f.sm, action.ClaimSpirits, true)
	require.Equal(ErrRequireOverlordAccount, errors.Cause(err))

	// a signed account cannot appoint itself, not even the overlord
	_, err = f.p.SetOverlord(f.signed(alice), f.sm, alice)
	require.Equal(protocol.ErrRequireGovernanceOrigin, errors.Cause(err))

	logs, err := f.p.SetOverlord(testutil.GovernanceContext(f.blk, bob), f.sm, alice)
	require.NoError(err)
	require.Len(logs, 1)
	evt := logs[0].Event.(OverlordChanged)
	require.Nil(evt.OldOverlord)
	require.Equal(alice.String(), evt.NewOverlord.String())
	_, err = f.p.SetOverlord(f.signed(alice), f.sm, bob)
	require.Equal(protocol.ErrRequireGovernanceOrigin, errors.Cause(err))

	logs, err = f.p.SetOverlord(testutil.GovernanceContext(f.blk, bob), f.sm, bob)
	require.NoError(err)
	evt = logs[0].Event.(OverlordChanged)
	require.Equal(alice.String(), evt.OldOverlord.String())
	require.Equal(bob.String(), evt.NewOverlord.String())
	overlord, err := f.p.Overlord(f.blk, f.sm)
	require.NoError(err)
	require.Equal(bob.String(), overlord.String())

	_, err = f.p.SetOverlord(testutil.GovernanceContext(f.blk, bob), f.sm, nil)
	require.Equal(action.ErrInvalidAddress, errors.Cause(err))
}

func TestSetStatusType(t *testing.T) {
	require := require.New(t)
	f := newSaleFixture(t, genesis.TestDefault())
	f.open(t)
	alice := identityset.Address(1)

	for _, st := range action.StatusTypes() {
		on, err := f.p.Status(f.blk, f.sm, st)
		require.NoError(err)
		require.False(on)
	}
	_, err := f.p.SetStatusType(f.signed(alice), f.sm, action.PreorderOriginOfShells, true)
	require.Equal(ErrRequireOverlordAccount, errors.Cause(err))
	_, err = f.p.SetStatusType(f.signed(f.overlord), f.sm, action.StatusType(9), true)
	require.Equal(action.ErrInvalidEnum, errors.Cause(err))

	for _, st := range action.StatusTypes() {
		logs, err := f.p.SetStatusType(f.signed(f.overlord), f.sm, st, true)
		require.NoError(err)
		require.Equal(StatusChanged{StatusType: st, Status: true}, logs[0].Event)
		on, err := f.p.Status(f.blk, f.sm, st)
		require.NoError(err)
		require.True(on)
	}
	logs, err := f.p.SetStatusType(f.signed(f.overlord), f.sm, action.LastDayOfSale, false)
	require.NoError(err)
	require.Equal(StatusChanged{StatusType: action.LastDayOfSale, Status: false}, logs[0].Event)
	on, err := f.p.Status(f.blk, f.sm, action.LastDayOfSale)
	require.NoError(err)
	require.False(on)
	on, err = f.p.Status(f.blk, f.sm, action.PreorderOriginOfShells)
	require.NoError(err)
	require.True(on)
}
