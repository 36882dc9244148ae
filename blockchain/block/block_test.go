// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package block

import (
	"math/big"
	"testing"
	"time"

	"github.com/iotexproject/go-pkgs/hash"
	"github.com/stretchr/testify/require"

	"github.com/iotexproject/iotex-worldsale/action"
	"github.com/iotexproject/iotex-worldsale/test/identityset"
)

func TestBuilder(t *testing.T) {
	require := require.New(t)

	ts := time.Unix(1000, 0)
	tsf := action.NewEnvelope(identityset.Address(0), 1, action.NewTransfer(identityset.Address(1).String(), big.NewInt(5)))
	claim := action.NewEnvelope(identityset.Address(1), 1, action.NewClaimSpirit())
	prev := hash.Hash256b([]byte("prev"))

	blk, err := NewBuilder(3, ts, []*action.Envelope{tsf, claim}).SetPrevBlockHash(prev).Build()
	require.NoError(err)
	require.Equal(uint64(3), blk.Height())
	require.Equal(ts, blk.Timestamp())
	require.Equal(prev, blk.PrevHash())
	require.NotEqual(hash.ZeroHash256, blk.TxRoot())
	require.NotEqual(hash.ZeroHash256, blk.HashHeader())

	// action order is part of the root
	swapped, err := NewBuilder(3, ts, []*action.Envelope{claim, tsf}).SetPrevBlockHash(prev).Build()
	require.NoError(err)
	require.NotEqual(blk.TxRoot(), swapped.TxRoot())
	require.NotEqual(blk.HashHeader(), swapped.HashHeader())

	empty, err := NewBuilder(4, ts, nil).Build()
	require.NoError(err)
	require.Equal(hash.ZeroHash256, empty.TxRoot())
	require.Empty(empty.Events())

	_, err = NewBuilder(5, ts, []*action.Envelope{nil}).Build()
	require.Error(err)
}

func TestHashHeader(t *testing.T) {
	require := require.New(t)

	blk, err := NewBuilder(1, time.Unix(1000, 0), nil).Build()
	require.NoError(err)
	var h hash.Hash256
	require.NotPanics(func() { h = blk.HashHeader() })
	require.NotEqual(hash.ZeroHash256, h)
	require.Equal(h, blk.HashHeader())

	// the timestamp is part of the hash
	later, err := NewBuilder(1, time.Unix(1012, 0), nil).Build()
	require.NoError(err)
	require.NotEqual(h, later.HashHeader())
}
