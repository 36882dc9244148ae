// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package nftsale

import (
	"context"
	"math/big"

	"github.com/iotexproject/iotex-address/address"

	"github.com/iotexproject/iotex-worldsale/action"
	"github.com/iotexproject/iotex-worldsale/action/protocol"
)

type (
	// Balances is the currency ledger the sale charges and escrows with
	Balances interface {
		CanReserve(context.Context, protocol.StateReader, address.Address, *big.Int) (bool, error)
		Reserve(context.Context, protocol.StateManager, address.Address, *big.Int) error
		Unreserve(context.Context, protocol.StateManager, address.Address, *big.Int) (*big.Int, error)
		Transfer(ctx context.Context, sm protocol.StateManager, from, to address.Address, amount *big.Int, keepAlive bool) error
	}

	// AssetRegistry is the nft registry the sale mints into
	AssetRegistry interface {
		NextNftID(context.Context, protocol.StateReader, action.CollectionID) (action.NftID, error)
		Mint(ctx context.Context, sm protocol.StateManager, authority address.Address, cid action.CollectionID, nid action.NftID, owner address.Address) error
		SetAttribute(ctx context.Context, sm protocol.StateManager, authority address.Address, cid action.CollectionID, nid action.NftID, name, value string) error
		Freeze(ctx context.Context, sm protocol.StateManager, authority address.Address, cid action.CollectionID, nid action.NftID) error
		OwnedCount(context.Context, protocol.StateReader, action.CollectionID, address.Address) (uint32, error)
	}
)
