// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package nftsale

import (
	"math/big"

	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"

	"github.com/iotexproject/iotex-worldsale/action"
	"github.com/iotexproject/iotex-worldsale/action/protocol"
	"github.com/iotexproject/iotex-worldsale/pkg/util/byteutil"
	"github.com/iotexproject/iotex-worldsale/state"
)

// NftSaleNamespace is the namespace to store the sale states
const NftSaleNamespace = "NftSale"

const (
	_worldClockKey              = "worldClock"
	_overlordKey                = "overlord"
	_spiritCollectionKey        = "spiritCollection"
	_originOfShellCollectionKey = "originOfShellCollection"
	_inventorySetKey            = "inventorySet"
	_preorderIndexKey           = "preorderIndex"

	_statusPrefix    = byte('s')
	_inventoryPrefix = byte('v')
	_careerPrefix    = byte('k')
	_preorderPrefix  = byte('p')
)

type (
	// NftSaleInfo is the stock of one Origin of Shell type and race
	NftSaleInfo struct {
		RaceCount         uint32
		RaceForSaleCount  uint32
		RaceGiveawayCount uint32
		RaceReservedCount uint32
	}

	// PreorderInfo is a pending preorder, Escrow is the amount reserved from the owner when it was placed
	PreorderInfo struct {
		Owner  []byte
		Race   action.RaceType
		Career action.CareerType
		Escrow *big.Int
	}

	worldClock struct {
		ZeroDay    uint64
		HasZeroDay bool
		Era        uint64
	}

	accountRecord struct {
		Addr []byte
	}

	flag struct {
		Value bool
	}

	counter struct {
		Value uint32
	}
)

// OwnerAddress returns the account that placed the preorder
func (p *PreorderInfo) OwnerAddress() (address.Address, error) {
	return address.FromBytes(p.Owner)
}

func statusKey(st action.StatusType) []byte {
	return []byte{_statusPrefix, byte(st)}
}

func inventoryKey(t action.OriginOfShellType, race action.RaceType) []byte {
	return []byte{_inventoryPrefix, byte(t), byte(race)}
}

func careerKey(career action.CareerType) []byte {
	return []byte{_careerPrefix, byte(career)}
}

func preorderKey(id action.PreorderID) []byte {
	return byteutil.JoinKey([]byte{_preorderPrefix}, byteutil.Uint32ToBytesBigEndian(uint32(id)))
}

// getState reads a state, reporting whether it exists
func getState(sr protocol.StateReader, key []byte, s interface{}) (bool, error) {
	_, err := sr.State(s, protocol.NamespaceOption(NftSaleNamespace), protocol.KeyOption(key))
	switch errors.Cause(err) {
	case nil:
		return true, nil
	case state.ErrStateNotExist:
		return false, nil
	default:
		return false, err
	}
}

func putState(sm protocol.StateManager, key []byte, s interface{}) error {
	_, err := sm.PutState(s, protocol.NamespaceOption(NftSaleNamespace), protocol.KeyOption(key))
	return err
}

func delState(sm protocol.StateManager, key []byte) error {
	_, err := sm.DelState(protocol.NamespaceOption(NftSaleNamespace), protocol.KeyOption(key))
	return err
}

func loadWorldClock(sr protocol.StateReader) (*worldClock, error) {
	var wc worldClock
	if _, err := getState(sr, []byte(_worldClockKey), &wc); err != nil {
		return nil, err
	}
	return &wc, nil
}

func loadFlag(sr protocol.StateReader, key []byte) (bool, error) {
	var f flag
	if _, err := getState(sr, key, &f); err != nil {
		return false, err
	}
	return f.Value, nil
}

func loadCollectionID(sr protocol.StateReader, key string) (action.CollectionID, bool, error) {
	var c counter
	exist, err := getState(sr, []byte(key), &c)
	if err != nil {
		return 0, false, err
	}
	return action.CollectionID(c.Value), exist, nil
}
