// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package uniques

import (
	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"

	"github.com/iotexproject/iotex-worldsale/action"
	"github.com/iotexproject/iotex-worldsale/action/protocol"
	"github.com/iotexproject/iotex-worldsale/pkg/util/byteutil"
	"github.com/iotexproject/iotex-worldsale/state"
)

const (
	_collectionIndexKey = "nextCollection"
	_collectionPrefix   = byte('c')
	_itemPrefix         = byte('i')
	_attributePrefix    = byte('a')
	_ownedPrefix        = byte('o')
)

type (
	// Collection is a class of non-fungible items sharing an issuer
	Collection struct {
		Issuer    []byte
		NextNftID uint32
		Items     uint32
	}

	// Item is a single non-fungible item
	Item struct {
		Owner  []byte
		Frozen bool
	}

	counter struct {
		Value uint32
	}

	attribute struct {
		Value string
	}
)

// IssuerAddress returns the issuer of the collection
func (c *Collection) IssuerAddress() (address.Address, error) {
	return address.FromBytes(c.Issuer)
}

// OwnerAddress returns the owner of the item
func (i *Item) OwnerAddress() (address.Address, error) {
	return address.FromBytes(i.Owner)
}

func collectionKey(cid action.CollectionID) []byte {
	return byteutil.JoinKey([]byte{_collectionPrefix}, byteutil.Uint32ToBytesBigEndian(uint32(cid)))
}

func itemKey(cid action.CollectionID, nid action.NftID) []byte {
	return byteutil.JoinKey(
		[]byte{_itemPrefix},
		byteutil.Uint32ToBytesBigEndian(uint32(cid)),
		byteutil.Uint32ToBytesBigEndian(uint32(nid)),
	)
}

func attributeKey(cid action.CollectionID, nid action.NftID, name string) []byte {
	return byteutil.JoinKey(
		[]byte{_attributePrefix},
		byteutil.Uint32ToBytesBigEndian(uint32(cid)),
		byteutil.Uint32ToBytesBigEndian(uint32(nid)),
		[]byte(name),
	)
}

func ownedKey(cid action.CollectionID, owner address.Address) []byte {
	return byteutil.JoinKey(
		[]byte{_ownedPrefix},
		byteutil.Uint32ToBytesBigEndian(uint32(cid)),
		owner.Bytes(),
	)
}

// getState reads a state, reporting whether it exists
func getState(sr protocol.StateReader, key []byte, s interface{}) (bool, error) {
	_, err := sr.State(s, protocol.NamespaceOption(UniquesNamespace), protocol.KeyOption(key))
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
	_, err := sm.PutState(s, protocol.NamespaceOption(UniquesNamespace), protocol.KeyOption(key))
	return err
}
