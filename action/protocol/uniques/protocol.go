// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

// Package uniques implements a registry of non-fungible item collections. Items are minted by the collection issuer,
// carry string attributes, and become immutable and non-transferable once frozen.
package uniques

import (
	"context"
	"math"

	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-worldsale/action"
	"github.com/iotexproject/iotex-worldsale/action/protocol"
	"github.com/iotexproject/iotex-worldsale/pkg/log"
)

const (
	// protocolID is the protocol ID
	protocolID = "uniques"
	// UniquesNamespace is the namespace to store collections and items
	UniquesNamespace = "Uniques"
)

var (
	// ErrCollectionNotExist indicates the collection does not exist
	ErrCollectionNotExist = errors.New("collection does not exist")
	// ErrItemNotExist indicates the item does not exist
	ErrItemNotExist = errors.New("item does not exist")
	// ErrItemAlreadyExist indicates the item id is taken
	ErrItemAlreadyExist = errors.New("item already exists")
	// ErrAttributeNotExist indicates the attribute is not set
	ErrAttributeNotExist = errors.New("attribute does not exist")
	// ErrNoPermission indicates the caller is not allowed to operate the collection or item
	ErrNoPermission = errors.New("no permission")
	// ErrFrozen indicates the item is frozen
	ErrFrozen = errors.New("item is frozen")
	// ErrIDOverflow indicates no more ids can be allocated
	ErrIDOverflow = errors.New("id overflow")
)

type (
	// CollectionCreated is emitted when a collection is created
	CollectionCreated struct {
		CollectionID action.CollectionID
		Issuer       address.Address
	}

	// Transferred is emitted when an item changes owner
	Transferred struct {
		CollectionID action.CollectionID
		NftID        action.NftID
		From         address.Address
		To           address.Address
	}
)

// Topic returns the event name
func (CollectionCreated) Topic() string { return "CollectionCreated" }

// Topic returns the event name
func (Transferred) Topic() string { return "Transferred" }

// Protocol defines the protocol of the item registry
type Protocol struct {
	addr address.Address
}

// NewProtocol instantiates the protocol of item registry
func NewProtocol() *Protocol {
	return &Protocol{addr: protocol.Address(protocolID)}
}

// Name returns the name of protocol
func (p *Protocol) Name() string {
	return protocolID
}

// Handle handles the registry actions
func (p *Protocol) Handle(ctx context.Context, act action.Action, sm protocol.StateManager) (*action.Receipt, error) {
	actionCtx := protocol.MustGetActionCtx(ctx)
	var evt action.Event
	switch act := act.(type) {
	case *action.CreateCollection:
		cid, err := p.CreateCollection(ctx, sm, actionCtx.Caller)
		if err != nil {
			return nil, err
		}
		evt = CollectionCreated{CollectionID: cid, Issuer: actionCtx.Caller}
	case *action.TransferNft:
		recipient, err := address.FromString(act.Recipient())
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode recipient address %s", act.Recipient())
		}
		if err := p.Transfer(ctx, sm, actionCtx.Caller, act.CollectionID(), act.NftID(), recipient); err != nil {
			return nil, err
		}
		evt = Transferred{
			CollectionID: act.CollectionID(),
			NftID:        act.NftID(),
			From:         actionCtx.Caller,
			To:           recipient,
		}
	default:
		return nil, nil
	}
	return protocol.NewReceipt(ctx, action.SuccessReceiptStatus, p.addr.String(), []*action.Log{
		protocol.NewLog(p.addr.String(), evt),
	}), nil
}

// CreateCollection creates a collection issued by issuer
func (p *Protocol) CreateCollection(_ context.Context, sm protocol.StateManager, issuer address.Address) (action.CollectionID, error) {
	var next counter
	if _, err := getState(sm, []byte(_collectionIndexKey), &next); err != nil {
		return 0, err
	}
	if next.Value == math.MaxUint32 {
		return 0, errors.Wrap(ErrIDOverflow, "collection")
	}
	cid := action.CollectionID(next.Value)
	if err := putState(sm, collectionKey(cid), &Collection{Issuer: issuer.Bytes()}); err != nil {
		return 0, err
	}
	next.Value++
	if err := putState(sm, []byte(_collectionIndexKey), &next); err != nil {
		return 0, err
	}
	log.L().Debug("Created collection.", zap.Uint32("collection", uint32(cid)), zap.String("issuer", issuer.String()))
	return cid, nil
}

// Collection returns a collection
func (p *Protocol) Collection(_ context.Context, sr protocol.StateReader, cid action.CollectionID) (*Collection, error) {
	return loadCollection(sr, cid)
}

// NextNftID returns the next unused item id of a collection
func (p *Protocol) NextNftID(_ context.Context, sr protocol.StateReader, cid action.CollectionID) (action.NftID, error) {
	c, err := loadCollection(sr, cid)
	if err != nil {
		return 0, err
	}
	if c.NextNftID == math.MaxUint32 {
		return 0, errors.Wrapf(ErrIDOverflow, "collection %d", cid)
	}
	return action.NftID(c.NextNftID), nil
}

// Mint issues a new item to owner, authority must be the collection issuer
func (p *Protocol) Mint(
	_ context.Context,
	sm protocol.StateManager,
	authority address.Address,
	cid action.CollectionID,
	nid action.NftID,
	owner address.Address,
) error {
	c, err := loadCollection(sm, cid)
	if err != nil {
		return err
	}
	if err := assertIssuer(c, authority); err != nil {
		return err
	}
	exist, err := getState(sm, itemKey(cid, nid), &Item{})
	if err != nil {
		return err
	}
	if exist {
		return errors.Wrapf(ErrItemAlreadyExist, "collection %d item %d", cid, nid)
	}
	if uint32(nid) >= c.NextNftID {
		if nid == math.MaxUint32 {
			return errors.Wrapf(ErrIDOverflow, "collection %d", cid)
		}
		c.NextNftID = uint32(nid) + 1
	}
	c.Items++
	if err := putState(sm, collectionKey(cid), c); err != nil {
		return err
	}
	if err := putState(sm, itemKey(cid, nid), &Item{Owner: owner.Bytes()}); err != nil {
		return err
	}
	return p.addOwned(sm, cid, owner, 1)
}

// SetAttribute sets a string attribute of an item, authority must be the collection issuer
func (p *Protocol) SetAttribute(
	_ context.Context,
	sm protocol.StateManager,
	authority address.Address,
	cid action.CollectionID,
	nid action.NftID,
	name, value string,
) error {
	c, err := loadCollection(sm, cid)
	if err != nil {
		return err
	}
	if err := assertIssuer(c, authority); err != nil {
		return err
	}
	item, err := loadItem(sm, cid, nid)
	if err != nil {
		return err
	}
	if item.Frozen {
		return errors.Wrapf(ErrFrozen, "collection %d item %d", cid, nid)
	}
	return putState(sm, attributeKey(cid, nid, name), &attribute{Value: value})
}

// Attribute returns a string attribute of an item
func (p *Protocol) Attribute(_ context.Context, sr protocol.StateReader, cid action.CollectionID, nid action.NftID, name string) (string, error) {
	var attr attribute
	exist, err := getState(sr, attributeKey(cid, nid, name), &attr)
	if err != nil {
		return "", err
	}
	if !exist {
		return "", errors.Wrapf(ErrAttributeNotExist, "collection %d item %d attribute %s", cid, nid, name)
	}
	return attr.Value, nil
}

// Freeze makes an item immutable and non-transferable, authority must be the collection issuer
func (p *Protocol) Freeze(
	_ context.Context,
	sm protocol.StateManager,
	authority address.Address,
	cid action.CollectionID,
	nid action.NftID,
) error {
	c, err := loadCollection(sm, cid)
	if err != nil {
		return err
	}
	if err := assertIssuer(c, authority); err != nil {
		return err
	}
	item, err := loadItem(sm, cid, nid)
	if err != nil {
		return err
	}
	item.Frozen = true
	return putState(sm, itemKey(cid, nid), item)
}

// IsFrozen returns whether an item is frozen
func (p *Protocol) IsFrozen(_ context.Context, sr protocol.StateReader, cid action.CollectionID, nid action.NftID) (bool, error) {
	item, err := loadItem(sr, cid, nid)
	if err != nil {
		return false, err
	}
	return item.Frozen, nil
}

// Transfer moves an item from its owner to recipient
func (p *Protocol) Transfer(
	_ context.Context,
	sm protocol.StateManager,
	caller address.Address,
	cid action.CollectionID,
	nid action.NftID,
	recipient address.Address,
) error {
	item, err := loadItem(sm, cid, nid)
	if err != nil {
		return err
	}
	owner, err := item.OwnerAddress()
	if err != nil {
		return err
	}
	if owner.String() != caller.String() {
		return errors.Wrapf(ErrNoPermission, "%s does not own collection %d item %d", caller.String(), cid, nid)
	}
	if item.Frozen {
		return errors.Wrapf(ErrFrozen, "collection %d item %d", cid, nid)
	}
	item.Owner = recipient.Bytes()
	if err := putState(sm, itemKey(cid, nid), item); err != nil {
		return err
	}
	if err := p.addOwned(sm, cid, owner, -1); err != nil {
		return err
	}
	return p.addOwned(sm, cid, recipient, 1)
}

// Owner returns the owner of an item
func (p *Protocol) Owner(_ context.Context, sr protocol.StateReader, cid action.CollectionID, nid action.NftID) (address.Address, error) {
	item, err := loadItem(sr, cid, nid)
	if err != nil {
		return nil, err
	}
	return item.OwnerAddress()
}

// OwnedCount returns how many items of a collection an account owns
func (p *Protocol) OwnedCount(_ context.Context, sr protocol.StateReader, cid action.CollectionID, owner address.Address) (uint32, error) {
	var cnt counter
	if _, err := getState(sr, ownedKey(cid, owner), &cnt); err != nil {
		return 0, err
	}
	return cnt.Value, nil
}

func (p *Protocol) addOwned(sm protocol.StateManager, cid action.CollectionID, owner address.Address, delta int) error {
	var cnt counter
	if _, err := getState(sm, ownedKey(cid, owner), &cnt); err != nil {
		return err
	}
	switch {
	case delta > 0 && cnt.Value == math.MaxUint32:
		return errors.Wrapf(ErrIDOverflow, "owned count of %s", owner.String())
	case delta < 0 && cnt.Value == 0:
		return errors.Errorf("owned count of %s in collection %d is already zero", owner.String(), cid)
	case delta > 0:
		cnt.Value++
	default:
		cnt.Value--
	}
	return putState(sm, ownedKey(cid, owner), &cnt)
}

func loadCollection(sr protocol.StateReader, cid action.CollectionID) (*Collection, error) {
	var c Collection
	exist, err := getState(sr, collectionKey(cid), &c)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errors.Wrapf(ErrCollectionNotExist, "collection %d", cid)
	}
	return &c, nil
}

func loadItem(sr protocol.StateReader, cid action.CollectionID, nid action.NftID) (*Item, error) {
	var item Item
	exist, err := getState(sr, itemKey(cid, nid), &item)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errors.Wrapf(ErrItemNotExist, "collection %d item %d", cid, nid)
	}
	return &item, nil
}

func assertIssuer(c *Collection, authority address.Address) error {
	issuer, err := c.IssuerAddress()
	if err != nil {
		return err
	}
	if issuer.String() != authority.String() {
		return errors.Wrapf(ErrNoPermission, "%s is not the issuer", authority.String())
	}
	return nil
}
