// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package action

import (
	"github.com/pkg/errors"
)

type (
	// SetOverlord replaces the overlord, it is only accepted from the governance origin
	SetOverlord struct {
		newOverlord string
	}

	// InitializeWorldClock starts the era clock at the current block time
	InitializeWorldClock struct{}

	// SetStatusType turns a sale phase on or off
	SetStatusType struct {
		status     bool
		statusType StatusType
	}

	// InitOriginOfShellInventory populates the inventory with its starting quantities
	InitOriginOfShellInventory struct{}

	// UpdateOriginOfShellInventory tops up the inventory of one Origin of Shell type
	UpdateOriginOfShellInventory struct {
		originOfShellType OriginOfShellType
		forSaleCount      uint32
		giveawayCount     uint32
	}

	// SetSpiritCollectionID binds the Spirit collection
	SetSpiritCollectionID struct {
		collectionID CollectionID
	}

	// SetOriginOfShellCollectionID binds the Origin of Shell collection
	SetOriginOfShellCollectionID struct {
		collectionID CollectionID
	}

	// ClaimSpirit claims a Spirit for an account holding the minimum balance
	ClaimSpirit struct{}

	// RedeemSpirit claims a Spirit with an overlord signature
	RedeemSpirit struct {
		signature []byte
	}

	// BuyRareOriginOfShell buys a Legendary or Magic Origin of Shell
	BuyRareOriginOfShell struct {
		originOfShellType OriginOfShellType
		race              RaceType
		career            CareerType
	}

	// BuyPrimeOriginOfShell buys a Prime Origin of Shell with a whitelist signature
	BuyPrimeOriginOfShell struct {
		signature []byte
		race      RaceType
		career    CareerType
	}

	// PreorderOriginOfShell queues a Prime Origin of Shell preorder and escrows its price
	PreorderOriginOfShell struct {
		race   RaceType
		career CareerType
	}

	// MintChosenPreorders mints the preorders drawn in the lottery
	MintChosenPreorders struct {
		preorders []PreorderID
	}

	// RefundNotChosenPreorders refunds the preorders not drawn in the lottery
	RefundNotChosenPreorders struct {
		preorders []PreorderID
	}
)

// NewSetOverlord returns a SetOverlord instance
func NewSetOverlord(newOverlord string) *SetOverlord {
	return &SetOverlord{newOverlord: newOverlord}
}

// NewOverlord returns the new overlord address
func (act *SetOverlord) NewOverlord() string { return act.newOverlord }

// SanityCheck validates the variables in the action
func (act *SetOverlord) SanityCheck() error { return validateAddress(act.newOverlord) }

func (act *SetOverlord) encode() ([]byte, error) { return encodeFields(act.newOverlord) }

// NewInitializeWorldClock returns an InitializeWorldClock instance
func NewInitializeWorldClock() *InitializeWorldClock { return &InitializeWorldClock{} }

// SanityCheck validates the variables in the action
func (act *InitializeWorldClock) SanityCheck() error { return nil }

func (act *InitializeWorldClock) encode() ([]byte, error) { return encodeFields() }

// NewSetStatusType returns a SetStatusType instance
func NewSetStatusType(status bool, statusType StatusType) *SetStatusType {
	return &SetStatusType{
		status:     status,
		statusType: statusType,
	}
}

// Status returns the new value of the switch
func (act *SetStatusType) Status() bool { return act.status }

// StatusType returns the switch to change
func (act *SetStatusType) StatusType() StatusType { return act.statusType }

// SanityCheck validates the variables in the action
func (act *SetStatusType) SanityCheck() error {
	if !act.statusType.IsValid() {
		return errors.Wrapf(ErrInvalidEnum, "status type %d", act.statusType)
	}
	return nil
}

func (act *SetStatusType) encode() ([]byte, error) {
	return encodeFields(act.status, uint8(act.statusType))
}

// NewInitOriginOfShellInventory returns an InitOriginOfShellInventory instance
func NewInitOriginOfShellInventory() *InitOriginOfShellInventory { return &InitOriginOfShellInventory{} }

// SanityCheck validates the variables in the action
func (act *InitOriginOfShellInventory) SanityCheck() error { return nil }

func (act *InitOriginOfShellInventory) encode() ([]byte, error) { return encodeFields() }

// NewUpdateOriginOfShellInventory returns an UpdateOriginOfShellInventory instance
func NewUpdateOriginOfShellInventory(
	originOfShellType OriginOfShellType,
	forSaleCount uint32,
	giveawayCount uint32,
) *UpdateOriginOfShellInventory {
	return &UpdateOriginOfShellInventory{
		originOfShellType: originOfShellType,
		forSaleCount:      forSaleCount,
		giveawayCount:     giveawayCount,
	}
}

// OriginOfShellType returns the type to top up
func (act *UpdateOriginOfShellInventory) OriginOfShellType() OriginOfShellType {
	return act.originOfShellType
}

// ForSaleCount returns the quantity added to the for-sale count of every race
func (act *UpdateOriginOfShellInventory) ForSaleCount() uint32 { return act.forSaleCount }

// GiveawayCount returns the quantity added to the giveaway count of every race
func (act *UpdateOriginOfShellInventory) GiveawayCount() uint32 { return act.giveawayCount }

// SanityCheck validates the variables in the action
func (act *UpdateOriginOfShellInventory) SanityCheck() error {
	if !act.originOfShellType.IsValid() {
		return errors.Wrapf(ErrInvalidEnum, "origin of shell type %d", act.originOfShellType)
	}
	return nil
}

func (act *UpdateOriginOfShellInventory) encode() ([]byte, error) {
	return encodeFields(uint8(act.originOfShellType), act.forSaleCount, act.giveawayCount)
}

// NewSetSpiritCollectionID returns a SetSpiritCollectionID instance
func NewSetSpiritCollectionID(collectionID CollectionID) *SetSpiritCollectionID {
	return &SetSpiritCollectionID{collectionID: collectionID}
}

// CollectionID returns the collection id
func (act *SetSpiritCollectionID) CollectionID() CollectionID { return act.collectionID }

// SanityCheck validates the variables in the action
func (act *SetSpiritCollectionID) SanityCheck() error { return nil }

func (act *SetSpiritCollectionID) encode() ([]byte, error) {
	return encodeFields(uint32(act.collectionID))
}

// NewSetOriginOfShellCollectionID returns a SetOriginOfShellCollectionID instance
func NewSetOriginOfShellCollectionID(collectionID CollectionID) *SetOriginOfShellCollectionID {
	return &SetOriginOfShellCollectionID{collectionID: collectionID}
}

// CollectionID returns the collection id
func (act *SetOriginOfShellCollectionID) CollectionID() CollectionID { return act.collectionID }

// SanityCheck validates the variables in the action
func (act *SetOriginOfShellCollectionID) SanityCheck() error { return nil }

func (act *SetOriginOfShellCollectionID) encode() ([]byte, error) {
	return encodeFields(uint32(act.collectionID))
}

// NewClaimSpirit returns a ClaimSpirit instance
func NewClaimSpirit() *ClaimSpirit { return &ClaimSpirit{} }

// SanityCheck validates the variables in the action
func (act *ClaimSpirit) SanityCheck() error { return nil }

func (act *ClaimSpirit) encode() ([]byte, error) { return encodeFields() }

// NewRedeemSpirit returns a RedeemSpirit instance
func NewRedeemSpirit(signature []byte) *RedeemSpirit {
	return &RedeemSpirit{signature: signature}
}

// Signature returns the overlord signature
func (act *RedeemSpirit) Signature() []byte { return act.signature }

// SanityCheck validates the variables in the action
func (act *RedeemSpirit) SanityCheck() error { return nil }

func (act *RedeemSpirit) encode() ([]byte, error) { return encodeFields(act.signature) }

// NewBuyRareOriginOfShell returns a BuyRareOriginOfShell instance
func NewBuyRareOriginOfShell(
	originOfShellType OriginOfShellType,
	race RaceType,
	career CareerType,
) *BuyRareOriginOfShell {
	return &BuyRareOriginOfShell{
		originOfShellType: originOfShellType,
		race:              race,
		career:            career,
	}
}

// OriginOfShellType returns the type to buy
func (act *BuyRareOriginOfShell) OriginOfShellType() OriginOfShellType { return act.originOfShellType }

// Race returns the race
func (act *BuyRareOriginOfShell) Race() RaceType { return act.race }

// Career returns the career
func (act *BuyRareOriginOfShell) Career() CareerType { return act.career }

// SanityCheck validates the variables in the action
func (act *BuyRareOriginOfShell) SanityCheck() error {
	if !act.originOfShellType.IsValid() {
		return errors.Wrapf(ErrInvalidEnum, "origin of shell type %d", act.originOfShellType)
	}
	return checkRaceCareer(act.race, act.career)
}

func (act *BuyRareOriginOfShell) encode() ([]byte, error) {
	return encodeFields(uint8(act.originOfShellType), uint8(act.race), uint8(act.career))
}

// NewBuyPrimeOriginOfShell returns a BuyPrimeOriginOfShell instance
func NewBuyPrimeOriginOfShell(signature []byte, race RaceType, career CareerType) *BuyPrimeOriginOfShell {
	return &BuyPrimeOriginOfShell{
		signature: signature,
		race:      race,
		career:    career,
	}
}

// Signature returns the whitelist signature, it may be empty on the last day of sale
func (act *BuyPrimeOriginOfShell) Signature() []byte { return act.signature }

// Race returns the race
func (act *BuyPrimeOriginOfShell) Race() RaceType { return act.race }

// Career returns the career
func (act *BuyPrimeOriginOfShell) Career() CareerType { return act.career }

// SanityCheck validates the variables in the action
func (act *BuyPrimeOriginOfShell) SanityCheck() error { return checkRaceCareer(act.race, act.career) }

func (act *BuyPrimeOriginOfShell) encode() ([]byte, error) {
	return encodeFields(act.signature, uint8(act.race), uint8(act.career))
}

// NewPreorderOriginOfShell returns a PreorderOriginOfShell instance
func NewPreorderOriginOfShell(race RaceType, career CareerType) *PreorderOriginOfShell {
	return &PreorderOriginOfShell{
		race:   race,
		career: career,
	}
}

// Race returns the race
func (act *PreorderOriginOfShell) Race() RaceType { return act.race }

// Career returns the career
func (act *PreorderOriginOfShell) Career() CareerType { return act.career }

// SanityCheck validates the variables in the action
func (act *PreorderOriginOfShell) SanityCheck() error { return checkRaceCareer(act.race, act.career) }

func (act *PreorderOriginOfShell) encode() ([]byte, error) {
	return encodeFields(uint8(act.race), uint8(act.career))
}

// NewMintChosenPreorders returns a MintChosenPreorders instance
func NewMintChosenPreorders(preorders []PreorderID) *MintChosenPreorders {
	return &MintChosenPreorders{preorders: preorders}
}

// Preorders returns the preorder ids in processing order
func (act *MintChosenPreorders) Preorders() []PreorderID { return act.preorders }

// SanityCheck validates the variables in the action
func (act *MintChosenPreorders) SanityCheck() error { return checkPreorders(act.preorders) }

func (act *MintChosenPreorders) encode() ([]byte, error) {
	return encodeFields(preorderIDs(act.preorders))
}

// NewRefundNotChosenPreorders returns a RefundNotChosenPreorders instance
func NewRefundNotChosenPreorders(preorders []PreorderID) *RefundNotChosenPreorders {
	return &RefundNotChosenPreorders{preorders: preorders}
}

// Preorders returns the preorder ids in processing order
func (act *RefundNotChosenPreorders) Preorders() []PreorderID { return act.preorders }

// SanityCheck validates the variables in the action
func (act *RefundNotChosenPreorders) SanityCheck() error { return checkPreorders(act.preorders) }

func (act *RefundNotChosenPreorders) encode() ([]byte, error) {
	return encodeFields(preorderIDs(act.preorders))
}

func checkRaceCareer(race RaceType, career CareerType) error {
	if !race.IsValid() {
		return errors.Wrapf(ErrInvalidEnum, "race %d", race)
	}
	if !career.IsValid() {
		return errors.Wrapf(ErrInvalidEnum, "career %d", career)
	}
	return nil
}

func checkPreorders(ids []PreorderID) error {
	if len(ids) == 0 {
		return errors.New("empty preorder list")
	}
	return nil
}

func preorderIDs(ids []PreorderID) []uint32 {
	raw := make([]uint32, len(ids))
	for i, id := range ids {
		raw[i] = uint32(id)
	}
	return raw
}
