// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package nftsale

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-worldsale/action"
	"github.com/iotexproject/iotex-worldsale/action/protocol"
	"github.com/iotexproject/iotex-worldsale/pkg/log"
	"github.com/iotexproject/iotex-worldsale/state"
)

// initial stock of every race of each Origin of Shell type
var _initialInventory = map[action.OriginOfShellType]NftSaleInfo{
	action.Legendary: {RaceForSaleCount: 1, RaceReservedCount: 1},
	action.Magic:     {RaceForSaleCount: 10, RaceReservedCount: 10},
	action.Prime:     {RaceForSaleCount: 1250},
}

// InitialInventory returns the stock every race of t starts with
func InitialInventory(t action.OriginOfShellType) NftSaleInfo {
	return _initialInventory[t]
}

// InitOriginOfShellInventory populates the inventory of every type and race, it can only run once
func (p *Protocol) InitOriginOfShellInventory(ctx context.Context, sm protocol.StateManager) ([]*action.Log, error) {
	if _, err := p.assertOverlord(ctx, sm); err != nil {
		return nil, err
	}
	set, err := loadFlag(sm, []byte(_inventorySetKey))
	if err != nil {
		return nil, err
	}
	if set {
		return nil, ErrOriginOfShellInventoryAlreadySet
	}
	if err := writeInitialInventory(sm); err != nil {
		return nil, err
	}
	log.L().Info("Origin of shell inventory initialized.")
	return p.logs(OriginOfShellsInventoryWasSet{Status: true}), nil
}

func writeInitialInventory(sm protocol.StateManager) error {
	for _, t := range action.OriginOfShellTypes() {
		info := _initialInventory[t]
		for _, race := range action.RaceTypes() {
			if err := putState(sm, inventoryKey(t, race), &info); err != nil {
				return err
			}
		}
	}
	return putState(sm, []byte(_inventorySetKey), &flag{Value: true})
}

// UpdateOriginOfShellInventory tops up the for-sale and giveaway counts of every race. Only Prime can be topped up,
// and the counts saturate at their maximum.
func (p *Protocol) UpdateOriginOfShellInventory(
	ctx context.Context,
	sm protocol.StateManager,
	t action.OriginOfShellType,
	forSaleCount uint32,
	giveawayCount uint32,
) ([]*action.Log, error) {
	if _, err := p.assertOverlord(ctx, sm); err != nil {
		return nil, err
	}
	if t != action.Prime {
		return nil, errors.Wrapf(ErrWrongOriginOfShellType, "cannot top up %s", t)
	}
	for _, race := range action.RaceTypes() {
		info, err := loadInventory(sm, t, race)
		if err != nil {
			return nil, err
		}
		info.RaceForSaleCount = saturatingAdd(info.RaceForSaleCount, forSaleCount)
		info.RaceGiveawayCount = saturatingAdd(info.RaceGiveawayCount, giveawayCount)
		if err := putState(sm, inventoryKey(t, race), info); err != nil {
			return nil, err
		}
	}
	log.L().Info("Origin of shell inventory updated.",
		zap.Stringer("type", t),
		zap.Uint32("forSale", forSaleCount),
		zap.Uint32("giveaway", giveawayCount))
	return p.logs(OriginOfShellInventoryUpdated{OriginOfShellType: t}), nil
}

// OriginOfShellInventory returns the stock of a type and race
func (p *Protocol) OriginOfShellInventory(
	_ context.Context,
	sr protocol.StateReader,
	t action.OriginOfShellType,
	race action.RaceType,
) (*NftSaleInfo, error) {
	var info NftSaleInfo
	exist, err := getState(sr, inventoryKey(t, race), &info)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errors.Wrapf(state.ErrStateNotExist, "inventory of %s %s", t, race)
	}
	return &info, nil
}

// IsOriginOfShellsInventorySet returns whether the inventory was initialized
func (p *Protocol) IsOriginOfShellsInventorySet(_ context.Context, sr protocol.StateReader) (bool, error) {
	return loadFlag(sr, []byte(_inventorySetKey))
}

// CareerTypeCount returns how many Origins of Shell of a career were minted
func (p *Protocol) CareerTypeCount(_ context.Context, sr protocol.StateReader, career action.CareerType) (uint32, error) {
	var c counter
	if _, err := getState(sr, careerKey(career), &c); err != nil {
		return 0, err
	}
	return c.Value, nil
}

func loadInventory(sr protocol.StateReader, t action.OriginOfShellType, race action.RaceType) (*NftSaleInfo, error) {
	var info NftSaleInfo
	exist, err := getState(sr, inventoryKey(t, race), &info)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errors.Wrapf(ErrOriginOfShellInventoryCorrupted, "missing %s %s", t, race)
	}
	return &info, nil
}

// hasRaceTypeLeft fails unless a type and race still has stock for sale
func hasRaceTypeLeft(sr protocol.StateReader, t action.OriginOfShellType, race action.RaceType) error {
	info, err := loadInventory(sr, t, race)
	if err != nil {
		return err
	}
	if info.RaceForSaleCount == 0 {
		return errors.Wrapf(ErrRaceMintMaxReached, "%s %s", t, race)
	}
	return nil
}

// allocate moves one unit of a type and race from for-sale to minted
func allocate(sm protocol.StateManager, t action.OriginOfShellType, race action.RaceType) error {
	info, err := loadInventory(sm, t, race)
	if err != nil {
		return err
	}
	if info.RaceForSaleCount == 0 {
		return errors.Wrapf(ErrRaceMintMaxReached, "%s %s", t, race)
	}
	if info.RaceCount == math.MaxUint32 {
		return errors.Wrapf(ErrCounterOverflow, "minted count of %s %s", t, race)
	}
	info.RaceForSaleCount--
	info.RaceCount++
	return putState(sm, inventoryKey(t, race), info)
}

func incrementCareer(sm protocol.StateManager, career action.CareerType) error {
	var c counter
	if _, err := getState(sm, careerKey(career), &c); err != nil {
		return err
	}
	c.Value = saturatingAdd(c.Value, 1)
	return putState(sm, careerKey(career), &c)
}

func saturatingAdd(a, b uint32) uint32 {
	if a > math.MaxUint32-b {
		return math.MaxUint32
	}
	return a + b
}
