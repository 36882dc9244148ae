// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package nftsale

import (
	"github.com/iotexproject/iotex-address/address"

	"github.com/iotexproject/iotex-worldsale/action"
)

type (
	// WorldClockStarted is emitted when the zero day is set
	WorldClockStarted struct {
		StartTime uint64
	}

	// NewEra is emitted by the block finalizer when the era advances
	NewEra struct {
		Time uint64
		Era  uint64
	}

	// OverlordChanged carries the previous overlord, nil if there was none
	OverlordChanged struct {
		OldOverlord address.Address
		NewOverlord address.Address
	}

	StatusChanged struct {
		StatusType action.StatusType
		Status     bool
	}

	SpiritClaimed struct {
		Owner        address.Address
		CollectionID action.CollectionID
		NftID        action.NftID
	}

	OriginOfShellMinted struct {
		OriginOfShellType action.OriginOfShellType
		Race              action.RaceType
		Career            action.CareerType
		CollectionID      action.CollectionID
		NftID             action.NftID
		Owner             address.Address
	}

	OriginOfShellPreordered struct {
		Owner      address.Address
		PreorderID action.PreorderID
		Race       action.RaceType
		Career     action.CareerType
	}

	ChosenPreorderMinted struct {
		PreorderID action.PreorderID
		Owner      address.Address
	}

	NotChosenPreorderRefunded struct {
		PreorderID action.PreorderID
		Owner      address.Address
	}

	OriginOfShellsInventoryWasSet struct {
		Status bool
	}

	OriginOfShellInventoryUpdated struct {
		OriginOfShellType action.OriginOfShellType
	}

	SpiritCollectionIDSet struct {
		CollectionID action.CollectionID
	}

	OriginOfShellCollectionIDSet struct {
		CollectionID action.CollectionID
	}
)

func (WorldClockStarted) Topic() string             { return "WorldClockStarted" }
func (NewEra) Topic() string                        { return "NewEra" }
func (OverlordChanged) Topic() string               { return "OverlordChanged" }
func (StatusChanged) Topic() string                 { return "StatusChanged" }
func (SpiritClaimed) Topic() string                 { return "SpiritClaimed" }
func (OriginOfShellMinted) Topic() string           { return "OriginOfShellMinted" }
func (OriginOfShellPreordered) Topic() string       { return "OriginOfShellPreordered" }
func (ChosenPreorderMinted) Topic() string          { return "ChosenPreorderMinted" }
func (NotChosenPreorderRefunded) Topic() string     { return "NotChosenPreorderRefunded" }
func (OriginOfShellsInventoryWasSet) Topic() string { return "OriginOfShellsInventoryWasSet" }
func (OriginOfShellInventoryUpdated) Topic() string { return "OriginOfShellInventoryUpdated" }
func (SpiritCollectionIDSet) Topic() string         { return "SpiritCollectionIDSet" }
func (OriginOfShellCollectionIDSet) Topic() string  { return "OriginOfShellCollectionIDSet" }
