// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package action

import (
	"strings"

	"github.com/pkg/errors"
)

type (
	// CollectionID identifies an nft collection in the uniques registry
	CollectionID uint32
	// NftID identifies an nft inside its collection
	NftID uint32
	// PreorderID identifies a pending preorder
	PreorderID uint32

	// OriginOfShellType is the rarity tier of an Origin of Shell
	OriginOfShellType uint8
	// RaceType is the race of an Origin of Shell
	RaceType uint8
	// CareerType is the career of an Origin of Shell
	CareerType uint8
	// StatusType is a sale phase switch toggled by the overlord
	StatusType uint8
	// Purpose binds an overlord signature to the operation it was issued for
	Purpose uint8
)

// Origin of Shell types
const (
	Prime OriginOfShellType = iota
	Magic
	Legendary
)

// Races
const (
	Cyborg RaceType = iota
	AISpectre
	XGene
	Pandroid
)

// Careers
const (
	HardwareDruid CareerType = iota
	RoboWarrior
	TradeNegotiator
	HackerWizard
	Web3Monk
)

// Sale status switches
const (
	ClaimSpirits StatusType = iota
	PurchaseRareOriginOfShells
	PurchasePrimeOriginOfShells
	PreorderOriginOfShells
	LastDayOfSale
)

// Purposes of an overlord signature
const (
	PurposeRedeemSpirit Purpose = iota
	PurposeBuyPrimeOriginOfShells
)

var (
	_originOfShellTypeNames = []string{"Prime", "Magic", "Legendary"}
	_raceNames              = []string{"Cyborg", "AISpectre", "XGene", "Pandroid"}
	_careerNames            = []string{"HardwareDruid", "RoboWarrior", "TradeNegotiator", "HackerWizard", "Web3Monk"}
	_statusTypeNames        = []string{
		"ClaimSpirits",
		"PurchaseRareOriginOfShells",
		"PurchasePrimeOriginOfShells",
		"PreorderOriginOfShells",
		"LastDayOfSale",
	}
	_purposeNames = []string{"RedeemSpirit", "BuyPrimeOriginOfShells"}
)

// OriginOfShellTypes lists all Origin of Shell types
func OriginOfShellTypes() []OriginOfShellType {
	return []OriginOfShellType{Prime, Magic, Legendary}
}

// RaceTypes lists all races
func RaceTypes() []RaceType {
	return []RaceType{Cyborg, AISpectre, XGene, Pandroid}
}

// CareerTypes lists all careers
func CareerTypes() []CareerType {
	return []CareerType{HardwareDruid, RoboWarrior, TradeNegotiator, HackerWizard, Web3Monk}
}

// StatusTypes lists all sale status switches
func StatusTypes() []StatusType {
	return []StatusType{
		ClaimSpirits,
		PurchaseRareOriginOfShells,
		PurchasePrimeOriginOfShells,
		PreorderOriginOfShells,
		LastDayOfSale,
	}
}

func (t OriginOfShellType) String() string { return enumName(_originOfShellTypeNames, int(t), "OriginOfShellType") }

func (r RaceType) String() string { return enumName(_raceNames, int(r), "RaceType") }

func (c CareerType) String() string { return enumName(_careerNames, int(c), "CareerType") }

func (s StatusType) String() string { return enumName(_statusTypeNames, int(s), "StatusType") }

func (p Purpose) String() string { return enumName(_purposeNames, int(p), "Purpose") }

// IsValid checks the value is a known Origin of Shell type
func (t OriginOfShellType) IsValid() bool { return int(t) < len(_originOfShellTypeNames) }

// IsValid checks the value is a known race
func (r RaceType) IsValid() bool { return int(r) < len(_raceNames) }

// IsValid checks the value is a known career
func (c CareerType) IsValid() bool { return int(c) < len(_careerNames) }

// IsValid checks the value is a known status switch
func (s StatusType) IsValid() bool { return int(s) < len(_statusTypeNames) }

// IsValid checks the value is a known purpose
func (p Purpose) IsValid() bool { return int(p) < len(_purposeNames) }

// ParseOriginOfShellType parses the name of an Origin of Shell type, case-insensitively
func ParseOriginOfShellType(s string) (OriginOfShellType, error) {
	i, err := parseEnum(_originOfShellTypeNames, s)
	return OriginOfShellType(i), err
}

// ParseRaceType parses the name of a race, case-insensitively
func ParseRaceType(s string) (RaceType, error) {
	i, err := parseEnum(_raceNames, s)
	return RaceType(i), err
}

// ParseCareerType parses the name of a career, case-insensitively
func ParseCareerType(s string) (CareerType, error) {
	i, err := parseEnum(_careerNames, s)
	return CareerType(i), err
}

// ParseStatusType parses the name of a status switch, case-insensitively
func ParseStatusType(s string) (StatusType, error) {
	i, err := parseEnum(_statusTypeNames, s)
	return StatusType(i), err
}

// ParsePurpose parses the name of a purpose, case-insensitively
func ParsePurpose(s string) (Purpose, error) {
	i, err := parseEnum(_purposeNames, s)
	return Purpose(i), err
}

func enumName(names []string, i int, kind string) string {
	if i < 0 || i >= len(names) {
		return kind + "(unknown)"
	}
	return names[i]
}

func parseEnum(names []string, s string) (int, error) {
	for i, name := range names {
		if strings.EqualFold(name, s) {
			return i, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidEnum, "unknown value %s", s)
}
