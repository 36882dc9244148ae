// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package nftsale

import "github.com/pkg/errors"

// access errors
var (
	ErrOverlordNotSet         = errors.New("overlord not set")
	ErrRequireOverlordAccount = errors.New("require overlord account")
)

// phase errors
var (
	ErrSpiritClaimNotAvailable                = errors.New("spirit claim not available")
	ErrRareOriginOfShellPurchaseNotAvailable  = errors.New("rare origin of shell purchase not available")
	ErrPrimeOriginOfShellPurchaseNotAvailable = errors.New("prime origin of shell purchase not available")
	ErrPreorderOriginOfShellNotAvailable      = errors.New("preorder origin of shell not available")
)

// state precondition errors
var (
	ErrWorldClockAlreadySet                = errors.New("world clock already set")
	ErrSpiritCollectionNotSet              = errors.New("spirit collection not set")
	ErrSpiritCollectionIDAlreadySet        = errors.New("spirit collection id already set")
	ErrOriginOfShellCollectionNotSet       = errors.New("origin of shell collection not set")
	ErrOriginOfShellCollectionIDAlreadySet = errors.New("origin of shell collection id already set")
	ErrSpiritAlreadyClaimed                = errors.New("spirit already claimed")
	ErrMustOwnSpiritToPurchase             = errors.New("must own spirit to purchase")
	ErrOriginOfShellAlreadyPurchased       = errors.New("origin of shell already purchased")
	ErrBelowMinimumBalanceThreshold        = errors.New("below minimum balance threshold")
	ErrOriginOfShellInventoryAlreadySet    = errors.New("origin of shell inventory already set")
	ErrNoAvailablePreorderID               = errors.New("no available preorder id")
	ErrInvalidPurchase                     = errors.New("invalid purchase")
	ErrWrongOriginOfShellType              = errors.New("wrong origin of shell type")
)

// allocation errors
var (
	ErrRaceMintMaxReached              = errors.New("race mint max reached")
	ErrOriginOfShellInventoryCorrupted = errors.New("origin of shell inventory corrupted")
	ErrCounterOverflow                 = errors.New("counter overflow")
)

// verification errors
var (
	ErrInvalidSpiritClaim          = errors.New("invalid spirit claim")
	ErrWhitelistVerificationFailed = errors.New("whitelist verification failed")
)
