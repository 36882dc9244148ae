// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package cmd

import (
	"encoding/hex"
	"math/big"
	"os"
	"time"

	"github.com/iotexproject/go-pkgs/crypto"
	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/iotexproject/iotex-worldsale/action"
	"github.com/iotexproject/iotex-worldsale/action/protocol/nftsale"
)

var errUnknownAction = errors.New("unknown action type")

type (
	// Script is a list of blocks replayed against the chain
	Script struct {
		// StartTime is the unix time of the script clock, the genesis time if zero
		StartTime int64         `yaml:"startTime"`
		Blocks    []ScriptBlock `yaml:"blocks"`
	}

	// ScriptBlock is the actions of one block, minted after the clock moves forward by Advance
	ScriptBlock struct {
		Advance time.Duration  `yaml:"advance"`
		Actions []ScriptAction `yaml:"actions"`
	}

	// ScriptAction describes an action and its caller. Type is the action name, e.g. ClaimSpirit, and only the fields
	// of that action are read.
	ScriptAction struct {
		Type       string `yaml:"type"`
		Caller     string `yaml:"caller"`
		Governance bool   `yaml:"governance"`

		Recipient         string   `yaml:"recipient"`
		Amount            string   `yaml:"amount"`
		Overlord          string   `yaml:"overlord"`
		Status            bool     `yaml:"status"`
		StatusType        string   `yaml:"statusType"`
		OriginOfShellType string   `yaml:"originOfShellType"`
		Race              string   `yaml:"race"`
		Career            string   `yaml:"career"`
		ForSaleCount      uint32   `yaml:"forSaleCount"`
		GiveawayCount     uint32   `yaml:"giveawayCount"`
		CollectionID      uint32   `yaml:"collectionId"`
		NftID             uint32   `yaml:"nftId"`
		Preorders         []uint32 `yaml:"preorders"`
		// Signature is the hex whitelist signature, Signer is the hex overlord key to produce one for the caller
		Signature string `yaml:"signature"`
		Signer    string `yaml:"signer"`
	}
)

// LoadScript reads a yaml script
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read script %s", path)
	}
	var s Script
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return nil, errors.Wrapf(err, "failed to parse script %s", path)
	}
	return &s, nil
}

// Envelope builds the envelope of the action
func (sa *ScriptAction) Envelope(nonce uint64) (*action.Envelope, error) {
	caller, err := address.FromString(sa.Caller)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid caller %q", sa.Caller)
	}
	act, err := sa.action(caller)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build %s", sa.Type)
	}
	if sa.Governance {
		return action.NewGovernanceEnvelope(caller, nonce, act), nil
	}
	return action.NewEnvelope(caller, nonce, act), nil
}

func (sa *ScriptAction) action(caller address.Address) (action.Action, error) {
	switch sa.Type {
	case "Transfer":
		amount, ok := new(big.Int).SetString(sa.Amount, 10)
		if !ok {
			return nil, errors.Wrapf(action.ErrInvalidAmount, "%q", sa.Amount)
		}
		return action.NewTransfer(sa.Recipient, amount), nil
	case "CreateCollection":
		return action.NewCreateCollection(), nil
	case "TransferNft":
		return action.NewTransferNft(action.CollectionID(sa.CollectionID), action.NftID(sa.NftID), sa.Recipient), nil
	case "SetOverlord":
		return action.NewSetOverlord(sa.Overlord), nil
	case "InitializeWorldClock":
		return action.NewInitializeWorldClock(), nil
	case "SetStatusType":
		st, err := action.ParseStatusType(sa.StatusType)
		if err != nil {
			return nil, err
		}
		return action.NewSetStatusType(sa.Status, st), nil
	case "InitOriginOfShellInventory":
		return action.NewInitOriginOfShellInventory(), nil
	case "UpdateOriginOfShellInventory":
		t, err := action.ParseOriginOfShellType(sa.OriginOfShellType)
		if err != nil {
			return nil, err
		}
		return action.NewUpdateOriginOfShellInventory(t, sa.ForSaleCount, sa.GiveawayCount), nil
	case "SetSpiritCollectionID":
		return action.NewSetSpiritCollectionID(action.CollectionID(sa.CollectionID)), nil
	case "SetOriginOfShellCollectionID":
		return action.NewSetOriginOfShellCollectionID(action.CollectionID(sa.CollectionID)), nil
	case "ClaimSpirit":
		return action.NewClaimSpirit(), nil
	case "RedeemSpirit":
		sig, err := sa.signature(caller, action.PurposeRedeemSpirit)
		if err != nil {
			return nil, err
		}
		return action.NewRedeemSpirit(sig), nil
	case "BuyRareOriginOfShell":
		t, err := action.ParseOriginOfShellType(sa.OriginOfShellType)
		if err != nil {
			return nil, err
		}
		race, career, err := sa.raceCareer()
		if err != nil {
			return nil, err
		}
		return action.NewBuyRareOriginOfShell(t, race, career), nil
	case "BuyPrimeOriginOfShell":
		sig, err := sa.signature(caller, action.PurposeBuyPrimeOriginOfShells)
		if err != nil {
			return nil, err
		}
		race, career, err := sa.raceCareer()
		if err != nil {
			return nil, err
		}
		return action.NewBuyPrimeOriginOfShell(sig, race, career), nil
	case "PreorderOriginOfShell":
		race, career, err := sa.raceCareer()
		if err != nil {
			return nil, err
		}
		return action.NewPreorderOriginOfShell(race, career), nil
	case "MintChosenPreorders":
		return action.NewMintChosenPreorders(sa.preorderIDs()), nil
	case "RefundNotChosenPreorders":
		return action.NewRefundNotChosenPreorders(sa.preorderIDs()), nil
	default:
		return nil, errors.Wrap(errUnknownAction, sa.Type)
	}
}

func (sa *ScriptAction) raceCareer() (action.RaceType, action.CareerType, error) {
	race, err := action.ParseRaceType(sa.Race)
	if err != nil {
		return 0, 0, err
	}
	career, err := action.ParseCareerType(sa.Career)
	if err != nil {
		return 0, 0, err
	}
	return race, career, nil
}

func (sa *ScriptAction) signature(caller address.Address, purpose action.Purpose) ([]byte, error) {
	if sa.Signer == "" {
		return hex.DecodeString(sa.Signature)
	}
	sk, err := crypto.HexStringToPrivateKey(sa.Signer)
	if err != nil {
		return nil, errors.Wrap(err, "invalid signer key")
	}
	return nftsale.SignClaim(sk, caller, purpose)
}

func (sa *ScriptAction) preorderIDs() []action.PreorderID {
	ids := make([]action.PreorderID, 0, len(sa.Preorders))
	for _, id := range sa.Preorders {
		ids = append(ids, action.PreorderID(id))
	}
	return ids
}
