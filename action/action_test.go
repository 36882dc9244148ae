// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package action

import (
	"math/big"
	"testing"

	"github.com/iotexproject/go-pkgs/hash"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/iotexproject/iotex-worldsale/test/identityset"
)

func TestEnvelopeHash(t *testing.T) {
	require := require.New(t)
	caller := identityset.Address(0)

	h1, err := NewEnvelope(caller, 1, NewClaimSpirit()).Hash()
	require.NoError(err)
	h2, err := NewEnvelope(caller, 1, NewClaimSpirit()).Hash()
	require.NoError(err)
	require.Equal(h1, h2)
	require.NotEqual(hash.ZeroHash256, h1)

	for _, elp := range []*Envelope{
		NewEnvelope(caller, 2, NewClaimSpirit()),
		NewGovernanceEnvelope(caller, 1, NewClaimSpirit()),
		NewEnvelope(identityset.Address(1), 1, NewClaimSpirit()),
		NewEnvelope(caller, 1, NewInitializeWorldClock()),
	} {
		h, err := elp.Hash()
		require.NoError(err)
		require.NotEqual(h1, h)
	}

	// payload fields take part in the hash
	a, err := NewEnvelope(caller, 1, NewPreorderOriginOfShell(Cyborg, Web3Monk)).Hash()
	require.NoError(err)
	b, err := NewEnvelope(caller, 1, NewPreorderOriginOfShell(Cyborg, HackerWizard)).Hash()
	require.NoError(err)
	require.NotEqual(a, b)

	_, err = NewEnvelope(nil, 1, NewClaimSpirit()).Hash()
	require.Equal(ErrInvalidAddress, errors.Cause(err))
}

func TestEnvelopeSanityCheck(t *testing.T) {
	require := require.New(t)
	caller := identityset.Address(0)
	recipient := identityset.Address(1).String()

	elp := NewGovernanceEnvelope(caller, 7, NewSetOverlord(recipient))
	require.NoError(elp.SanityCheck())
	require.Equal(caller, elp.Caller())
	require.Equal(uint64(7), elp.Nonce())
	require.Equal(GovernanceOrigin, elp.Origin())

	require.Equal(ErrNilAction, NewEnvelope(caller, 1, nil).SanityCheck())
	require.Equal(ErrInvalidAddress, errors.Cause(NewEnvelope(nil, 1, NewClaimSpirit()).SanityCheck()))

	for _, c := range []struct {
		act Action
		err error
	}{
		{NewSetOverlord("io1bad"), ErrInvalidAddress},
		{NewTransfer(recipient, big.NewInt(-1)), ErrInvalidAmount},
		{NewTransfer("", big.NewInt(1)), ErrInvalidAddress},
		{NewTransferNft(0, 0, "io1bad"), ErrInvalidAddress},
		{NewSetStatusType(true, StatusType(9)), ErrInvalidEnum},
		{NewUpdateOriginOfShellInventory(OriginOfShellType(3), 1, 1), ErrInvalidEnum},
		{NewBuyRareOriginOfShell(OriginOfShellType(7), Cyborg, Web3Monk), ErrInvalidEnum},
		{NewBuyPrimeOriginOfShell(nil, RaceType(4), Web3Monk), ErrInvalidEnum},
		{NewPreorderOriginOfShell(Cyborg, CareerType(5)), ErrInvalidEnum},
	} {
		require.Equal(c.err, errors.Cause(NewEnvelope(caller, 1, c.act).SanityCheck()), Name(c.act))
	}
	require.Error(NewMintChosenPreorders(nil).SanityCheck())
	require.Error(NewRefundNotChosenPreorders([]PreorderID{}).SanityCheck())
	require.NoError(NewMintChosenPreorders([]PreorderID{0}).SanityCheck())
	require.NoError(NewTransfer(recipient, nil).SanityCheck())
}

func TestName(t *testing.T) {
	require := require.New(t)
	require.Equal("Transfer", Name(NewTransfer("", nil)))
	require.Equal("BuyPrimeOriginOfShell", Name(NewBuyPrimeOriginOfShell(nil, Cyborg, Web3Monk)))
	require.Equal("", Name(nil))
}

func TestEnums(t *testing.T) {
	require := require.New(t)
	for _, tt := range OriginOfShellTypes() {
		parsed, err := ParseOriginOfShellType(tt.String())
		require.NoError(err)
		require.Equal(tt, parsed)
	}
	race, err := ParseRaceType("aispectre")
	require.NoError(err)
	require.Equal(AISpectre, race)
	career, err := ParseCareerType("WEB3MONK")
	require.NoError(err)
	require.Equal(Web3Monk, career)
	st, err := ParseStatusType("lastDayOfSale")
	require.NoError(err)
	require.Equal(LastDayOfSale, st)
	p, err := ParsePurpose("RedeemSpirit")
	require.NoError(err)
	require.Equal(PurposeRedeemSpirit, p)

	_, err = ParseRaceType("Elf")
	require.Equal(ErrInvalidEnum, errors.Cause(err))
	require.Equal("RaceType(unknown)", RaceType(4).String())
	require.False(CareerType(5).IsValid())
	require.True(Pandroid.IsValid())
	require.Len(CareerTypes(), 5)
}

func TestReceipt(t *testing.T) {
	require := require.New(t)
	r := &Receipt{Status: SuccessReceiptStatus, BlockHeight: 3, ActionHash: hash.Hash256b([]byte("act"))}
	r.AddLogs(&Log{Address: "a"}, nil, &Log{Address: "b"})
	require.Len(r.Logs(), 2)
	for i, l := range r.Logs() {
		require.Equal(uint32(i), l.Index)
		require.Equal(uint64(3), l.BlockHeight)
		require.Equal(r.ActionHash, l.ActionHash)
	}
	require.Equal("b", r.Logs()[1].Address)
	require.Equal("reverted", r.SetRevertMsg("reverted").RevertMsg())
}
