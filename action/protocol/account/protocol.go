// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package account

import (
	"context"
	"math/big"

	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-worldsale/action"
	"github.com/iotexproject/iotex-worldsale/action/protocol"
	"github.com/iotexproject/iotex-worldsale/blockchain/genesis"
	"github.com/iotexproject/iotex-worldsale/pkg/log"
	"github.com/iotexproject/iotex-worldsale/state"
)

const (
	// protocolID is the protocol ID
	protocolID = "account"
	// AccountNamespace is the namespace to store accounts
	AccountNamespace = "Account"
)

var (
	// ErrKeepAlive indicates a keep-alive transfer would leave the sender below the existential deposit
	ErrKeepAlive = errors.New("transfer would kill the sender account")
	// ErrExistentialDeposit indicates a transfer would create an account below the existential deposit
	ErrExistentialDeposit = errors.New("value too low to create account")
)

// Protocol defines the protocol of handling account
type Protocol struct {
	addr               address.Address
	initBalances       genesis.Account
	existentialDeposit *big.Int
}

// NewProtocol instantiates the protocol of account
func NewProtocol(cfg genesis.Account) *Protocol {
	return &Protocol{
		addr:               protocol.Address(protocolID),
		initBalances:       cfg,
		existentialDeposit: cfg.ExistentialDeposit(),
	}
}

// ProtocolAddr returns the address generated from protocol id
func ProtocolAddr() address.Address {
	return protocol.Address(protocolID)
}

// Name returns the name of protocol
func (p *Protocol) Name() string {
	return protocolID
}

// CreateGenesisStates initializes the accounts with genesis balances
func (p *Protocol) CreateGenesisStates(_ context.Context, sm protocol.StateManager) error {
	addrs, amounts := p.initBalances.InitBalances()
	for i, addr := range addrs {
		acct, err := loadAccount(sm, addr)
		if err != nil {
			return err
		}
		if err := acct.AddBalance(amounts[i]); err != nil {
			return errors.Wrapf(err, "failed to add genesis balance to %s", addr.String())
		}
		if err := storeAccount(sm, addr, acct); err != nil {
			return err
		}
	}
	return nil
}

// Handle handles an account
func (p *Protocol) Handle(ctx context.Context, act action.Action, sm protocol.StateManager) (*action.Receipt, error) {
	switch act := act.(type) {
	case *action.Transfer:
		return p.handleTransfer(ctx, act, sm)
	}
	return nil, nil
}

// Balance returns the free balance of an account
func (p *Protocol) Balance(_ context.Context, sm protocol.StateReader, addr address.Address) (*big.Int, error) {
	acct, err := loadAccount(sm, addr)
	if err != nil {
		return nil, err
	}
	return acct.Balance(), nil
}

// ReservedBalance returns the reserved balance of an account
func (p *Protocol) ReservedBalance(_ context.Context, sm protocol.StateReader, addr address.Address) (*big.Int, error) {
	acct, err := loadAccount(sm, addr)
	if err != nil {
		return nil, err
	}
	return acct.Reserved(), nil
}

// CanReserve returns whether the free balance of an account covers amount
func (p *Protocol) CanReserve(_ context.Context, sm protocol.StateReader, addr address.Address, amount *big.Int) (bool, error) {
	acct, err := loadAccount(sm, addr)
	if err != nil {
		return false, err
	}
	return acct.Balance().Cmp(amount) >= 0, nil
}

// Reserve moves amount from the free balance of an account to its reserved balance
func (p *Protocol) Reserve(_ context.Context, sm protocol.StateManager, addr address.Address, amount *big.Int) error {
	acct, err := loadAccount(sm, addr)
	if err != nil {
		return err
	}
	if err := acct.Reserve(amount); err != nil {
		return errors.Wrapf(err, "failed to reserve %s from %s", amount, addr.String())
	}
	return storeAccount(sm, addr, acct)
}

// Unreserve moves up to amount from the reserved balance of an account back to its free balance, and returns the
// amount that could not be unreserved
func (p *Protocol) Unreserve(_ context.Context, sm protocol.StateManager, addr address.Address, amount *big.Int) (*big.Int, error) {
	acct, err := loadAccount(sm, addr)
	if err != nil {
		return nil, err
	}
	remaining := acct.Unreserve(amount)
	if remaining.Sign() > 0 {
		log.L().Warn("Unreserved less than requested.",
			zap.String("account", addr.String()),
			zap.String("requested", amount.String()),
			zap.String("remaining", remaining.String()),
		)
	}
	if err := storeAccount(sm, addr, acct); err != nil {
		return nil, err
	}
	return remaining, nil
}

// Transfer moves amount of free balance from one account to another. With keepAlive the sender must keep at least
// the existential deposit.
func (p *Protocol) Transfer(
	_ context.Context,
	sm protocol.StateManager,
	from, to address.Address,
	amount *big.Int,
	keepAlive bool,
) error {
	if amount.Sign() < 0 {
		return errors.Wrapf(action.ErrInvalidAmount, "negative amount %s", amount)
	}
	if amount.Sign() == 0 || from.String() == to.String() {
		return nil
	}
	sender, err := loadAccount(sm, from)
	if err != nil {
		return err
	}
	if err := sender.SubBalance(amount); err != nil {
		return errors.Wrapf(err, "sender %s balance %s, required amount %s", from.String(), sender.Balance(), amount)
	}
	if keepAlive && sender.Balance().Cmp(p.existentialDeposit) < 0 {
		return errors.Wrapf(ErrKeepAlive, "sender %s would keep %s", from.String(), sender.Balance())
	}
	recipient, err := loadAccount(sm, to)
	if err != nil {
		return err
	}
	if recipient.IsEmpty() && amount.Cmp(p.existentialDeposit) < 0 {
		return errors.Wrapf(ErrExistentialDeposit, "recipient %s", to.String())
	}
	if err := recipient.AddBalance(amount); err != nil {
		return err
	}
	if err := storeAccount(sm, from, sender); err != nil {
		return err
	}
	return storeAccount(sm, to, recipient)
}

func loadAccount(sr protocol.StateReader, addr address.Address) (*state.Account, error) {
	acct := state.NewEmptyAccount()
	_, err := sr.State(acct, protocol.NamespaceOption(AccountNamespace), protocol.KeyOption(addr.Bytes()))
	switch errors.Cause(err) {
	case nil:
		return acct, nil
	case state.ErrStateNotExist:
		return state.NewEmptyAccount(), nil
	default:
		return nil, errors.Wrapf(err, "failed to load account %s", addr.String())
	}
}

func storeAccount(sm protocol.StateManager, addr address.Address, acct *state.Account) error {
	if _, err := sm.PutState(acct, protocol.NamespaceOption(AccountNamespace), protocol.KeyOption(addr.Bytes())); err != nil {
		return errors.Wrapf(err, "failed to store account %s", addr.String())
	}
	return nil
}
