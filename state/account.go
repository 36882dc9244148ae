// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package state

import (
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
)

type (
	// Account is the canonical representation of an account. Balance is the free balance, Reserved is held on the
	// account and cannot be spent until unreserved.
	Account struct {
		balance  *big.Int
		reserved *big.Int
	}

	accountRLP struct {
		Balance  *big.Int
		Reserved *big.Int
	}
)

// NewEmptyAccount returns an account with zero balances
func NewEmptyAccount() *Account {
	return &Account{
		balance:  big.NewInt(0),
		reserved: big.NewInt(0),
	}
}

// Serialize serializes account state into bytes
func (st *Account) Serialize() ([]byte, error) {
	data, err := rlp.EncodeToBytes(&accountRLP{
		Balance:  st.balance,
		Reserved: st.reserved,
	})
	if err != nil {
		return nil, errors.Wrap(ErrStateSerialization, err.Error())
	}
	return data, nil
}

// Deserialize deserializes bytes into account state
func (st *Account) Deserialize(buf []byte) error {
	var acc accountRLP
	if err := rlp.DecodeBytes(buf, &acc); err != nil {
		return errors.Wrap(ErrStateDeserialization, err.Error())
	}
	st.balance = acc.Balance
	if st.balance == nil {
		st.balance = big.NewInt(0)
	}
	st.reserved = acc.Reserved
	if st.reserved == nil {
		st.reserved = big.NewInt(0)
	}
	return nil
}

// Balance returns the free balance
func (st *Account) Balance() *big.Int {
	return new(big.Int).Set(st.balance)
}

// Reserved returns the reserved balance
func (st *Account) Reserved() *big.Int {
	return new(big.Int).Set(st.reserved)
}

// IsEmpty returns true if the account holds nothing
func (st *Account) IsEmpty() bool {
	return st.balance.Sign() == 0 && st.reserved.Sign() == 0
}

// AddBalance adds balance for account state
func (st *Account) AddBalance(amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return errors.Errorf("invalid amount to add %s", amount)
	}
	st.balance.Add(st.balance, amount)
	return nil
}

// SubBalance subtracts balance for account state
func (st *Account) SubBalance(amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return errors.Errorf("invalid amount to subtract %s", amount)
	}
	// make sure there's enough fund to spend
	if amount.Cmp(st.balance) == 1 {
		return ErrNotEnoughBalance
	}
	st.balance.Sub(st.balance, amount)
	return nil
}

// Reserve moves amount from the free balance to the reserved balance
func (st *Account) Reserve(amount *big.Int) error {
	if err := st.SubBalance(amount); err != nil {
		return err
	}
	st.reserved.Add(st.reserved, amount)
	return nil
}

// Unreserve moves up to amount from the reserved balance back to the free balance, and returns the amount which
// could not be unreserved
func (st *Account) Unreserve(amount *big.Int) *big.Int {
	actual := new(big.Int).Set(amount)
	if actual.Cmp(st.reserved) > 0 {
		actual.Set(st.reserved)
	}
	st.reserved.Sub(st.reserved, actual)
	st.balance.Add(st.balance, actual)
	return new(big.Int).Sub(amount, actual)
}
