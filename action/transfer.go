// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package action

import (
	"math/big"
	"reflect"

	"github.com/pkg/errors"
)

// Transfer defines the struct of account-based transfer
type Transfer struct {
	recipient string
	amount    *big.Int
}

// NewTransfer returns a Transfer instance
func NewTransfer(recipient string, amount *big.Int) *Transfer {
	return &Transfer{
		recipient: recipient,
		amount:    amount,
	}
}

// Recipient returns the recipient address
func (tsf *Transfer) Recipient() string { return tsf.recipient }

// Amount returns the amount
func (tsf *Transfer) Amount() *big.Int {
	if tsf.amount == nil {
		return big.NewInt(0)
	}
	return tsf.amount
}

// SanityCheck validates the variables in the action
func (tsf *Transfer) SanityCheck() error {
	// Reject transfer of negative amount
	if tsf.Amount().Sign() < 0 {
		return errors.Wrap(ErrInvalidAmount, "negative value")
	}
	return validateAddress(tsf.recipient)
}

func (tsf *Transfer) encode() ([]byte, error) {
	// rlp rejects negative integers, so the amount is hashed in decimal
	return encodeFields(tsf.recipient, tsf.Amount().String())
}

// Name returns the name of the action type, e.g. "Transfer"
func Name(act Action) string {
	t := reflect.TypeOf(act)
	if t == nil {
		return ""
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
