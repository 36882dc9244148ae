// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package action

import (
	"github.com/iotexproject/go-pkgs/hash"
)

const (
	// FailureReceiptStatus is the status that the action failed and all its state changes are discarded
	FailureReceiptStatus = uint64(0)
	// SuccessReceiptStatus is the status that the action succeeded
	SuccessReceiptStatus = uint64(1)
)

type (
	// Receipt represents the result of an action
	Receipt struct {
		Status          uint64
		BlockHeight     uint64
		ActionHash      hash.Hash256
		ContractAddress string
		logs            []*Log
		revertMsg       string
	}

	// Event is the typed payload of a log
	Event interface {
		// Topic is the name of the event
		Topic() string
	}

	// Log stores an event emitted by a protocol
	Log struct {
		Address     string
		Event       Event
		BlockHeight uint64
		ActionHash  hash.Hash256
		Index       uint32
	}
)

// Logs returns the logs of the receipt
func (receipt *Receipt) Logs() []*Log {
	return receipt.logs
}

// AddLogs adds logs to the receipt, indexing them in emission order
func (receipt *Receipt) AddLogs(logs ...*Log) *Receipt {
	for _, l := range logs {
		if l == nil {
			continue
		}
		l.BlockHeight = receipt.BlockHeight
		l.ActionHash = receipt.ActionHash
		l.Index = uint32(len(receipt.logs))
		receipt.logs = append(receipt.logs, l)
	}
	return receipt
}

// SetRevertMsg records why a failed action was rejected
func (receipt *Receipt) SetRevertMsg(msg string) *Receipt {
	receipt.revertMsg = msg
	return receipt
}

// RevertMsg returns the reason of a failed action
func (receipt *Receipt) RevertMsg() string {
	return receipt.revertMsg
}

// Events returns the events of the receipt in emission order
func (receipt *Receipt) Events() []Event {
	events := make([]Event, 0, len(receipt.logs))
	for _, l := range receipt.logs {
		events = append(events, l.Event)
	}
	return events
}
