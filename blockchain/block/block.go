// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package block

import (
	"github.com/iotexproject/iotex-worldsale/action"
)

// Block defines the struct of block
type Block struct {
	Header
	Actions []*action.Envelope

	// Receipts and FinalizeLogs are filled in when the block is run against the state
	Receipts     []*action.Receipt
	FinalizeLogs []*action.Log
}

// Events returns the events of successful actions followed by the block finalization events
func (b *Block) Events() []action.Event {
	events := make([]action.Event, 0)
	for _, r := range b.Receipts {
		events = append(events, r.Events()...)
	}
	for _, l := range b.FinalizeLogs {
		events = append(events, l.Event)
	}
	return events
}
