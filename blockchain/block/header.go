// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package block

import (
	"time"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/iotexproject/go-pkgs/hash"

	"github.com/iotexproject/iotex-worldsale/pkg/log"
)

// Header defines the struct of block header
type Header struct {
	height        uint64       // block height
	timestamp     time.Time    // propose timestamp
	prevBlockHash hash.Hash256 // hash of previous block
	txRoot        hash.Hash256 // merkle root of all actions
}

type headerCore struct {
	Height        uint64
	Timestamp     uint64 // rlp only encodes unsigned integers
	PrevBlockHash []byte
	TxRoot        []byte
}

// Height returns the height of this block.
func (h *Header) Height() uint64 { return h.height }

// Timestamp returns the timestamp of the block.
func (h *Header) Timestamp() time.Time { return h.timestamp }

// PrevHash returns the hash of prev block.
func (h *Header) PrevHash() hash.Hash256 { return h.prevBlockHash }

// TxRoot returns the hash of all actions in this block.
func (h *Header) TxRoot() hash.Hash256 { return h.txRoot }

// HashHeader hashes the header
func (h *Header) HashHeader() hash.Hash256 {
	data, err := rlp.EncodeToBytes(&headerCore{
		Height:        h.height,
		Timestamp:     uint64(h.timestamp.UnixNano()),
		PrevBlockHash: h.prevBlockHash[:],
		TxRoot:        h.txRoot[:],
	})
	if err != nil {
		log.L().Panic("failed to encode block header")
	}
	return hash.Hash256b(data)
}
