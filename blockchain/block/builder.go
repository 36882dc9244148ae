// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package block

import (
	"time"

	"github.com/iotexproject/go-pkgs/hash"
	"github.com/pkg/errors"

	"github.com/iotexproject/iotex-worldsale/action"
)

// Builder is used to construct Block.
type Builder struct{ blk Block }

// NewBuilder creates a Builder.
func NewBuilder(height uint64, ts time.Time, actions []*action.Envelope) *Builder {
	return &Builder{
		blk: Block{
			Header: Header{
				height:    height,
				timestamp: ts,
			},
			Actions: actions,
		},
	}
}

// SetPrevBlockHash sets the previous block hash for block which is building.
func (b *Builder) SetPrevBlockHash(h hash.Hash256) *Builder {
	b.blk.Header.prevBlockHash = h
	return b
}

// Build builds a block, computing the action root from the action hashes in block order.
func (b *Builder) Build() (*Block, error) {
	root := make([]byte, 0, len(b.blk.Actions)*len(hash.ZeroHash256))
	for _, elp := range b.blk.Actions {
		if elp == nil {
			return nil, errors.Wrap(action.ErrNilAction, "nil envelope in block")
		}
		h, err := elp.Hash()
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash action")
		}
		root = append(root, h[:]...)
	}
	if len(b.blk.Actions) > 0 {
		b.blk.Header.txRoot = hash.Hash256b(root)
	}
	blk := b.blk
	return &blk, nil
}
