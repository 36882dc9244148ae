// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package action

// CreateCollection creates a new nft collection issued by the caller
type CreateCollection struct{}

// NewCreateCollection returns a CreateCollection instance
func NewCreateCollection() *CreateCollection { return &CreateCollection{} }

// SanityCheck validates the variables in the action
func (cc *CreateCollection) SanityCheck() error { return nil }

func (cc *CreateCollection) encode() ([]byte, error) { return encodeFields() }

// TransferNft moves an nft owned by the caller to the recipient
type TransferNft struct {
	collectionID CollectionID
	nftID        NftID
	recipient    string
}

// NewTransferNft returns a TransferNft instance
func NewTransferNft(collectionID CollectionID, nftID NftID, recipient string) *TransferNft {
	return &TransferNft{
		collectionID: collectionID,
		nftID:        nftID,
		recipient:    recipient,
	}
}

// CollectionID returns the collection id
func (tn *TransferNft) CollectionID() CollectionID { return tn.collectionID }

// NftID returns the nft id
func (tn *TransferNft) NftID() NftID { return tn.nftID }

// Recipient returns the recipient address
func (tn *TransferNft) Recipient() string { return tn.recipient }

// SanityCheck validates the variables in the action
func (tn *TransferNft) SanityCheck() error { return validateAddress(tn.recipient) }

func (tn *TransferNft) encode() ([]byte, error) {
	return encodeFields(uint32(tn.collectionID), uint32(tn.nftID), tn.recipient)
}
