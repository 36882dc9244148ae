// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package nftsale

import (
	"github.com/iotexproject/go-pkgs/crypto"
	"github.com/iotexproject/go-pkgs/hash"
	"github.com/iotexproject/iotex-address/address"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-worldsale/action"
	"github.com/iotexproject/iotex-worldsale/pkg/log"
)

// secp256k1 signature with the recovery id appended
const _signatureLength = 65

// OverlordMessage is the payload the overlord signs to whitelist an account for one purpose
type OverlordMessage struct {
	Account address.Address
	Purpose action.Purpose
}

// Bytes returns the canonical encoding, the account bytes followed by the purpose
func (m OverlordMessage) Bytes() []byte {
	acct := m.Account.Bytes()
	b := make([]byte, 0, len(acct)+1)
	b = append(b, acct...)
	return append(b, byte(m.Purpose))
}

// Digest returns the hash being signed
func (m OverlordMessage) Digest() hash.Hash256 {
	return hash.Hash256b(m.Bytes())
}

// SignClaim signs the whitelist message of account for purpose
func SignClaim(sk crypto.PrivateKey, account address.Address, purpose action.Purpose) ([]byte, error) {
	digest := OverlordMessage{Account: account, Purpose: purpose}.Digest()
	return sk.Sign(digest[:])
}

// VerifyClaim checks signature was produced by overlord over the whitelist message of sender for purpose
func VerifyClaim(overlord, sender address.Address, signature []byte, purpose action.Purpose) bool {
	if overlord == nil || sender == nil || len(signature) != _signatureLength {
		return false
	}
	digest := OverlordMessage{Account: sender, Purpose: purpose}.Digest()
	pk, err := crypto.RecoverPubkey(digest[:], signature)
	if err != nil {
		log.L().Debug("Failed to recover whitelist signer.", zap.String("sender", sender.String()), zap.Error(err))
		return false
	}
	if pk.Address().String() != overlord.String() {
		return false
	}
	return pk.Verify(digest[:], signature)
}
