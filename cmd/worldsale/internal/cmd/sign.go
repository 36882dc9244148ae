// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/iotexproject/go-pkgs/crypto"
	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/iotexproject/iotex-worldsale/action"
	"github.com/iotexproject/iotex-worldsale/action/protocol/nftsale"
)

// signWhitelistCmd represents the sign-whitelist command
var signWhitelistCmd = &cobra.Command{
	Use:   "sign-whitelist",
	Short: "Signs the whitelist message of an account with the overlord key.",
	Long: `Signs the whitelist message of an account with the overlord key. The hex signature is accepted by
RedeemSpirit or BuyPrimeOriginOfShell, depending on the purpose.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		sig, err := signWhitelist(_overlordKey, _whitelistAccount, _whitelistPurpose)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), sig)
		return nil
	},
}

var (
	_overlordKey      string
	_whitelistAccount string
	_whitelistPurpose string
)

func signWhitelist(keyHex, account, purpose string) (string, error) {
	sk, err := crypto.HexStringToPrivateKey(keyHex)
	if err != nil {
		return "", errors.Wrap(err, "invalid overlord private key")
	}
	addr, err := address.FromString(account)
	if err != nil {
		return "", errors.Wrapf(err, "invalid account %s", account)
	}
	p, err := action.ParsePurpose(purpose)
	if err != nil {
		return "", err
	}
	sig, err := nftsale.SignClaim(sk, addr, p)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign whitelist message")
	}
	return hex.EncodeToString(sig), nil
}

func init() {
	signWhitelistCmd.Flags().StringVarP(&_overlordKey, "key", "k", "", "overlord private key in hex")
	signWhitelistCmd.Flags().StringVarP(&_whitelistAccount, "account", "a", "", "whitelisted account address")
	signWhitelistCmd.Flags().StringVarP(&_whitelistPurpose, "purpose", "p", action.PurposeBuyPrimeOriginOfShells.String(), "RedeemSpirit or BuyPrimeOriginOfShells")
	_ = signWhitelistCmd.MarkFlagRequired("key")
	_ = signWhitelistCmd.MarkFlagRequired("account")
	rootCmd.AddCommand(signWhitelistCmd)
}
