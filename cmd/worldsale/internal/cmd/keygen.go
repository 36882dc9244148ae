// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/iotexproject/go-pkgs/crypto"
	"github.com/spf13/cobra"
)

// keygenCmd represents the keygen command
var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generates secp256k1 key pairs and their addresses.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		for i := 0; i < _keyNum; i++ {
			sk, err := crypto.GenerateKey()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"{\"Address\": \"%s\", \"PublicKey\": \"%s\", \"PrivateKey\": \"%s\"}\n",
				sk.PublicKey().Address().String(),
				sk.PublicKey().HexString(),
				sk.HexString(),
			)
		}
		return nil
	},
}

var _keyNum int

func init() {
	keygenCmd.Flags().IntVarP(&_keyNum, "number", "n", 1, "number of key pairs to generate")
	rootCmd.AddCommand(keygenCmd)
}
