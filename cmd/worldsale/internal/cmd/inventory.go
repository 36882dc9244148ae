// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-worldsale/action"
	"github.com/iotexproject/iotex-worldsale/chainservice"
	"github.com/iotexproject/iotex-worldsale/pkg/log"
)

// inventoryCmd represents the inventory command
var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Prints the Origin of Shell inventory of the state store.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cs, err := chainservice.New(cfg)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if err := cs.Start(ctx); err != nil {
			return err
		}
		defer func() {
			if err := cs.Stop(ctx); err != nil {
				log.L().Error("Failed to stop chain service.", zap.Error(err))
			}
		}()
		return printInventory(ctx, cs, cmd.OutOrStdout())
	},
}

func printInventory(ctx context.Context, cs *chainservice.ChainService, out io.Writer) error {
	sale, sf := cs.NftSaleProtocol(), cs.StateFactory()
	set, err := sale.IsOriginOfShellsInventorySet(ctx, sf)
	if err != nil {
		return err
	}
	if !set {
		fmt.Fprintln(out, "inventory is not initialized")
		return nil
	}
	tb := table.New("Type", "Race", "Minted", "For sale", "Giveaway", "Reserved").WithWriter(out)
	for _, t := range action.OriginOfShellTypes() {
		for _, race := range action.RaceTypes() {
			info, err := sale.OriginOfShellInventory(ctx, sf, t, race)
			if err != nil {
				return errors.Wrapf(err, "failed to read inventory of %s %s", t, race)
			}
			tb.AddRow(t, race, info.RaceCount, info.RaceForSaleCount, info.RaceGiveawayCount, info.RaceReservedCount)
		}
	}
	tb.Print()

	tb = table.New("Career", "Minted").WithWriter(out)
	for _, career := range action.CareerTypes() {
		cnt, err := sale.CareerTypeCount(ctx, sf, career)
		if err != nil {
			return err
		}
		tb.AddRow(career, cnt)
	}
	tb.Print()
	return nil
}

func init() {
	rootCmd.AddCommand(inventoryCmd)
}
