// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/facebookgo/clock"
	"github.com/pkg/errors"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-worldsale/action"
	"github.com/iotexproject/iotex-worldsale/blockchain/block"
	"github.com/iotexproject/iotex-worldsale/chainservice"
	"github.com/iotexproject/iotex-worldsale/pkg/log"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replays a script of blocks against the state store.",
	Long: `Replays a yaml script of blocks against the state store. Every block is stamped with the script clock,
which starts at the genesis time and moves forward by the advance of each block.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		script, err := LoadScript(_scriptPath)
		if err != nil {
			return err
		}
		start := cfg.Genesis.GenesisTime()
		if script.StartTime != 0 {
			start = time.Unix(script.StartTime, 0)
		}
		clk := clock.NewMock()
		clk.Add(start.Sub(clk.Now()))
		cs, err := chainservice.New(cfg, chainservice.WithClock(clk))
		if err != nil {
			return err
		}
		return runScript(cmd.Context(), cs, clk, script, cmd.OutOrStdout())
	},
}

var _scriptPath string

// receiptPrinter prints the receipts of every committed block
type receiptPrinter struct {
	out io.Writer
}

func (rp *receiptPrinter) HandleBlock(blk *block.Block) error {
	fmt.Fprintf(rp.out, "block %d at %d\n", blk.Height(), blk.Timestamp().Unix())
	tb := table.New("#", "Action", "Caller", "Status", "Result").WithWriter(rp.out)
	for i, r := range blk.Receipts {
		elp := blk.Actions[i]
		status, result := "success", formatEvents(r.Events())
		if r.Status != action.SuccessReceiptStatus {
			status, result = "failure", r.RevertMsg()
		}
		tb.AddRow(i, action.Name(elp.Action()), elp.Caller().String(), status, result)
	}
	tb.Print()
	if len(blk.FinalizeLogs) > 0 {
		events := make([]action.Event, 0, len(blk.FinalizeLogs))
		for _, l := range blk.FinalizeLogs {
			events = append(events, l.Event)
		}
		fmt.Fprintf(rp.out, "finalized: %s\n", formatEvents(events))
	}
	return nil
}

func formatEvents(events []action.Event) string {
	s := make([]string, 0, len(events))
	for _, evt := range events {
		s = append(s, fmt.Sprintf("%s%+v", evt.Topic(), evt))
	}
	return strings.Join(s, " ")
}

func runScript(ctx context.Context, cs *chainservice.ChainService, clk *clock.Mock, script *Script, out io.Writer) error {
	chain := cs.Blockchain()
	if err := chain.AddSubscriber(&receiptPrinter{out: out}); err != nil {
		return err
	}
	if err := cs.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start chain service")
	}
	defer func() {
		if err := cs.Stop(ctx); err != nil {
			log.L().Error("Failed to stop chain service.", zap.Error(err))
		}
	}()

	nonces := make(map[string]uint64)
	for i, sb := range script.Blocks {
		clk.Add(sb.Advance)
		elps := make([]*action.Envelope, 0, len(sb.Actions))
		for j := range sb.Actions {
			sa := &sb.Actions[j]
			nonces[sa.Caller]++
			elp, err := sa.Envelope(nonces[sa.Caller])
			if err != nil {
				return errors.Wrapf(err, "block %d action %d", i, j)
			}
			elps = append(elps, elp)
		}
		blk, err := chain.MintBlock(ctx, elps)
		if err != nil {
			return err
		}
		log.L().Info("Replayed block.", zap.Uint64("height", blk.Height()), zap.Int("actions", len(elps)))
	}
	return nil
}

func init() {
	runCmd.Flags().StringVarP(&_scriptPath, "script", "s", "", "yaml script of the blocks to replay")
	_ = runCmd.MarkFlagRequired("script")
	rootCmd.AddCommand(runCmd)
}
