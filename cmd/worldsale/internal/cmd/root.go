// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-worldsale/config"
	"github.com/iotexproject/iotex-worldsale/pkg/log"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "worldsale [command] [flags]",
	Short: "Command-line interface for the world sale ledger",
	Long:  "worldsale runs the world sale ledger against a local state store and prepares overlord signatures.",
}

var _configPaths []string

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.L().Fatal("Failed to run command.", zap.Error(err))
	}
}

func loadConfig() (config.Config, error) {
	cfg, err := config.New(_configPaths)
	if err != nil {
		return config.Config{}, err
	}
	if err := log.InitLoggers(cfg.Log, cfg.SubLogs); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringSliceVarP(&_configPaths, "config", "c", nil, "config files, later ones override earlier ones")
}
