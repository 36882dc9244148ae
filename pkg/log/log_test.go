// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package log

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitLoggers(t *testing.T) {
	require := require.New(t)

	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.Level.SetLevel(zap.DebugLevel)
	require.NoError(InitLoggers(GlobalConfig{Zap: &zapCfg}, map[string]GlobalConfig{
		"nftsale": {},
	}))
	require.True(L().Core().Enabled(zap.DebugLevel))
	require.NotEqual(L(), Logger("nftsale"))
	// unknown sub logger falls back to the global one
	require.Equal(L(), Logger("unknown"))
}
