// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package db

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func BenchmarkBoltDB_Get(b *testing.B) {
	runBenchmark := func(b *testing.B, size int) {
		cfg := DefaultConfig
		cfg.DbPath = filepath.Join(b.TempDir(), "bolt.db")
		db := NewBoltDB(cfg)
		ctx := context.Background()
		require.NoError(b, db.Start(ctx))
		defer func() {
			require.NoError(b, db.Stop(ctx))
		}()

		key := []byte("key")
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(rand.Int())
		}
		require.NoError(b, db.Put("ns", key, data))

		b.ResetTimer()
		for n := 0; n < b.N; n++ {
			_, err := db.Get("ns", key)
			require.NoError(b, err)
		}
	}

	b.Run("100", func(b *testing.B) {
		runBenchmark(b, 100)
	})
	b.Run("10000", func(b *testing.B) {
		runBenchmark(b, 10000)
	})
	b.Run("1000000", func(b *testing.B) {
		runBenchmark(b, 1000000)
	})
}
