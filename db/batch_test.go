// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package db

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestCachedBatch(t *testing.T) {
	require := require.New(t)

	cb := NewCachedBatch()
	cb.Put(bucket1, testK1[0], testV1[0], "")
	v, err := cb.Get(bucket1, testK1[0])
	require.NoError(err)
	require.Equal(testV1[0], v)
	v, err = cb.Get(bucket1, testK2[0])
	require.Equal(ErrNotExist, err)
	require.Nil(v)

	cb.Delete(bucket1, testK2[0], "")
	cb.Delete(bucket1, testK1[0], "")
	_, err = cb.Get(bucket1, testK1[0])
	require.Equal(ErrAlreadyDeleted, errors.Cause(err))

	w, err := cb.Entry(1)
	require.NoError(err)
	require.Equal(bucket1, w.namespace)
	require.Equal(testK2[0], w.key)
	require.Nil(w.value)
	require.Equal(Delete, w.writeType)

	_, err = cb.Entry(3)
	require.Equal(ErrInvalid, errors.Cause(err))

	cb.Clear()
	require.Zero(cb.Size())
	_, err = cb.Get(bucket1, testK1[0])
	require.Equal(ErrNotExist, err)
}

func TestSnapshot(t *testing.T) {
	require := require.New(t)

	cb := NewCachedBatch()
	cb.Put(bucket1, testK1[0], testV1[0], "")
	cb.Put(bucket1, testK1[1], testV1[1], "")
	s0 := cb.Snapshot()
	require.Equal(0, s0)
	require.Equal(2, cb.Size())

	cb.Put(bucket1, testK1[0], testV1[2], "")
	cb.Delete(bucket1, testK1[1], "")
	s1 := cb.Snapshot()
	require.Equal(1, s1)
	cb.Put(bucket2, testK2[0], testV2[0], "")
	require.Equal(5, cb.Size())

	// revert to s1
	require.NoError(cb.Revert(s1))
	require.Equal(4, cb.Size())
	_, err := cb.Get(bucket2, testK2[0])
	require.Equal(ErrNotExist, err)
	v, err := cb.Get(bucket1, testK1[0])
	require.NoError(err)
	require.Equal(testV1[2], v)
	_, err = cb.Get(bucket1, testK1[1])
	require.Equal(ErrAlreadyDeleted, err)

	// revert to s0, s1 is dropped
	require.NoError(cb.Revert(s0))
	require.Equal(2, cb.Size())
	v, err = cb.Get(bucket1, testK1[0])
	require.NoError(err)
	require.Equal(testV1[0], v)
	v, err = cb.Get(bucket1, testK1[1])
	require.NoError(err)
	require.Equal(testV1[1], v)
	require.Equal(ErrInvalid, errors.Cause(cb.Revert(s1)))

	// the same snapshot can be reverted to twice
	cb.Put(bucket1, testK1[2], testV1[2], "")
	require.NoError(cb.Revert(s0))
	_, err = cb.Get(bucket1, testK1[2])
	require.Equal(ErrNotExist, err)

	// next snapshot reuses the tag after s0
	require.Equal(1, cb.Snapshot())
}
