// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package factory

import (
	"context"

	"github.com/iotexproject/go-pkgs/hash"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-worldsale/action"
	"github.com/iotexproject/iotex-worldsale/action/protocol"
	"github.com/iotexproject/iotex-worldsale/db"
	"github.com/iotexproject/iotex-worldsale/pkg/log"
	"github.com/iotexproject/iotex-worldsale/pkg/util/byteutil"
	"github.com/iotexproject/iotex-worldsale/state"
)

var (
	stateDBMtc = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "iotex_worldsale_state_db",
			Help: "World sale state DB operations",
		},
		[]string{"type"},
	)
	dbBatchSizelMtc = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "iotex_worldsale_db_batch_size",
			Help: "DB batch size of the last committed block",
		},
	)
)

func init() {
	prometheus.MustRegister(stateDBMtc)
	prometheus.MustRegister(dbBatchSizelMtc)
}

// ErrNoHandler indicates no registered protocol accepts the action
var ErrNoHandler = errors.New("no protocol handles the action")

type (
	// WorkingSet defines an interface for working set of states changes
	WorkingSet interface {
		protocol.StateManager
		// RunActions runs the actions of a block, each one atomically
		RunActions(context.Context, []*action.Envelope) ([]*action.Receipt, error)
		// Finalize runs the block finalizers and stamps the block height and hash
		Finalize(context.Context, hash.Hash256) ([]*action.Log, error)
		// Commit persists the pending changes into the underlying DB
		Commit() error
	}

	// workingSet implements WorkingSet interface, tracks pending changes to states in local cache
	workingSet struct {
		finalized   bool
		blockHeight uint64
		cb          db.CachedBatch // cached batch for pending writes
		dao         db.KVStore     // the underlying DB for state storage
	}
)

func newWorkingSet(height uint64, kv db.KVStore) *workingSet {
	return &workingSet{
		blockHeight: height,
		cb:          db.NewCachedBatch(),
		dao:         kv,
	}
}

// Height returns the Height of the block being worked on
func (ws *workingSet) Height() (uint64, error) {
	return ws.blockHeight, nil
}

// RunActions runs actions in the block and track pending changes in working set
func (ws *workingSet) RunActions(ctx context.Context, elps []*action.Envelope) ([]*action.Receipt, error) {
	receipts := make([]*action.Receipt, 0, len(elps))
	for _, elp := range elps {
		receipt, err := ws.runAction(ctx, elp)
		if err != nil {
			return nil, errors.Wrap(err, "error when run action")
		}
		receipts = append(receipts, receipt)
	}
	return receipts, nil
}

func (ws *workingSet) runAction(ctx context.Context, elp *action.Envelope) (*action.Receipt, error) {
	if ws.finalized {
		return nil, errors.Errorf("cannot run action on a finalized working set")
	}
	blkCtx := protocol.MustGetBlockCtx(ctx)
	if blkCtx.BlockHeight != ws.blockHeight {
		return nil, errors.Errorf(
			"invalid block height %d, %d expected",
			blkCtx.BlockHeight,
			ws.blockHeight,
		)
	}
	reg, ok := protocol.GetRegistry(ctx)
	if !ok {
		return nil, errors.New("missing protocol registry in context")
	}
	if elp == nil {
		return nil, action.ErrNilAction
	}
	actHash, err := elp.Hash()
	if err != nil {
		return nil, err
	}
	ctx = protocol.WithActionCtx(ctx, protocol.ActionCtx{
		Caller:     elp.Caller(),
		ActionHash: actHash,
		Origin:     elp.Origin(),
	})
	if err := elp.SanityCheck(); err != nil {
		return ws.failureReceipt(ctx, elp, err), nil
	}

	snapshot := ws.Snapshot()
	for _, p := range reg.All() {
		receipt, err := p.Handle(ctx, elp.Action(), ws)
		if err != nil {
			if revertErr := ws.Revert(snapshot); revertErr != nil {
				return nil, errors.Wrap(revertErr, "failed to revert a failed action")
			}
			return ws.failureReceipt(ctx, elp, err), nil
		}
		if receipt != nil {
			return receipt, nil
		}
	}
	return ws.failureReceipt(ctx, elp, ErrNoHandler), nil
}

func (ws *workingSet) failureReceipt(ctx context.Context, elp *action.Envelope, cause error) *action.Receipt {
	log.L().Debug("Action failed.",
		zap.String("action", action.Name(elp.Action())),
		zap.String("caller", elp.Caller().String()),
		zap.Uint64("nonce", elp.Nonce()),
		zap.Error(cause),
	)
	return protocol.NewReceipt(ctx, action.FailureReceiptStatus, "", nil).SetRevertMsg(cause.Error())
}

// Finalize runs every block finalizer in registration order and persists the block height and hash
func (ws *workingSet) Finalize(ctx context.Context, blkHash hash.Hash256) ([]*action.Log, error) {
	if ws.finalized {
		return nil, errors.New("cannot finalize a working set twice")
	}
	logs := make([]*action.Log, 0)
	if reg, ok := protocol.GetRegistry(ctx); ok {
		for _, p := range reg.All() {
			fp, ok := p.(protocol.Finalizer)
			if !ok {
				continue
			}
			l, err := fp.Finalize(ctx, ws)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to finalize block by protocol %s", p.Name())
			}
			logs = append(logs, l...)
		}
	}
	for i, l := range logs {
		l.BlockHeight = ws.blockHeight
		l.Index = uint32(i)
	}
	ws.finalized = true
	ws.cb.Put(
		SystemNamespace,
		[]byte(CurrentHeightKey),
		byteutil.Uint64ToBytesBigEndian(ws.blockHeight),
		"failed to store current height %d",
		ws.blockHeight,
	)
	ws.cb.Put(SystemNamespace, []byte(TipHashKey), blkHash[:], "failed to store tip hash %x", blkHash)
	return logs, nil
}

// Snapshot takes a snapshot of the pending changes
func (ws *workingSet) Snapshot() int {
	return ws.cb.Snapshot()
}

// Revert discards the pending changes made after the snapshot
func (ws *workingSet) Revert(snapshot int) error {
	return ws.cb.Revert(snapshot)
}

// Commit persists all changes in RunActions() into the DB
func (ws *workingSet) Commit() error {
	if !ws.finalized {
		return errors.New("cannot commit a working set before finalizing it")
	}
	dbBatchSizelMtc.Set(float64(ws.cb.Size()))
	if err := ws.dao.Commit(ws.cb); err != nil {
		return errors.Wrap(err, "failed to commit all changes to underlying DB in a batch")
	}
	ws.cb.Clear()
	return nil
}

// State pulls a state from the pending changes, falling back to the DB
func (ws *workingSet) State(s interface{}, opts ...protocol.StateOption) (uint64, error) {
	stateDBMtc.WithLabelValues("get").Inc()
	cfg, err := protocol.CreateStateConfig(opts...)
	if err != nil {
		return ws.blockHeight, err
	}
	data, err := ws.cb.Get(cfg.Namespace, cfg.Key)
	switch errors.Cause(err) {
	case nil:
	case db.ErrAlreadyDeleted:
		return ws.blockHeight, errors.Wrapf(state.ErrStateNotExist, "ns = %s key = %x", cfg.Namespace, cfg.Key)
	case db.ErrNotExist:
		if data, err = readState(ws.dao, cfg); err != nil {
			return ws.blockHeight, err
		}
	default:
		return ws.blockHeight, err
	}
	return ws.blockHeight, state.Deserialize(s, data)
}

// PutState puts a state into the pending changes
func (ws *workingSet) PutState(s interface{}, opts ...protocol.StateOption) (uint64, error) {
	stateDBMtc.WithLabelValues("put").Inc()
	cfg, err := protocol.CreateStateConfig(opts...)
	if err != nil {
		return ws.blockHeight, err
	}
	ss, err := state.Serialize(s)
	if err != nil {
		return ws.blockHeight, errors.Wrapf(err, "failed to convert state %v to bytes", s)
	}
	ws.cb.Put(cfg.Namespace, cfg.Key, ss, "error when putting k = %x", cfg.Key)
	return ws.blockHeight, nil
}

// DelState deletes a state from the pending changes
func (ws *workingSet) DelState(opts ...protocol.StateOption) (uint64, error) {
	stateDBMtc.WithLabelValues("delete").Inc()
	cfg, err := protocol.CreateStateConfig(opts...)
	if err != nil {
		return ws.blockHeight, err
	}
	ws.cb.Delete(cfg.Namespace, cfg.Key, "error when deleting k = %x", cfg.Key)
	return ws.blockHeight, nil
}

func readState(kv db.KVStore, cfg *protocol.StateConfig) ([]byte, error) {
	data, err := kv.Get(cfg.Namespace, cfg.Key)
	if err != nil {
		if errors.Cause(err) == db.ErrNotExist || errors.Cause(err) == db.ErrBucketNotExist {
			return nil, errors.Wrapf(state.ErrStateNotExist, "ns = %s key = %x", cfg.Namespace, cfg.Key)
		}
		return nil, err
	}
	return data, nil
}
