// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package nftsale

import "github.com/prometheus/client_golang/prometheus"

var _actionMtc = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "iotex_worldsale_action",
		Help: "World sale actions handled, by type and result",
	},
	[]string{"type", "result"},
)

func init() {
	prometheus.MustRegister(_actionMtc)
}
