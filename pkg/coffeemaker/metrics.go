// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package coffeemaker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vendstack/coffeemaker/pkg/purchase"
)

var (
	// Purchase metrics
	purchasesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coffeemaker_purchases_total",
			Help: "Total number of purchase attempts by outcome",
		},
		[]string{"outcome"},
	)

	changeReturned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "coffeemaker_change_returned_units_total",
			Help: "Total currency units returned to buyers as change or refund",
		},
	)
)

func init() {
	for _, o := range purchase.Outcomes {
		purchasesTotal.WithLabelValues(o.String())
	}
}

func recordPurchase(res purchase.Result) {
	purchasesTotal.WithLabelValues(res.Outcome.String()).Inc()
	if res.Change > 0 {
		changeReturned.Add(float64(res.Change))
	}
}
