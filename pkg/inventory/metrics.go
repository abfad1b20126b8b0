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
package inventory

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Ingredient level metrics
	inventoryUnits = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "coffeemaker_inventory_units",
			Help: "Current units of each ingredient in stock",
		},
		[]string{"ingredient"},
	)

	inventoryRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "coffeemaker_inventory_rejections_total",
			Help: "Total number of inventory replenishments rejected for invalid amounts",
		},
	)
)

func observeStock(s Stock) {
	inventoryUnits.WithLabelValues(Coffee).Set(float64(s.Coffee))
	inventoryUnits.WithLabelValues(Milk).Set(float64(s.Milk))
	inventoryUnits.WithLabelValues(Sugar).Set(float64(s.Sugar))
	inventoryUnits.WithLabelValues(Chocolate).Set(float64(s.Chocolate))
}
