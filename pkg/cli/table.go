/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vendstack/coffeemaker/pkg/inventory"
	"github.com/vendstack/coffeemaker/pkg/purchase"
	"github.com/vendstack/coffeemaker/pkg/recipe"
)

const emptyCell = "-"

var titleCaser = cases.Title(language.English)

// columns implements serializer.Tabular over precomputed cells.
type columns struct {
	header []string
	rows   [][]string
}

func (c columns) TableHeader() []string { return c.header }
func (c columns) TableRows() [][]string { return c.rows }

func ingredientHeaders() []string {
	out := make([]string, len(inventory.Ingredients))
	for i, ingredient := range inventory.Ingredients {
		out[i] = titleCaser.String(ingredient)
	}
	return out
}

func menuTable(slots []*recipe.Recipe) columns {
	header := append([]string{"Slot", "Name", "Price"}, ingredientHeaders()...)
	rows := make([][]string, 0, len(slots))
	for i, r := range slots {
		row := []string{strconv.Itoa(i + 1)}
		if r == nil {
			for range header[1:] {
				row = append(row, emptyCell)
			}
			rows = append(rows, row)
			continue
		}
		req := r.Requirement()
		row = append(row,
			r.Name,
			strconv.Itoa(r.Price),
			strconv.Itoa(req.Coffee),
			strconv.Itoa(req.Milk),
			strconv.Itoa(req.Sugar),
			strconv.Itoa(req.Chocolate),
		)
		rows = append(rows, row)
	}
	return columns{header: header, rows: rows}
}

func stockTable(s inventory.Stock) columns {
	rows := make([][]string, 0, len(inventory.Ingredients))
	for _, ingredient := range inventory.Ingredients {
		units, _ := s.Get(ingredient)
		rows = append(rows, []string{titleCaser.String(ingredient), strconv.Itoa(units)})
	}
	return columns{header: []string{"Ingredient", "Units"}, rows: rows}
}

func resultTable(res purchase.Result) columns {
	receipt := emptyCell
	if res.Receipt != nil {
		receipt = res.Receipt.ID.String()
	}
	return columns{
		header: []string{"Outcome", "Change", "Receipt"},
		rows:   [][]string{{string(res.Outcome), strconv.Itoa(res.Change), receipt}},
	}
}
