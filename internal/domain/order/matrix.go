package order

import (
	"fmt"

	"github.com/shopspring/decimal"

	"bakehouse/internal/domain/entity"
)

// MatrixSelection is one matrix cell with a positive quantity, staged to
// become its own cart line.
type MatrixSelection struct {
	RowID       string
	RowLabel    string
	ColumnID    string
	ColumnLabel string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// CollectMatrixSelections gathers every cell with quantity above zero for
// the menu's grid in row-major order. A non-empty rowID restricts the
// collection to that row, which is the per-row add affordance.
func CollectMatrixSelections(menu entity.Menu, quantities map[entity.MatrixKey]int, rowID string) []MatrixSelection {
	if menu.Matrix == nil {
		return nil
	}

	var selections []MatrixSelection
	for _, row := range menu.Matrix.Rows {
		if rowID != "" && row.ID != rowID {
			continue
		}
		for _, column := range menu.Matrix.Columns {
			key := entity.MatrixKey{MenuID: menu.ID, RowID: row.ID, ColumnID: column.ID}
			quantity := quantities[key]
			if quantity <= 0 {
				continue
			}
			selections = append(selections, MatrixSelection{
				RowID:       row.ID,
				RowLabel:    row.Label,
				ColumnID:    column.ID,
				ColumnLabel: column.Label,
				Quantity:    quantity,
				UnitPrice:   column.Price,
			})
		}
	}

	return selections
}

// BuildMatrixLine flattens one selection into a committed line with a
// synthesized display name. Matrix lines carry no item id and cannot be
// re-opened for editing.
func BuildMatrixLine(menu entity.Menu, selection MatrixSelection) entity.LineItem {
	return entity.LineItem{
		LineID:    NewLineID(),
		MenuID:    menu.ID,
		MenuTitle: menu.Title,
		ItemName:  fmt.Sprintf("%s — %s (%s)", menu.Title, selection.RowLabel, selection.ColumnLabel),
		UnitPrice: selection.UnitPrice,
		Quantity:  selection.Quantity,
		Source:    entity.SourceMatrix,
	}
}
