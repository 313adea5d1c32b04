package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderState_Clone(t *testing.T) {
	original := OrderState{
		LineItems: []LineItem{
			{LineID: "line-1", UnitPrice: decimal.NewFromInt(48), Quantity: 1},
		},
		MatrixQuantities: map[MatrixKey]int{
			{MenuID: "m", RowID: "r", ColumnID: "c"}: 2,
		},
		Touched: map[TouchedField]bool{TouchedEmail: true},
	}

	clone := original.Clone()
	clone.LineItems[0].Quantity = 9
	clone.MatrixQuantities[MatrixKey{MenuID: "m", RowID: "r", ColumnID: "c"}] = 7
	clone.Touched[TouchedPhone] = true

	assert.Equal(t, 1, original.LineItems[0].Quantity)
	assert.Equal(t, 2, original.MatrixQuantities[MatrixKey{MenuID: "m", RowID: "r", ColumnID: "c"}])
	assert.False(t, original.Touched[TouchedPhone])
}

func TestOrderState_LineByID(t *testing.T) {
	state := OrderState{LineItems: []LineItem{{LineID: "line-1"}}}

	line, ok := state.LineByID("line-1")
	require.True(t, ok)
	assert.Equal(t, "line-1", line.LineID)

	_, ok = state.LineByID("line-2")
	assert.False(t, ok)
}

func TestLineItem_Editable(t *testing.T) {
	assert.True(t, LineItem{Source: SourceCatalog}.Editable())
	assert.False(t, LineItem{Source: SourceMatrix}.Editable())
}
