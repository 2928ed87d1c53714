package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaValidate(t *testing.T) {
	schema := SpendSchema()

	full := Row{
		ColSupplier: "SweetCo", ColCommodity: "Sugar", ColRegion: "NA",
		ColMonth: "2024-01", ColSpendUSD: 100.0,
	}
	assert.NoError(t, schema.Validate(full))

	assert.ErrorIs(t, schema.Validate(Row{ColSupplier: "SweetCo"}), ErrSchemaMismatch)
}

func TestInferSchemaPrefersDeclared(t *testing.T) {
	rows := []Row{{
		ColSupplier: "SweetCo", ColCommodity: "Sugar", ColRegion: "NA",
		ColMonth: "2024-01", ColSpendUSD: 100.0,
	}}
	assert.Equal(t, SpendSchema(), InferSchema(rows))
}

func TestInferSchemaFromForeignColumns(t *testing.T) {
	rows := []Row{{"Category": "Sugar", "Amount": 1.0}}
	schema := InferSchema(rows)
	assert.ElementsMatch(t, Schema{"Category", "Amount"}, schema)
}

func TestInferSchemaEmpty(t *testing.T) {
	assert.Nil(t, InferSchema(nil))
}
