package domain

// Spend dataset column names. The set is fixed; group and filter
// operations only accept columns listed here.
const (
	ColSupplier  = "Supplier"
	ColCommodity = "Commodity"
	ColRegion    = "Region"
	ColMonth     = "Month"
	ColSpendUSD  = "Spend (USD)"
)

// SpendRecord represents one row of the spend dataset
type SpendRecord struct {
	Supplier  string  `json:"Supplier"`
	Commodity string  `json:"Commodity"`
	Region    string  `json:"Region"`
	Month     string  `json:"Month"`
	SpendUSD  float64 `json:"Spend (USD)"`
}

// Row is one dataset row keyed by column name, as served by /api/data
type Row map[string]any

// Schema is the declared, ordered column set of the dataset
type Schema []string

// SpendSchema returns the declared schema of the spend dataset
func SpendSchema() Schema {
	return Schema{ColSupplier, ColCommodity, ColRegion, ColMonth, ColSpendUSD}
}

// Validate checks that a row carries every declared column
func (s Schema) Validate(row Row) error {
	for _, col := range s {
		if _, ok := row[col]; !ok {
			return ErrSchemaMismatch
		}
	}
	return nil
}

// InferSchema derives a schema from the first row of a fetched dataset.
// The order is not meaningful for map-shaped rows, so the declared
// spend schema is preferred whenever the row matches it.
func InferSchema(rows []Row) Schema {
	if len(rows) == 0 {
		return nil
	}
	declared := SpendSchema()
	if declared.Validate(rows[0]) == nil {
		return declared
	}
	schema := make(Schema, 0, len(rows[0]))
	for col := range rows[0] {
		schema = append(schema, col)
	}
	return schema
}

// GroupableColumns lists the columns a grouped-spend query may use
func GroupableColumns() []string {
	return []string{ColSupplier, ColCommodity, ColRegion, ColMonth}
}
