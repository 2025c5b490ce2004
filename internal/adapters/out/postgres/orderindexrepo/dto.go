// Package orderindexrepo persists the per-customer order index. Each row binds
// an order identifier to its owner at a monotonically growing position, so
// listings replay orders in the sequence they were created.
package orderindexrepo

// OrderIndexEntryDTO represents one index row.
// Position is assigned per customer and never reused.
type OrderIndexEntryDTO struct {
	CustomerID string `gorm:"primaryKey"`
	Position   int64  `gorm:"primaryKey;autoIncrement:false"`
	OrderID    string
	SizeBytes  int64
}

// TableName specifies the database table name for index entries.
func (OrderIndexEntryDTO) TableName() string {
	return "order_index_entries"
}

// sizeBytes computes the deterministic storage footprint of the row.
func (dto OrderIndexEntryDTO) sizeBytes() int64 {
	return int64(len(dto.CustomerID)+len(dto.OrderID)) + 8
}
