package postgres

import (
	"context"

	"gorm.io/gorm"
)

// meteredTables are the tables whose rows count against the ledger's storage
// footprint. The transfer outbox is excluded: pending refunds are a dispatch
// queue, not ledger state the caller pays to keep.
var meteredTables = []string{
	"orders",
	"order_index_entries",
	"customers",
	"admins",
}

// GormStorageMeter reports the ledger's storage footprint by summing the
// precomputed size_bytes column of every metered table. Rows carry their own
// deterministic size, so the reading does not depend on database internals
// and two nodes always meter the same call identically.
type GormStorageMeter struct {
	db *gorm.DB
}

// NewGormStorageMeter creates a storage meter bound to the given connection.
// Pass a transaction handle to make the reading include uncommitted writes.
func NewGormStorageMeter(db *gorm.DB) *GormStorageMeter {
	return &GormStorageMeter{db: db}
}

// UsedBytes returns the total storage footprint in bytes.
func (m *GormStorageMeter) UsedBytes(ctx context.Context) (uint64, error) {
	var total uint64
	for _, table := range meteredTables {
		var sum uint64
		err := m.db.WithContext(ctx).
			Table(table).
			Select("COALESCE(SUM(size_bytes), 0)").
			Scan(&sum).Error
		if err != nil {
			return 0, err
		}
		total += sum
	}

	return total, nil
}
