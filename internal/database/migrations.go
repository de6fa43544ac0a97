package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds query-path indexes that AutoMigrate does not create.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		{"leases", "idx_leases_tenant_created", "tenant_id, created_at"},
		{"leases", "idx_leases_end_date", "end_date"},
		{"maintenance_requests", "idx_maintenance_property_status", "property_id, status"},
		{"tasks", "idx_tasks_archived_created", "is_archived, created_at"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.table, idx.name) {
			continue
		}
		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
