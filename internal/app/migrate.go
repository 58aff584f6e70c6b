package app

import "gorm.io/gorm"

// The outbox and counter repositories run raw SQL, so their tables are not
// covered by AutoMigrate.
func migrateSupportTables(db *gorm.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS outbox_events (
			id uuid PRIMARY KEY,
			request_id varchar(100),
			aggregate_type varchar(50) NOT NULL,
			aggregate_id varchar(100) NOT NULL,
			event_type varchar(100) NOT NULL,
			topic varchar(200) NOT NULL,
			payload jsonb NOT NULL,
			status varchar(20) NOT NULL DEFAULT 'pending',
			retry_count int NOT NULL DEFAULT 0,
			error_message varchar(500),
			next_retry_at timestamptz NOT NULL DEFAULT now(),
			processed_at timestamptz,
			created_at timestamptz NOT NULL DEFAULT now(),
			updated_at timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_outbox_events_status_retry
			ON outbox_events (status, next_retry_at)`,
		`CREATE TABLE IF NOT EXISTS counters (
			counter_type varchar(50) PRIMARY KEY,
			last_value bigint NOT NULL DEFAULT 0,
			updated_at timestamptz NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
