package postgres

import "time"

const snapshotTable = "dataset_snapshots"

type snapshotModel struct {
	Name          string    `db:"name"`
	SchemaVersion int       `db:"schema_version"`
	SeedVersion   int       `db:"seed_version"`
	RowCount      int       `db:"row_count"`
	Payload       string    `db:"payload"`
	GeneratedAt   time.Time `db:"generated_at"`
}

type snapshotInfoModel struct {
	Name          string    `db:"name"`
	SchemaVersion int       `db:"schema_version"`
	SeedVersion   int       `db:"seed_version"`
	RowCount      int       `db:"row_count"`
	GeneratedAt   time.Time `db:"generated_at"`
	SizeBytes     int64     `db:"size_bytes"`
}
