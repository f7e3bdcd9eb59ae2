package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/dataset"
	"github.com/riskibarqy/afcon-dashboard/internal/platform/logging"
	qb "github.com/riskibarqy/afcon-dashboard/internal/platform/querybuilder"
	"github.com/riskibarqy/afcon-dashboard/internal/platform/resilience"
)

// ErrUnavailable is returned while the circuit breaker rejects database calls.
var ErrUnavailable = errors.New("dataset database is temporarily unavailable")

var payloadJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// Store persists one live row per dataset name in dataset_snapshots. Saving a regenerated
// dataset overwrites that row in place; Delete only soft-deletes it.
type Store struct {
	db      *sqlx.DB
	logger  *logging.Logger
	breaker *resilience.CircuitBreaker
	now     func() time.Time
}

func NewStore(db *sqlx.DB, breakerCfg resilience.CircuitBreakerConfig, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}

	breaker := resilience.NewCircuitBreaker(breakerCfg, isNeutralDBError)
	breaker.OnStateChange(func(from, to resilience.CircuitState) {
		logger.Warn("dataset store circuit state changed", "from", from, "to", to)
	})

	return &Store{
		db:      db,
		logger:  logger,
		breaker: breaker,
		now:     time.Now,
	}
}

// isNeutralDBError reports outcomes that say nothing about database health.
func isNeutralDBError(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, context.Canceled)
}

func (s *Store) Load(ctx context.Context, key dataset.Key, out any) (bool, error) {
	if err := key.Validate(); err != nil {
		return false, err
	}

	query, args, err := qb.Select("name", "schema_version", "seed_version", "row_count", "payload::text AS payload", "generated_at").
		From(snapshotTable).
		Where(qb.Eq("name", key.Name), qb.IsNull("deleted_at")).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build select dataset snapshot query: %w", err)
	}

	var row snapshotModel
	err = s.guard(ctx, func() error {
		return s.db.GetContext(ctx, &row, query, args...)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("select dataset snapshot %s: %w", key, err)
	}

	stored := dataset.Envelope{Dataset: row.Name, SchemaVersion: row.SchemaVersion, SeedVersion: row.SeedVersion}
	if !stored.Matches(key) {
		return false, crerr.Mark(
			crerr.Newf("dataset %s: stored as %s@s%d.g%d", key, row.Name, row.SchemaVersion, row.SeedVersion),
			dataset.ErrSchemaMismatch,
		)
	}
	if err := payloadJSON.UnmarshalFromString(row.Payload, out); err != nil {
		return false, crerr.Mark(crerr.Wrapf(err, "decode dataset %s", key), dataset.ErrCorrupt)
	}

	return true, nil
}

func (s *Store) Save(ctx context.Context, key dataset.Key, records any, rows int) error {
	if err := key.Validate(); err != nil {
		return err
	}

	payload, err := payloadJSON.MarshalToString(records)
	if err != nil {
		return fmt.Errorf("encode dataset %s: %w", key, err)
	}

	model := snapshotModel{
		Name:          key.Name,
		SchemaVersion: key.SchemaVersion,
		SeedVersion:   key.SeedVersion,
		RowCount:      rows,
		Payload:       payload,
		GeneratedAt:   s.now().UTC(),
	}
	query, args, err := upsertSnapshotQuery(model)
	if err != nil {
		return fmt.Errorf("build upsert dataset snapshot query: %w", err)
	}

	err = s.guard(ctx, func() error {
		_, execErr := s.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("upsert dataset snapshot %s: %w", key, err)
	}

	return nil
}

func upsertSnapshotQuery(model snapshotModel) (string, []any, error) {
	return qb.Upsert(snapshotTable, model).
		OnConflict("(name) WHERE deleted_at IS NULL", "name").
		Touch("updated_at").
		ToSQL()
}

func (s *Store) Delete(ctx context.Context, key dataset.Key) error {
	if err := key.ValidateName(); err != nil {
		return err
	}

	query, args, err := qb.Update(snapshotTable).
		SetExpr("deleted_at", "NOW()").
		Where(qb.Eq("name", key.Name), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete dataset snapshot query: %w", err)
	}

	err = s.guard(ctx, func() error {
		_, execErr := s.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("delete dataset snapshot %s: %w", key, err)
	}
	return nil
}

func (s *Store) List(ctx context.Context) ([]dataset.Info, error) {
	query, args, err := qb.Select("name", "schema_version", "seed_version", "row_count", "generated_at", "octet_length(payload::text) AS size_bytes").
		From(snapshotTable).
		Where(qb.IsNull("deleted_at")).
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list dataset snapshots query: %w", err)
	}

	var rows []snapshotInfoModel
	err = s.guard(ctx, func() error {
		return s.db.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("list dataset snapshots: %w", err)
	}

	out := make([]dataset.Info, 0, len(rows))
	for _, row := range rows {
		out = append(out, dataset.Info{
			Key:         dataset.Key{Name: row.Name, SchemaVersion: row.SchemaVersion, SeedVersion: row.SeedVersion},
			Rows:        row.RowCount,
			GeneratedAt: row.GeneratedAt,
			SizeBytes:   row.SizeBytes,
		})
	}
	return out, nil
}

// guard runs fn behind the circuit breaker.
func (s *Store) guard(ctx context.Context, fn func() error) error {
	err := s.breaker.Execute(fn)
	if errors.Is(err, resilience.ErrCircuitOpen) {
		s.logger.WarnContext(ctx, "dataset store circuit breaker rejected call", "state", s.breaker.State())
		return ErrUnavailable
	}
	return err
}
