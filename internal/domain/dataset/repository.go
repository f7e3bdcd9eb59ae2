package dataset

import "context"

// Store persists generated datasets. Load decodes the records of key into out and reports
// whether a snapshot existed.
type Store interface {
	Load(ctx context.Context, key Key, out any) (bool, error)
	Save(ctx context.Context, key Key, records any, rows int) error
	Delete(ctx context.Context, key Key) error
	List(ctx context.Context) ([]Info, error)
}
