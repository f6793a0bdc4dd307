package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// fakeRowScanner implements RowScanner for tests.
type fakeRowScanner struct {
	rows []fakeRow
	i    int
	err  error
}

type fakeRow struct {
	values []any
}

func (f *fakeRowScanner) Next() bool {
	return f.i < len(f.rows)
}

func (f *fakeRowScanner) Scan(dest ...any) error {
	if f.i >= len(f.rows) {
		return errors.New("no more rows")
	}
	row := f.rows[f.i]
	if len(dest) != len(row.values) {
		return errors.New("dest length mismatch")
	}
	for i := range dest {
		if err := assign(dest[i], row.values[i]); err != nil {
			return fmt.Errorf("column %d: %w", i, err)
		}
	}
	f.i++
	return nil
}

func assign(dest, v any) error {
	switch d := dest.(type) {
	case sql.Scanner:
		return d.Scan(v)
	case *int64:
		x, ok := v.(int64)
		if !ok {
			return errors.New("type assertion to int64 failed")
		}
		*d = x
	case *float64:
		x, ok := v.(float64)
		if !ok {
			return errors.New("type assertion to float64 failed")
		}
		*d = x
	case *string:
		x, ok := v.(string)
		if !ok {
			return errors.New("type assertion to string failed")
		}
		*d = x
	case *bool:
		x, ok := v.(bool)
		if !ok {
			return errors.New("type assertion to bool failed")
		}
		*d = x
	case *[]byte:
		x, ok := v.([]byte)
		if !ok {
			return errors.New("type assertion to []byte failed")
		}
		*d = x
	case *time.Time:
		x, ok := v.(time.Time)
		if !ok {
			return errors.New("type assertion to time.Time failed")
		}
		*d = x
	default:
		return errors.New("unsupported dest type")
	}
	return nil
}

func (f *fakeRowScanner) Err() error {
	return f.err
}

func (f *fakeRowScanner) Close() error {
	return nil
}

// fakeDB implements DB interface.
type fakeDB struct {
	QueryFn   func(ctx context.Context, query string, args ...any) (RowScanner, error)
	ExecFn    func(ctx context.Context, query string, args ...any) (int64, error)
	lastQuery string
	lastArgs  []any
	called    bool
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	f.called = true
	f.lastQuery = query
	f.lastArgs = args
	if f.QueryFn != nil {
		return f.QueryFn(ctx, query, args...)
	}
	return &fakeRowScanner{}, nil
}

func (f *fakeDB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	f.called = true
	f.lastQuery = query
	f.lastArgs = args
	if f.ExecFn != nil {
		return f.ExecFn(ctx, query, args...)
	}
	return 1, nil
}
