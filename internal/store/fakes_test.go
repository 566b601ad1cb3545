package store

import (
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeRow feeds canned values (or an error) into a single Scan call.
type fakeRow struct {
	vals    []any
	scanErr error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	assign(dest, r.vals)
	return nil
}

// fakeRows implements pgx.Rows over a fixed value grid.
type fakeRows struct {
	grid    [][]any
	idx     int
	scanErr error
	rowsErr error
}

func (f *fakeRows) Close()                                       {}
func (f *fakeRows) Err() error                                   { return f.rowsErr }
func (f *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (f *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (f *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (f *fakeRows) RawValues() [][]byte                          { return nil }
func (f *fakeRows) Conn() *pgx.Conn                              { return nil }

func (f *fakeRows) Next() bool {
	f.idx++
	return f.idx <= len(f.grid)
}

func (f *fakeRows) Scan(dest ...any) error {
	if f.scanErr != nil {
		return f.scanErr
	}
	assign(dest, f.grid[f.idx-1])
	return nil
}

func assign(dest, vals []any) {
	for i, d := range dest {
		if vals[i] == nil {
			continue
		}
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(vals[i]))
	}
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
