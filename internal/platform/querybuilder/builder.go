// Package querybuilder renders the handful of postgres statements the snapshot store issues.
// Values are always bound as $n placeholders; identifiers come from code, never from input.
package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// Args collects bound values in placeholder order.
type Args struct {
	values []any
}

func (a *Args) bind(v any) string {
	a.values = append(a.values, v)
	return "$" + strconv.Itoa(len(a.values))
}

// Condition renders one WHERE predicate, binding its values into args.
type Condition func(args *Args) string

func Eq(column string, value any) Condition {
	return func(args *Args) string {
		return column + " = " + args.bind(value)
	}
}

func IsNull(column string) Condition {
	return func(*Args) string {
		return column + " IS NULL"
	}
}

func writeWhere(buf *strings.Builder, conditions []Condition, args *Args) {
	for i, cond := range conditions {
		if i == 0 {
			buf.WriteString(" WHERE ")
		} else {
			buf.WriteString(" AND ")
		}
		buf.WriteString(cond(args))
	}
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	var (
		buf  strings.Builder
		args Args
	)
	buf.WriteString("SELECT ")
	buf.WriteString(strings.Join(b.columns, ", "))
	buf.WriteString(" FROM ")
	buf.WriteString(b.table)
	writeWhere(&buf, b.where, &args)
	if len(b.orderBy) > 0 {
		buf.WriteString(" ORDER BY ")
		buf.WriteString(strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		buf.WriteString(" LIMIT ")
		buf.WriteString(strconv.Itoa(b.limit))
	}

	return buf.String(), args.values, nil
}

// UpsertBuilder inserts one row taken from a db-tagged struct and, on conflict, overwrites
// every non-key column with the incoming value.
type UpsertBuilder struct {
	table    string
	model    any
	target   string
	keys     []string
	touchCol string
}

func Upsert(table string, model any) *UpsertBuilder {
	return &UpsertBuilder{table: table, model: model}
}

// OnConflict sets the conflict target, e.g. "(name) WHERE deleted_at IS NULL". Key columns
// are left untouched by the update.
func (b *UpsertBuilder) OnConflict(target string, keys ...string) *UpsertBuilder {
	b.target = strings.TrimSpace(target)
	b.keys = append([]string(nil), keys...)
	return b
}

// Touch stamps column with NOW() when an existing row is updated.
func (b *UpsertBuilder) Touch(column string) *UpsertBuilder {
	b.touchCol = column
	return b
}

func (b *UpsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("upsert table is required")
	}
	cols, vals, err := modelColumns(b.model)
	if err != nil {
		return "", nil, err
	}

	var (
		buf  strings.Builder
		args Args
	)
	buf.WriteString("INSERT INTO ")
	buf.WriteString(b.table)
	buf.WriteString(" (")
	buf.WriteString(strings.Join(cols, ", "))
	buf.WriteString(") VALUES (")
	for i, v := range vals {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(args.bind(v))
	}
	buf.WriteString(")")

	if b.target == "" {
		return buf.String(), args.values, nil
	}

	sets := make([]string, 0, len(cols)+1)
	for _, col := range cols {
		if contains(b.keys, col) {
			continue
		}
		sets = append(sets, col+" = EXCLUDED."+col)
	}
	if b.touchCol != "" {
		sets = append(sets, b.touchCol+" = NOW()")
	}
	buf.WriteString(" ON CONFLICT ")
	buf.WriteString(b.target)
	if len(sets) == 0 {
		buf.WriteString(" DO NOTHING")
	} else {
		buf.WriteString(" DO UPDATE SET ")
		buf.WriteString(strings.Join(sets, ", "))
	}

	return buf.String(), args.values, nil
}

type UpdateBuilder struct {
	table string
	sets  []string
	where []Condition
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

// SetExpr assigns a raw SQL expression such as NOW().
func (b *UpdateBuilder) SetExpr(column, expr string) *UpdateBuilder {
	b.sets = append(b.sets, column+" = "+expr)
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("update table is required")
	}
	if len(b.sets) == 0 {
		return "", nil, fmt.Errorf("update sets are required")
	}

	var (
		buf  strings.Builder
		args Args
	)
	buf.WriteString("UPDATE ")
	buf.WriteString(b.table)
	buf.WriteString(" SET ")
	buf.WriteString(strings.Join(b.sets, ", "))
	writeWhere(&buf, b.where, &args)

	return buf.String(), args.values, nil
}

func contains(items []string, v string) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}
