// Package sqlbuilder assembles SQL SELECT statement text for MariaDB and
// Oracle. It handles the vendor differences in identifier quoting, index
// hints, pagination syntax, and date-literal formatting, and nothing more:
// it is a convenience layer over string concatenation, not a parser or an
// execution engine.
//
// Two builders are provided. QueryBuilder splices literal values directly
// into the statement text and renders a single final string; it is the right
// tool for generated reports, logged diagnostics, and other places where the
// complete text is the product. StatementBuilder produces parameterized SQL
// with vendor placeholder formats for callers that bind values through a
// database driver.
package sqlbuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// Condition pairs a column name with the value text it is compared against.
// Depending on the method it is passed to, the value is used verbatim, as a
// date-time literal, or as a placeholder token resolved later via SetValue.
type Condition struct {
	Column string
	Value  string
}

// QueryBuilder accumulates SELECT clauses through fluent calls and renders
// them into one SQL string. The vendor is fixed at construction and every
// clause fragment is rendered at the time of the call that adds it; only
// placeholder substitution is deferred to Render.
//
// A QueryBuilder is a single-use, single-goroutine accumulator. It has no
// internal locking; callers sharing an instance across goroutines must
// serialize access themselves. Render never mutates the builder, so repeated
// renders without intervening calls are safe and return identical strings.
type QueryBuilder struct {
	vendor        Vendor
	selectColumns []string
	tableName     string
	distinct      bool
	whereClauses  []string
	joinClauses   []string
	orderByClause string
	indexHint     string
	limit         int
	offset        int
	values        map[string]string
}

// New creates a query builder for the specified database vendor.
func New(vendor Vendor) *QueryBuilder {
	return &QueryBuilder{
		vendor: vendor,
		limit:  -1,
		offset: -1,
		values: make(map[string]string),
	}
}

// Vendor returns the database vendor the builder renders for.
func (qb *QueryBuilder) Vendor() Vendor {
	return qb.vendor
}

// Select appends columns to the projection list, quoting reserved identifiers
// according to vendor rules. Repeated calls accumulate columns rather than
// replacing them. Column names are not otherwise validated.
func (qb *QueryBuilder) Select(columns ...string) *QueryBuilder {
	for _, column := range columns {
		qb.selectColumns = append(qb.selectColumns, qb.quoteIdentifier(column))
	}
	return qb
}

// From sets the target table. The name is used verbatim (no quoting); calling
// again overwrites the previous value.
func (qb *QueryBuilder) From(table string) *QueryBuilder {
	qb.tableName = table
	return qb
}

// Distinct marks the projection as DISTINCT. Idempotent.
func (qb *QueryBuilder) Distinct() *QueryBuilder {
	qb.distinct = true
	return qb
}

// Where appends one "column = value" condition per pair. Column names are
// quoted per vendor rules; values are spliced verbatim. Conditions from
// successive calls accumulate and are joined with AND at render time, in
// insertion order.
func (qb *QueryBuilder) Where(conditions ...Condition) *QueryBuilder {
	for _, c := range conditions {
		qb.whereClauses = append(qb.whereClauses, qb.quoteIdentifier(c.Column)+" = "+c.Value)
	}
	return qb
}

// WhereDateTime is Where with each value wrapped as a vendor date-time
// literal: quoted for MariaDB, a TO_TIMESTAMP expression for Oracle. The
// value text itself is not validated against the timestamp format.
func (qb *QueryBuilder) WhereDateTime(conditions ...Condition) *QueryBuilder {
	for _, c := range conditions {
		qb.whereClauses = append(qb.whereClauses, qb.quoteIdentifier(c.Column)+" = "+qb.formatDateTime(c.Value))
	}
	return qb
}

// WhereWithPlaceholder is Where with each value stored as-is, expected to be
// a placeholder token that a later SetValue call resolves during Render.
// Tokens with no matching SetValue are left verbatim in the output.
func (qb *QueryBuilder) WhereWithPlaceholder(conditions ...Condition) *QueryBuilder {
	for _, c := range conditions {
		qb.whereClauses = append(qb.whereClauses, qb.quoteIdentifier(c.Column)+" = "+c.Value)
	}
	return qb
}

// SetValue binds a placeholder token to a value. The value is converted with
// fmt.Sprint, so any type carrying a canonical text form (including
// fmt.Stringer implementations) is accepted. Binding the same token again
// overwrites the previous value.
func (qb *QueryBuilder) SetValue(placeholder string, value any) *QueryBuilder {
	qb.values[placeholder] = fmt.Sprint(value)
	return qb
}

// InnerJoin appends an INNER JOIN clause. Both the table and the ON condition
// are used verbatim.
func (qb *QueryBuilder) InnerJoin(table, onCondition string) *QueryBuilder {
	qb.joinClauses = append(qb.joinClauses, "INNER JOIN "+table+" ON "+onCondition)
	return qb
}

// OrderBy sets the ORDER BY clause to a single column with the given
// direction. The column is quoted per vendor rules. Last call wins; there is
// no multi-column ordering.
func (qb *QueryBuilder) OrderBy(column string, ascending bool) *QueryBuilder {
	direction := " DESC"
	if ascending {
		direction = " ASC"
	}
	qb.orderByClause = qb.quoteIdentifier(column) + direction
	return qb
}

// UseIndex records an index hint, emitted as an inline /*+ INDEX */ comment
// for Oracle and a FORCE INDEX clause for MariaDB. Last call wins.
func (qb *QueryBuilder) UseIndex(indexName string) *QueryBuilder {
	qb.indexHint = indexName
	return qb
}

// Limit sets the maximum row count. Negative values mean no limit.
func (qb *QueryBuilder) Limit(n int) *QueryBuilder {
	qb.limit = n
	return qb
}

// Offset sets the rows to skip. Only MariaDB emits an offset, and only when
// it is positive and a limit is set; Oracle rendering ignores it.
func (qb *QueryBuilder) Offset(n int) *QueryBuilder {
	qb.offset = n
	return qb
}

// Render concatenates the accumulated state into the final SQL string. The
// emission order is a compatibility contract: projection (with the Oracle
// hint comment directly after SELECT), FROM, the MariaDB FORCE INDEX clause,
// joins, WHERE with placeholder substitution, ORDER BY, then vendor
// pagination. Render does not mutate the builder.
//
// Placeholder substitution is a raw text replacement: for each bound token,
// its first occurrence in the joined WHERE text is replaced, once. A token
// that happens to match unrelated text is replaced there instead; the
// iteration order over bound tokens is unspecified.
func (qb *QueryBuilder) Render() string {
	var query strings.Builder
	query.WriteString("SELECT ")

	if qb.vendor == Oracle && qb.indexHint != "" {
		query.WriteString(oracleIndexHint(qb.tableName, qb.indexHint))
	}

	if len(qb.selectColumns) == 0 {
		query.WriteString("*")
	} else {
		if qb.distinct {
			// Historical spacing, kept for output compatibility.
			query.WriteString(" DISTINCT  ")
		}
		query.WriteString(strings.Join(qb.selectColumns, ", "))
	}

	query.WriteString(" FROM ")
	query.WriteString(qb.tableName)

	if qb.vendor == MariaDB && qb.indexHint != "" {
		query.WriteString(mariadbForceIndex(qb.indexHint))
	}

	for _, join := range qb.joinClauses {
		query.WriteString(" ")
		query.WriteString(join)
	}

	if len(qb.whereClauses) > 0 {
		whereClause := strings.Join(qb.whereClauses, " AND ")
		for placeholder, value := range qb.values {
			whereClause = strings.Replace(whereClause, placeholder, value, 1)
		}
		query.WriteString(" WHERE ")
		query.WriteString(whereClause)
	}

	if qb.orderByClause != "" {
		query.WriteString(" ORDER BY ")
		query.WriteString(qb.orderByClause)
	}

	switch qb.vendor {
	case Oracle:
		if qb.limit >= 0 {
			query.WriteString(" FETCH FIRST ")
			query.WriteString(strconv.Itoa(qb.limit))
			query.WriteString(" ROWS ONLY")
		}
	default:
		if qb.limit >= 0 {
			query.WriteString(" LIMIT ")
			query.WriteString(strconv.Itoa(qb.limit))
			if qb.offset > 0 {
				query.WriteString(" OFFSET ")
				query.WriteString(strconv.Itoa(qb.offset))
			}
		}
	}

	return query.String()
}

// quoteIdentifier wraps reserved identifiers in vendor quote characters.
// Non-reserved identifiers pass through unchanged.
func (qb *QueryBuilder) quoteIdentifier(identifier string) string {
	switch qb.vendor {
	case Oracle:
		return oracleQuoteIdentifier(identifier)
	default:
		return mariadbQuoteIdentifier(identifier)
	}
}

// formatDateTime wraps a date-time literal in vendor syntax.
func (qb *QueryBuilder) formatDateTime(value string) string {
	switch qb.vendor {
	case Oracle:
		return oracleTimestampLiteral(value)
	default:
		return mariadbDateTimeLiteral(value)
	}
}
