package sqlbuilder

import (
	"strings"

	"github.com/Masterminds/squirrel"
)

// StatementBuilder produces parameterized SELECT statements with
// vendor-specific placeholder formats. Unlike QueryBuilder, which splices
// literal values into the statement text, StatementBuilder keeps values out
// of the SQL and returns them as bind arguments for a database driver.
type StatementBuilder struct {
	vendor           Vendor
	statementBuilder squirrel.StatementBuilderType
}

// SelectStatement provides a fluent interface for building one parameterized
// SELECT query with vendor-aware column quoting and pagination.
type SelectStatement struct {
	sb            *StatementBuilder
	selectBuilder squirrel.SelectBuilder
}

// NewStatementBuilder creates a statement builder for the specified database
// vendor and configures its placeholder format.
func NewStatementBuilder(vendor Vendor) *StatementBuilder {
	var sb squirrel.StatementBuilderType

	switch vendor {
	case Oracle:
		// Oracle uses :1, :2, ... placeholders
		sb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Colon)
	default:
		// MariaDB uses question mark placeholders
		sb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	}

	return &StatementBuilder{
		vendor:           vendor,
		statementBuilder: sb,
	}
}

// Vendor returns the database vendor the builder targets.
func (sb *StatementBuilder) Vendor() Vendor {
	return sb.vendor
}

// Select creates a SELECT statement with vendor-specific column quoting.
func (sb *StatementBuilder) Select(columns ...string) *SelectStatement {
	quoted := make([]string, len(columns))
	for i, column := range columns {
		quoted[i] = sb.quoteColumn(column)
	}
	return &SelectStatement{
		sb:            sb,
		selectBuilder: sb.statementBuilder.Select(quoted...),
	}
}

// CurrentTimestamp returns the current timestamp function for the vendor.
func (sb *StatementBuilder) CurrentTimestamp() string {
	switch sb.vendor {
	case Oracle:
		return "SYSDATE"
	default:
		return "NOW()"
	}
}

// CaseInsensitiveLike creates a case-insensitive LIKE expression. Oracle
// requires UPPER() on both sides; MariaDB collations compare
// case-insensitively with a plain LIKE.
func (sb *StatementBuilder) CaseInsensitiveLike(column, value string) squirrel.Sqlizer {
	likeValue := "%" + value + "%"

	switch sb.vendor {
	case Oracle:
		return squirrel.Like{"UPPER(" + sb.quoteColumn(column) + ")": strings.ToUpper(likeValue)}
	default:
		return squirrel.Like{sb.quoteColumn(column): likeValue}
	}
}

func (sb *StatementBuilder) quoteColumn(column string) string {
	switch sb.vendor {
	case Oracle:
		return oracleQuoteIdentifier(column)
	default:
		return mariadbQuoteIdentifier(column)
	}
}

// From specifies the table to select from.
func (ss *SelectStatement) From(table string) *SelectStatement {
	ss.selectBuilder = ss.selectBuilder.From(table)
	return ss
}

// WhereEq adds an equality condition with a bound argument. The column name
// is quoted according to vendor rules.
func (ss *SelectStatement) WhereEq(column string, value any) *SelectStatement {
	ss.selectBuilder = ss.selectBuilder.Where(squirrel.Eq{ss.sb.quoteColumn(column): value})
	return ss
}

// WhereGt adds a greater-than condition with a bound argument.
func (ss *SelectStatement) WhereGt(column string, value any) *SelectStatement {
	ss.selectBuilder = ss.selectBuilder.Where(squirrel.Gt{ss.sb.quoteColumn(column): value})
	return ss
}

// WhereLt adds a less-than condition with a bound argument.
func (ss *SelectStatement) WhereLt(column string, value any) *SelectStatement {
	ss.selectBuilder = ss.selectBuilder.Where(squirrel.Lt{ss.sb.quoteColumn(column): value})
	return ss
}

// WhereLike adds a LIKE condition with a bound pattern.
func (ss *SelectStatement) WhereLike(column, pattern string) *SelectStatement {
	ss.selectBuilder = ss.selectBuilder.Where(squirrel.Like{ss.sb.quoteColumn(column): pattern})
	return ss
}

// Where adds a raw condition for cases the typed methods cannot express,
// such as squirrel combinators or vendor-specific syntax. No quoting is
// applied; the caller is responsible for identifier safety.
func (ss *SelectStatement) Where(pred any, args ...any) *SelectStatement {
	ss.selectBuilder = ss.selectBuilder.Where(pred, args...)
	return ss
}

// InnerJoin adds an INNER JOIN clause.
func (ss *SelectStatement) InnerJoin(join string, args ...any) *SelectStatement {
	ss.selectBuilder = ss.selectBuilder.InnerJoin(join, args...)
	return ss
}

// OrderBy adds ORDER BY clauses. Column expressions are used verbatim.
func (ss *SelectStatement) OrderBy(orderBys ...string) *SelectStatement {
	ss.selectBuilder = ss.selectBuilder.OrderBy(orderBys...)
	return ss
}

// Page applies limit and offset using vendor-specific pagination syntax.
// Values less than or equal to zero are skipped.
func (ss *SelectStatement) Page(limit, offset int) *SelectStatement {
	switch ss.sb.vendor {
	case Oracle:
		// Oracle uses OFFSET ... ROWS FETCH NEXT ... ROWS ONLY semantics (12c+)
		if suffix := oraclePaginationClause(limit, offset); suffix != "" {
			ss.selectBuilder = ss.selectBuilder.Suffix(suffix)
		}
	default:
		if limit > 0 {
			ss.selectBuilder = ss.selectBuilder.Limit(uint64(limit))
		}
		if offset > 0 {
			ss.selectBuilder = ss.selectBuilder.Offset(uint64(offset))
		}
	}
	return ss
}

// ToSQL generates the final SQL query string and bind arguments.
func (ss *SelectStatement) ToSQL() (sql string, args []any, err error) {
	return ss.selectBuilder.ToSql()
}
