package sqlbuilder

import (
	"fmt"
	"strings"

	"github.com/ranganathanrajeshkumar/SQLQueryBuilder/internal/sqllex"
)

// oracleTimestampFormat is the fixed format mask used for Oracle date-time
// literals. Values are wrapped textually; they are not validated against it.
const oracleTimestampFormat = "YYYY-MM-DD HH24:MI:SS"

// oracleQuoteIdentifier wraps reserved identifiers in double quotes.
func oracleQuoteIdentifier(identifier string) string {
	if sqllex.IsReservedWord(identifier) {
		return `"` + identifier + `"`
	}
	return identifier
}

// oracleTimestampLiteral wraps a date-time value as a TO_TIMESTAMP expression.
func oracleTimestampLiteral(value string) string {
	return "TO_TIMESTAMP('" + value + "', '" + oracleTimestampFormat + "')"
}

// oracleIndexHint builds the inline optimizer hint comment emitted directly
// after SELECT. The surrounding spaces are part of the output contract.
func oracleIndexHint(table, index string) string {
	return " /*+ INDEX(" + table + ", " + index + ") */ "
}

// oraclePaginationClause constructs an Oracle 12c+ pagination suffix using
// OFFSET ... ROWS FETCH NEXT ... ROWS ONLY syntax. The returned string is
// empty if both limit and offset are less than or equal to zero.
func oraclePaginationClause(limit, offset int) string {
	if limit <= 0 && offset <= 0 {
		return ""
	}

	parts := make([]string, 0, 2)
	if offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET %d ROWS", offset))
	}
	if limit > 0 {
		parts = append(parts, fmt.Sprintf("FETCH NEXT %d ROWS ONLY", limit))
	}

	return strings.Join(parts, " ")
}
