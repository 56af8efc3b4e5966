package sqlbuilder

import "github.com/ranganathanrajeshkumar/SQLQueryBuilder/internal/sqllex"

// mariadbQuoteIdentifier wraps reserved identifiers in back-ticks.
func mariadbQuoteIdentifier(identifier string) string {
	if sqllex.IsReservedWord(identifier) {
		return "`" + identifier + "`"
	}
	return identifier
}

// mariadbDateTimeLiteral wraps a date-time value in single quotes.
func mariadbDateTimeLiteral(value string) string {
	return "'" + value + "'"
}

// mariadbForceIndex builds the FORCE INDEX clause emitted directly after the
// table name. The trailing space is part of the output contract.
func mariadbForceIndex(index string) string {
	return " FORCE INDEX(" + index + ") "
}
