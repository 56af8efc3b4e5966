// Package sqllex provides SQL lexical helpers shared by the builder packages.
package sqllex

// ReservedWords contains the keywords that must be quoted when used as
// identifiers (column names, ORDER BY targets, etc.).
//
// This is the single source of truth for reserved-word detection across the
// module; both the literal query builder and the parameterized statement
// builder rely on it, so the two always agree on what needs quoting.
//
// Note: This map uses struct{} for zero-memory overhead in the map value.
var ReservedWords = map[string]struct{}{
	"DATE": {}, "USER": {}, "ORDER": {}, "GROUP": {}, "INDEX": {},
}

// IsReservedWord checks if a word is a reserved keyword. The check is
// case-sensitive and exact: only the upper-case spellings in ReservedWords
// match, so "date" and "Order" pass through unquoted.
//
// Examples:
//
//	IsReservedWord("ORDER") // true
//	IsReservedWord("order") // false
//	IsReservedWord("user_id") // false
func IsReservedWord(word string) bool {
	_, exists := ReservedWords[word]
	return exists
}
