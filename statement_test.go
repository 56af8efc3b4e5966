package sqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toSQL(t *testing.T, sqlizer squirrel.Sqlizer) (string, []any) {
	t.Helper()
	sql, args, err := sqlizer.ToSql()
	require.NoError(t, err)
	return sql, args
}

func TestStatementMariaDBUsesQuestionPlaceholders(t *testing.T) {
	sql, args, err := NewStatementBuilder(MariaDB).
		Select(colID, colName).
		From(tableUsers).
		WhereEq(colStatus, "active").
		ToSQL()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name FROM users WHERE status = ?", sql)
	assert.Equal(t, []any{"active"}, args)
}

func TestStatementOracleUsesColonPlaceholders(t *testing.T) {
	sql, args, err := NewStatementBuilder(Oracle).
		Select(colID).
		From(tableUsers).
		WhereEq(colStatus, "active").
		WhereGt("age", 21).
		ToSQL()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM users WHERE status = :1 AND age > :2", sql)
	assert.Equal(t, []any{"active", 21}, args)
}

func TestStatementQuotesReservedColumnsPerVendor(t *testing.T) {
	mariadbSQL, _, err := NewStatementBuilder(MariaDB).Select(colID, "ORDER").From(tableUsers).ToSQL()
	require.NoError(t, err)
	oracleSQL, _, err := NewStatementBuilder(Oracle).Select(colID, "ORDER").From(tableUsers).ToSQL()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, `ORDER` FROM users", mariadbSQL)
	assert.Equal(t, `SELECT id, "ORDER" FROM users`, oracleSQL)
}

func TestStatementWhereLtAndLike(t *testing.T) {
	sql, args, err := NewStatementBuilder(MariaDB).
		Select(colID).
		From(tableUsers).
		WhereLt("age", 65).
		WhereLike(colName, "jo%").
		ToSQL()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM users WHERE age < ? AND name LIKE ?", sql)
	assert.Equal(t, []any{65, "jo%"}, args)
}

func TestStatementInnerJoinAndOrderBy(t *testing.T) {
	sql, _, err := NewStatementBuilder(MariaDB).
		Select("users.id", "orders.total").
		From(tableUsers).
		InnerJoin("orders ON users.id = orders.user_id").
		OrderBy("orders.total DESC").
		ToSQL()

	require.NoError(t, err)
	assert.Equal(t,
		"SELECT users.id, orders.total FROM users INNER JOIN orders ON users.id = orders.user_id ORDER BY orders.total DESC",
		sql)
}

func TestStatementPageMariaDB(t *testing.T) {
	sql, _, err := NewStatementBuilder(MariaDB).
		Select(colID).
		From(tableUsers).
		Page(10, 5).
		ToSQL()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM users LIMIT 10 OFFSET 5", sql)
}

func TestStatementPageOracleUsesFetchNextSuffix(t *testing.T) {
	sql, _, err := NewStatementBuilder(Oracle).
		Select(colID).
		From(tableUsers).
		Page(10, 5).
		ToSQL()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM users OFFSET 5 ROWS FETCH NEXT 10 ROWS ONLY", sql)
}

func TestStatementPageSkipsNonPositiveValues(t *testing.T) {
	sql, _, err := NewStatementBuilder(Oracle).
		Select(colID).
		From(tableUsers).
		Page(0, 0).
		ToSQL()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM users", sql)
}

func TestOraclePaginationClause(t *testing.T) {
	assert.Empty(t, oraclePaginationClause(0, 0))
	assert.Equal(t, "FETCH NEXT 5 ROWS ONLY", oraclePaginationClause(5, 0))
	assert.Equal(t, "OFFSET 10 ROWS", oraclePaginationClause(0, 10))
	assert.Equal(t, "OFFSET 10 ROWS FETCH NEXT 5 ROWS ONLY", oraclePaginationClause(5, 10))
}

func TestCurrentTimestampPerVendor(t *testing.T) {
	assert.Equal(t, "NOW()", NewStatementBuilder(MariaDB).CurrentTimestamp())
	assert.Equal(t, "SYSDATE", NewStatementBuilder(Oracle).CurrentTimestamp())
}

func TestCaseInsensitiveLikeMariaDB(t *testing.T) {
	sql, args := toSQL(t, NewStatementBuilder(MariaDB).CaseInsensitiveLike(colName, "john"))

	assert.Equal(t, "name LIKE ?", sql)
	require.Len(t, args, 1)
	assert.Equal(t, "%john%", args[0])
}

func TestCaseInsensitiveLikeOracle(t *testing.T) {
	sql, args := toSQL(t, NewStatementBuilder(Oracle).CaseInsensitiveLike(colName, "john"))

	assert.Equal(t, "UPPER(name) LIKE ?", sql)
	require.Len(t, args, 1)
	assert.Equal(t, "%JOHN%", args[0])
}

func TestStatementVendor(t *testing.T) {
	assert.Equal(t, Oracle, NewStatementBuilder(Oracle).Vendor())
}
