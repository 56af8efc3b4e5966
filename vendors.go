package sqlbuilder

// Vendor identifies the SQL flavor a builder renders for. It drives
// identifier quoting, index-hint placement, date-literal formatting, and
// pagination syntax.
type Vendor = string

// Database vendor identifiers shared across the builder components.
const (
	MariaDB Vendor = "mariadb"
	Oracle  Vendor = "oracle"
)
