package constant

import (
	"time"
)

const (
	DefaultValueLimit = 10
)

const (
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
	PqErrorCodeDuplicateTable  = "42P07"

	MySQLErrorDuplicateEntry  = 1062
	MySQLErrorTableExists     = 1050
	MySQLErrorNoReferenced    = 1452
	MySQLErrorRowIsReferenced = 1451
)

const (
	DateFormat  = time.RFC3339
	MonthFormat = "2006-01"
	DayFormat   = time.DateOnly
)

const (
	MinutesToSeconds = 60
)

const (
	StatusFilterAll      = "all"
	StatusFilterActive   = "active"
	StatusFilterInactive = "inactive"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelDatabaseScopeName   = "database"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
