package shared

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"hoteladmin/shared/cache"
	"hoteladmin/shared/constant"
	"hoteladmin/shared/dto"
	"hoteladmin/shared/timezone"
	"reflect"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

// TransformFields converts the non-zero `db` tagged fields of a struct into a
// map of updated columns. Non-nil pointers are dereferenced so a pointer to a
// zero value still updates the column. updated_at is always set.
func TransformFields(data any) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	if val.Kind() == reflect.Pointer {
		val = val.Elem()
		typ = typ.Elem()
	}

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		if field.Kind() == reflect.Pointer {
			field = field.Elem()
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldUpdatedAt] = timezone.Now()

	return updatedFields
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// SearchFilter ORs a case-insensitive substring match of query over columns.
func SearchFilter(query string, columns ...string) dto.FilterGroup {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorOr}

	for _, col := range columns {
		group.Filters = append(group.Filters, dto.Filter{
			ArgName:  "q_" + col,
			Field:    col,
			Value:    query,
			Operator: dto.FilterOperatorLike,
		})
	}

	return group
}

// BuildCacheKey joins prefix and parts with ':'.
func BuildCacheKey(prefix string, parts ...any) string {
	segments := []string{prefix}

	for _, part := range parts {
		segments = append(segments, fmt.Sprint(part))
	}

	return strings.Join(segments, cacheKeySeparator)
}

// BuildCacheKeyWithQuery appends a short digest of the query arguments so
// different filters never share a key.
func BuildCacheKeyWithQuery(prefix string, query ...any) string {
	raw, err := json.Marshal(query)
	if err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to marshal cache query")

		raw = []byte(fmt.Sprint(query...))
	}

	sum := sha256.Sum256(raw)

	return BuildCacheKey(prefix, hex.EncodeToString(sum[:8]))
}

// InvalidateCaches clears every key under each prefix. Failures are logged
// only, so it is safe to run detached from the request.
func InvalidateCaches(ctx context.Context, store cache.Cache, prefixes ...string) {
	for _, prefix := range prefixes {
		pattern := prefix + cacheKeySeparator + constant.Asterix

		if err := store.Clear(ctx, pattern); err != nil {
			log.Error().Err(err).Str("pattern", pattern).Msg("failed to invalidate cache")
		}
	}
}
