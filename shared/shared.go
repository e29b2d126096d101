package shared

import (
	"classbook/shared/cache"
	"classbook/shared/constant"
	"classbook/shared/dto"
	"classbook/shared/timezone"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// ContextUserID returns the authenticated user id from the context, or zero
// when the request is unauthenticated.
func ContextUserID(ctx context.Context) int64 {
	id, _ := ctx.Value(constant.ContextKeyUserID).(int64)

	return id
}

// ContextUserRole returns the authenticated user role from the context.
func ContextUserRole(ctx context.Context) string {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return role
}

// ContextUser returns the authenticated user id as a string for audit fields,
// falling back to the system actor when unauthenticated.
func ContextUser(ctx context.Context) string {
	id := ContextUserID(ctx)
	if id == 0 {
		return constant.ContextSystem
	}

	return strconv.FormatInt(id, 10)
}

func ConvertStringToInt(value string) (int, error) {
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("failed to convert string to int: %w", err)
	}

	return intValue, nil
}

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the fields of a struct into a map of updated fields.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id int64, fieldID, table string) dto.FilterGroup {
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

// BuildCacheKey joins the prefix and the given parts into a single cache key.
func BuildCacheKey(prefix string, parts ...any) string {
	key := make([]string, 0, len(parts)+1)
	key = append(key, prefix)

	for _, part := range parts {
		key = append(key, fmt.Sprintf("%v", part))
	}

	return strings.Join(key, ":")
}

// BuildCacheKeyWithQuery derives a cache key from the prefix plus a digest of
// the query params and filter, so different listings get distinct entries.
func BuildCacheKeyWithQuery(prefix string, req dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	raw, err := json.Marshal(map[string]any{
		"query": req,
		"where": where,
		"args":  args,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal cache key payload")

		return BuildCacheKey(prefix, req.Page, req.Limit, req.SortBy, req.SortDir)
	}

	return fmt.Sprintf("%s:%x", prefix, sha1.Sum(raw))
}

// InvalidateCaches clears every cache entry under the given prefix.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
