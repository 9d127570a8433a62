package service

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	errorvalues "github.com/limbo/journal/internal/error_values"
	"github.com/limbo/journal/pkg/dateutil"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

const (
	maxPageSize = 100
	// Longest range of days listed at once, about ten years
	maxDaySpan = 3660
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("not_blank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
}

func validateStruct(v any) error {
	InitValidator()
	if err := validate.Struct(v); err != nil {
		return errorvalues.Validation(err.Error())
	}
	return nil
}

func validatePage(page, pageSize int) error {
	if page < 1 || pageSize < 1 || pageSize > maxPageSize {
		return errorvalues.ErrInvalidPagination
	}
	return nil
}

func validateRange(from, to *time.Time) error {
	if from != nil && to != nil && dateutil.StartOfDay(*from).After(dateutil.StartOfDay(*to)) {
		return fmt.Errorf("%w: start date is after end date", errorvalues.ErrInvalidDateRange)
	}
	return nil
}

// validateSpan checks a range of days that is listed day by day.
func validateSpan(from, to time.Time) error {
	if err := validateRange(&from, &to); err != nil {
		return err
	}
	if dateutil.DaysBetween(from, to) >= maxDaySpan {
		return fmt.Errorf("%w: range can't span more than %d days", errorvalues.ErrInvalidDateRange, maxDaySpan)
	}
	return nil
}

// normalizeMoods keeps at most two secondary moods in the given order.
func normalizeMoods(ids []int64) []int64 {
	if len(ids) > 2 {
		ids = ids[:2]
	}
	return append([]int64(nil), ids...)
}

// normalizeTags drops repeated ids keeping the first occurrence.
func normalizeTags(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	res := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		res = append(res, id)
	}
	return res
}

func wordCount(content string) int {
	return len(strings.Fields(content))
}
