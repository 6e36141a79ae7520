package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Modeva-Ecommerce/modeva-cms-admin/models"
	"gorm.io/gorm"
)

// whereBuilder accumulates AND-ed SQL conditions with their ? args.
type whereBuilder struct {
	conds []string
	args  []any
}

func (w *whereBuilder) add(cond string, args ...any) {
	w.conds = append(w.conds, cond)
	w.args = append(w.args, args...)
}

func (w *whereBuilder) ilike(q string, columns ...string) {
	q = strings.TrimSpace(q)
	if q == "" {
		return
	}
	like := "%" + q + "%"
	parts := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, col := range columns {
		parts[i] = col + " ILIKE ?"
		args[i] = like
	}
	w.add("("+strings.Join(parts, " OR ")+")", args...)
}

func (w *whereBuilder) in(column string, values []string) {
	if len(values) == 0 {
		return
	}
	placeholders := make([]string, len(values))
	args := make([]any, len(values))
	for i, v := range values {
		placeholders[i] = "?"
		args[i] = strings.TrimSpace(v)
	}
	w.add(fmt.Sprintf("%s IN (%s)", column, strings.Join(placeholders, ",")), args...)
}

func (w *whereBuilder) clause() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// fetchPage runs the count and data queries of one list page. countSQL and
// dataSQL end where the WHERE clause goes; orderBy is appended to the data
// query before LIMIT/OFFSET.
func fetchPage[R any](ctx context.Context, db *gorm.DB, countSQL, dataSQL, orderBy string, w whereBuilder, p models.PageRequest) ([]R, int64, error) {
	where := w.clause()

	var total int64
	if err := db.WithContext(ctx).Raw(countSQL+where, w.args...).Scan(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count: %w", err)
	}

	dataArgs := append(append([]any{}, w.args...), p.Limit, p.Offset())
	rows := make([]R, 0, p.Limit)
	if err := db.WithContext(ctx).Raw(dataSQL+where+orderBy+" LIMIT ? OFFSET ?", dataArgs...).Scan(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("data: %w", err)
	}
	return rows, total, nil
}

// parseDay parses a YYYY-MM-DD filter value.
func parseDay(v string) (time.Time, bool) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(v))
	return t, err == nil
}
