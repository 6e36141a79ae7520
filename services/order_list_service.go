package services

import (
	"context"
	"strings"

	"github.com/Modeva-Ecommerce/modeva-cms-admin/listfilter"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OrderListService serves the admin orders screen from the ecommerce DB.
type OrderListService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewOrderListService(db *gorm.DB, log *zap.Logger) *OrderListService {
	return &OrderListService{db: db, log: log.Named("admin.orders")}
}

const (
	orderCountSQL = `
		SELECT COUNT(*)
		FROM orders o
		LEFT JOIN users u ON u.id = o.user_id`

	orderDataSQL = `
		SELECT
			o.id::text AS id,
			o.order_number,
			u.id::text AS customer_id,
			COALESCE(NULLIF(u.name, ''), u.email) AS customer_name,
			u.email AS customer_email,
			o.created_at,
			COALESCE(oi.item_count, 0)::int AS item_count,
			COALESCE(oi.total_quantity, 0)::int AS total_quantity,
			o.total_amount,
			o.status
		FROM orders o
		LEFT JOIN users u ON u.id = o.user_id
		LEFT JOIN (
			SELECT order_id, COUNT(id) AS item_count, SUM(quantity) AS total_quantity
			FROM order_items
			GROUP BY order_id
		) oi ON oi.order_id = o.id`

	orderOrderBy = " ORDER BY o.created_at DESC"
)

func (s *OrderListService) where(f listfilter.State) whereBuilder {
	var w whereBuilder
	w.ilike(f.String("q"), "o.order_number", "u.email", "u.name")

	var statuses []string
	for _, st := range f.Strings("status") {
		st = strings.ToLower(strings.TrimSpace(st))
		if isOrderStatus(st) {
			statuses = append(statuses, st)
		} else {
			s.log.Warn("ignoring unknown order status", zap.String("status", st))
		}
	}
	w.in("o.status", statuses)

	if from, ok := parseDay(f.String("date_from")); ok {
		w.add("o.created_at >= ?", from)
	}
	if to, ok := parseDay(f.String("date_to")); ok {
		w.add("o.created_at < ?", to.AddDate(0, 0, 1))
	}
	if minTotal, ok := f.Float("min_total"); ok {
		w.add("o.total_amount >= ?", minTotal)
	}
	if maxTotal, ok := f.Float("max_total"); ok {
		w.add("o.total_amount <= ?", maxTotal)
	}
	return w
}

func (s *OrderListService) List(ctx context.Context, f listfilter.State, p models.PageRequest) ([]models.CMSOrderListRow, int64, error) {
	w := s.where(f)
	s.log.Debug("list orders",
		zap.Int("page", p.Page),
		zap.Int("limit", p.Limit),
		zap.Strings("conditions", w.conds),
	)
	return fetchPage[models.CMSOrderListRow](ctx, s.db, orderCountSQL, orderDataSQL, orderOrderBy, w, p)
}

func isOrderStatus(st string) bool {
	for _, known := range models.OrderStatuses {
		if st == known {
			return true
		}
	}
	return false
}
