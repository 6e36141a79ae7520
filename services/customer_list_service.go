package services

import (
	"context"
	"strings"

	"github.com/Modeva-Ecommerce/modeva-cms-admin/listfilter"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CustomerListService serves the admin customers screen.
type CustomerListService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewCustomerListService(db *gorm.DB, log *zap.Logger) *CustomerListService {
	return &CustomerListService{db: db, log: log.Named("admin.customers")}
}

const (
	customerCTE = `
		WITH default_addr AS (
			SELECT DISTINCT ON (a.user_id)
				a.user_id,
				NULLIF(a.city, '')    AS city,
				NULLIF(a.country, '') AS country
			FROM addresses a
			WHERE a.is_default = true AND a.status = 'active'
			ORDER BY a.user_id, a.updated_at DESC, a.created_at DESC
		),
		order_summary AS (
			SELECT
				user_id,
				COUNT(id)::int AS order_count,
				COALESCE(SUM(total_amount), 0)::float8 AS total_amount,
				MAX(created_at) AS last_order_date
			FROM orders
			WHERE status = 'completed'
			GROUP BY user_id
		)`

	customerActivityExpr = `CASE
				WHEN os.last_order_date IS NULL THEN 'inactive'
				WHEN NOW() - os.last_order_date > INTERVAL '12 hours' THEN 'inactive'
				ELSE 'active'
			END`

	customerFrom = `
		FROM users u
		LEFT JOIN default_addr da ON da.user_id = u.id
		LEFT JOIN order_summary os ON os.user_id = u.id`

	customerCountSQL = customerCTE + `
		SELECT COUNT(*)` + customerFrom

	customerDataSQL = customerCTE + `
		SELECT
			u.id::text AS id,
			u.name,
			u.email,
			CASE
				WHEN da.user_id IS NULL THEN 'No address yet'
				WHEN da.city IS NOT NULL AND da.country IS NOT NULL THEN da.city || ', ' || da.country
				WHEN da.city IS NOT NULL THEN da.city
				WHEN da.country IS NOT NULL THEN da.country
				ELSE 'No address yet'
			END AS location,
			COALESCE(os.order_count, 0)::int AS orders,
			COALESCE(os.total_amount, 0)::float8 AS total_spent,
			` + customerActivityExpr + ` AS activity,
			u.status,
			u.created_at AS join_date,
			u.avatar,
			u.ban_reason,
			u.suspended_until,
			u.suspended_reason` + customerFrom
)

func (s *CustomerListService) List(ctx context.Context, f listfilter.State, p models.PageRequest) ([]models.CMSCustomerListRow, int64, error) {
	var w whereBuilder
	w.ilike(f.String("q"), "u.name", "u.email")

	switch status := strings.ToLower(strings.TrimSpace(f.String("status"))); status {
	case "":
	case "active", "suspended", "deleted", "banned":
		w.add("LOWER(u.status) = ?", status)
	default:
		s.log.Warn("ignoring unknown customer status", zap.String("status", status))
	}

	switch activity := f.String("activity"); activity {
	case "active", "inactive":
		w.add(customerActivityExpr+" = ?", activity)
	}

	return fetchPage[models.CMSCustomerListRow](ctx, s.db, customerCountSQL, customerDataSQL, " ORDER BY u.created_at DESC", w, p)
}
