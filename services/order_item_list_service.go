package services

import (
	"context"
	"errors"

	"github.com/Modeva-Ecommerce/modeva-cms-admin/listfilter"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrInvalidOrderID = errors.New("invalid order id")

// OrderItemListService serves the items screen of one order. The order id
// comes from the path, never from filter state.
type OrderItemListService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewOrderItemListService(db *gorm.DB, log *zap.Logger) *OrderItemListService {
	return &OrderItemListService{db: db, log: log.Named("admin.order-items")}
}

const (
	orderItemCountSQL = `
		SELECT COUNT(*)
		FROM order_items oi`

	orderItemDataSQL = `
		SELECT
			oi.id::text AS id,
			oi.product_id::text AS product_id,
			oi.product_name,
			oi.variant_size,
			oi.variant_color,
			oi.price,
			oi.quantity,
			oi.subtotal,
			oi.status,
			oi.created_at
		FROM order_items oi`
)

func (s *OrderItemListService) List(ctx context.Context, orderID string, f listfilter.State, p models.PageRequest) ([]models.CMSOrderItemRow, int64, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, 0, ErrInvalidOrderID
	}

	var w whereBuilder
	w.add("oi.order_id = ?", id.String())
	w.in("oi.status", f.Strings("status"))
	w.ilike(f.String("q"), "oi.product_name")

	s.log.Debug("list order items", zap.String("order_id", orderID), zap.Int("page", p.Page))
	return fetchPage[models.CMSOrderItemRow](ctx, s.db, orderItemCountSQL, orderItemDataSQL, " ORDER BY oi.created_at ASC", w, p)
}
