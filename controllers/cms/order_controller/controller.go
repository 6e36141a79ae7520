package order_controller

import (
	"context"
	"errors"

	list_cache "github.com/Modeva-Ecommerce/modeva-cms-admin/cache"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/controllers/cms/listscreen"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/listfilter"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/models"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/services"
	"go.uber.org/zap"
)

// Filters is the orders screen filter form.
var Filters = listfilter.MustTemplate(
	listfilter.Field{Name: "q", Default: ""},
	listfilter.Field{Name: "status", Default: []string{}},
	listfilter.Field{Name: "date_from", Default: ""},
	listfilter.Field{Name: "date_to", Default: ""},
	listfilter.Field{Name: "min_total"},
	listfilter.Field{Name: "max_total"},
)

// ItemFilters is the filter form of one order's items.
var ItemFilters = listfilter.MustTemplate(
	listfilter.Field{Name: "status", Default: []string{}},
	listfilter.Field{Name: "q", Default: ""},
)

type OrderLister interface {
	List(ctx context.Context, f listfilter.State, p models.PageRequest) ([]models.CMSOrderListRow, int64, error)
}

type OrderItemLister interface {
	List(ctx context.Context, orderID string, f listfilter.State, p models.PageRequest) ([]models.CMSOrderItemRow, int64, error)
}

type Controller struct {
	Orders      *listscreen.Screen[models.CMSOrderListRow]
	Items       *listscreen.Screen[models.CMSOrderItemRow]
	orders      OrderLister
	exportLimit int
	log         *zap.Logger
}

// NewController wires the orders and order-items screens under basePath
// (the admin group's base path).
func NewController(basePath string, orders OrderLister, items OrderItemLister, cache *list_cache.Cache, exportLimit int, log *zap.Logger) *Controller {
	listOrders := func(ctx context.Context, view listfilter.View, p models.PageRequest) ([]models.CMSOrderListRow, int64, error) {
		return orders.List(ctx, view.Effective, p)
	}
	listItems := func(ctx context.Context, view listfilter.View, p models.PageRequest) ([]models.CMSOrderItemRow, int64, error) {
		rows, total, err := items.List(ctx, view.PathParams["id"], view.Effective, p)
		if errors.Is(err, services.ErrInvalidOrderID) {
			return nil, 0, listscreen.ErrNotFound
		}
		return rows, total, err
	}

	return &Controller{
		Orders:      listscreen.New("orders", "Orders retrieved successfully", basePath+"/orders", Filters, listOrders, cache, log),
		Items:       listscreen.New("order-items", "Order items retrieved successfully", basePath+"/orders/:id/items", ItemFilters, listItems, cache, log),
		orders:      orders,
		exportLimit: exportLimit,
		log:         log.Named("admin.orders.export"),
	}
}
