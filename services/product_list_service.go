package services

import (
	"context"

	"github.com/Modeva-Ecommerce/modeva-cms-admin/listfilter"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProductListService serves the admin products screen from the CMS DB.
type ProductListService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewProductListService(db *gorm.DB, log *zap.Logger) *ProductListService {
	return &ProductListService{db: db, log: log.Named("admin.products")}
}

const (
	productCountSQL = `
		SELECT COUNT(*)
		FROM products p`

	productDataSQL = `
		SELECT
			p.id::text AS id,
			p.name,
			p.price,
			p.status,
			p.sub_category_id::text AS sub_category_id,
			c.name AS sub_category_name,
			COALESCE((
				SELECT SUM((item->>'quantity')::int)
				FROM jsonb_array_elements(p.inventory) AS item
			), 0)::int AS stock,
			p.views,
			p.created_at
		FROM products p
		LEFT JOIN categories c ON c.id = p.sub_category_id`
)

func (s *ProductListService) List(ctx context.Context, f listfilter.State, p models.PageRequest) ([]models.CMSProductListRow, int64, error) {
	var w whereBuilder
	w.ilike(f.String("q"), "p.name", "p.description")

	switch status := f.String("status"); status {
	case "Active", "Draft":
		w.add("p.status = ?", status)
	}

	var subIDs []string
	for _, id := range f.Strings("sub_category_id") {
		if _, err := uuid.Parse(id); err != nil {
			s.log.Warn("ignoring invalid sub category id", zap.String("id", id))
			continue
		}
		subIDs = append(subIDs, id)
	}
	w.in("p.sub_category_id", subIDs)

	if minPrice, ok := f.Float("min_price"); ok {
		w.add("p.price >= ?", minPrice)
	}
	if maxPrice, ok := f.Float("max_price"); ok {
		w.add("p.price <= ?", maxPrice)
	}

	return fetchPage[models.CMSProductListRow](ctx, s.db, productCountSQL, productDataSQL, " ORDER BY p.created_at DESC", w, p)
}
