package models

import "time"

type CMSProductListRow struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	Status          string    `json:"status"` // Active | Draft
	SubCategoryID   string    `json:"sub_category_id"`
	SubCategoryName *string   `json:"sub_category_name,omitempty"`
	Stock           int       `json:"stock"` // SUM(inventory[].quantity)
	Views           int       `json:"views"`
	CreatedAt       time.Time `json:"created_at"`
}
