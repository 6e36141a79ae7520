package models

import "time"

type CMSOrderListRow struct {
	ID            string    `json:"id"`            // orders.id
	OrderNumber   string    `json:"order_number"`  // ORD-2025-000001
	CustomerID    string    `json:"customer_id"`   // users.id
	CustomerName  string    `json:"customer_name"` // username or fallback
	CustomerEmail string    `json:"customer_email"`
	CreatedAt     time.Time `json:"created_at"`
	ItemCount     int       `json:"item_count"`     // COUNT(order_items.id)
	TotalQuantity int       `json:"total_quantity"` // SUM(order_items.quantity)
	TotalAmount   float64   `json:"total_amount"`
	Status        string    `json:"status"`
}

// CMSOrderItemRow is one line of the order items screen
type CMSOrderItemRow struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	ProductName  string    `json:"product_name"`
	VariantSize  *string   `json:"variant_size,omitempty"`
	VariantColor *string   `json:"variant_color,omitempty"`
	Price        float64   `json:"price"`
	Quantity     int       `json:"quantity"`
	Subtotal     float64   `json:"subtotal"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// Order statuses an admin can filter on
var OrderStatuses = []string{
	"pending", "confirmed", "processing", "shipped", "delivered", "cancelled", "refunded",
}
