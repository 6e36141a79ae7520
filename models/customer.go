package models

import "time"

type CMSCustomerListRow struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Avatar          *string    `json:"avatar"`
	Location        string     `json:"location"`
	Orders          int        `json:"orders"`
	TotalSpent      float64    `json:"total_spent"`
	Status          string     `json:"status"`
	Activity        string     `json:"activity"` // "active" or "inactive"
	JoinDate        time.Time  `json:"join_date"`
	BanReason       *string    `json:"ban_reason"`
	SuspendedUntil  *time.Time `json:"suspended_until"`
	SuspendedReason *string    `json:"suspended_reason"`
}
