package models

import "github.com/Modeva-Ecommerce/modeva-cms-admin/rowaction"

// ScreenState is the row-action popup state of one admin on one screen.
type ScreenState = rowaction.State[rowaction.Fields]

// ScreenActionRequest is dispatched into a screen's row-action state.
type ScreenActionRequest struct {
	Type    rowaction.Action `json:"type" binding:"required" example:"edit"`
	Payload rowaction.Fields `json:"payload,omitempty"`
}
