package order_controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Modeva-Ecommerce/modeva-cms-admin/models"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExportOrdersPDF godoc
// @Summary Export filtered orders as PDF
// @Description Takes the same filter query as GET /admin/orders and renders the first rows into a PDF.
// @Tags Admin - Orders
// @Produce octet-stream
// @Security BearerAuth
// @Param status query string false "JSON array of statuses"
// @Param q query string false "JSON string search"
// @Success 200 "PDF file"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/orders/export.pdf [get]
func (ctl *Controller) ExportOrdersPDF(c *gin.Context) {
	view := ctl.Orders.Sync().Derive(c.Request.URL)

	rows, total, err := ctl.orders.List(c.Request.Context(), view.Effective, models.PageRequest{Page: 1, Limit: ctl.exportLimit})
	if err != nil {
		ctl.log.Error("list orders failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	now := time.Now()
	pdfBuffer, err := services.RenderOrdersPDF(rows, total, view.Effective, now)
	if err != nil {
		ctl.log.Error("render pdf failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	filename := fmt.Sprintf("orders-%s.pdf", now.Format("20060102-1504"))
	ctl.log.Info("export ok", zap.Int("rows", len(rows)), zap.Int64("total", total), zap.Bool("filters_active", view.Active))

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())
}
