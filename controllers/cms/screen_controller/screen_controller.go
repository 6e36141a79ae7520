package screen_controller

import (
	"errors"
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-cms-admin/middleware"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/models"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/rowaction"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Controller struct {
	states *services.ScreenStateService
	log    *zap.Logger
}

func NewController(states *services.ScreenStateService, log *zap.Logger) *Controller {
	return &Controller{states: states, log: log.Named("admin.screens")}
}

// GetScreenState godoc
// @Summary Get a screen's row-action state
// @Description Which row popup (add, edit, delete) the current admin has open on a list screen.
// @Tags Admin - Screens
// @Produce json
// @Security BearerAuth
// @Param screen path string true "Screen name" Enums(orders,order-items,customers,products)
// @Success 200 {object} models.ApiResponse{data=models.ScreenState}
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Unknown screen"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/screens/{screen}/state [get]
func (ctl *Controller) GetScreenState(c *gin.Context) {
	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}
	screen := c.Param("screen")

	state, err := ctl.states.State(c.Request.Context(), adminID, screen)
	if err != nil {
		ctl.respondError(c, screen, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Screen state retrieved", state))
}

// DispatchScreenAction godoc
// @Summary Dispatch a row action
// @Description Applies edit, add, delete or close to the screen's row-action state. Edit and delete merge the payload into the current one; close resets; unknown types leave the state unchanged.
// @Tags Admin - Screens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param screen path string true "Screen name"
// @Param action body models.ScreenActionRequest true "Row action"
// @Success 200 {object} models.ApiResponse{data=models.ScreenState}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Unknown screen"
// @Router /admin/screens/{screen}/actions [post]
func (ctl *Controller) DispatchScreenAction(c *gin.Context) {
	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}
	screen := c.Param("screen")

	var req models.ScreenActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ctl.log.Debug("bind failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	event := rowaction.Event[rowaction.Fields]{Type: req.Type, Payload: req.Payload}
	state, err := ctl.states.Dispatch(c.Request.Context(), adminID, screen, event)
	if err != nil {
		ctl.respondError(c, screen, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Row action applied", state))
}

func (ctl *Controller) respondError(c *gin.Context, screen string, err error) {
	if errors.Is(err, services.ErrScreenNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Screen not found"))
		return
	}
	ctl.log.Error("screen state failed", zap.String("screen", screen), zap.Error(err))
	c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load screen state"))
}
