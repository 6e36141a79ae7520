package saved_view_controller

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/Modeva-Ecommerce/modeva-cms-admin/controllers/cms/listscreen"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/listfilter"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/middleware"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/models"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Controller struct {
	views   *services.SavedViewService
	screens *listscreen.Registry
	log     *zap.Logger
}

func NewController(views *services.SavedViewService, screens *listscreen.Registry, log *zap.Logger) *Controller {
	return &Controller{views: views, screens: screens, log: log.Named("admin.views")}
}

// CreateSavedView godoc
// @Summary Save a screen's filters
// @Description Stores the submitted filters merged over the screen's defaults. Screens addressed by path params cannot be saved.
// @Tags Admin - Saved Views
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.CreateSavedViewRequest true "Saved view"
// @Success 201 {object} models.ApiResponse{data=models.SavedViewResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Unknown screen"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/views [post]
func (ctl *Controller) CreateSavedView(c *gin.Context) {
	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req models.CreateSavedViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	screen, ok := ctl.screens.Get(req.Screen)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Screen not found"))
		return
	}
	if len(screen.Sync().Route().Names()) > 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Views of this screen cannot be saved"))
		return
	}

	filters := listfilter.Merge(screen.Sync().Template(), listfilter.State(req.Filters))
	view, err := ctl.views.Create(c.Request.Context(), adminID, req.Screen, req.Name, filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save view"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "View saved", ctl.response(screen, *view)))
}

// GetSavedViews godoc
// @Summary List saved views
// @Tags Admin - Saved Views
// @Produce json
// @Security BearerAuth
// @Param screen query string false "Only views of this screen"
// @Success 200 {object} models.ApiResponse{data=[]models.SavedViewResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/views [get]
func (ctl *Controller) GetSavedViews(c *gin.Context) {
	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	views, err := ctl.views.List(c.Request.Context(), adminID, c.Query("screen"))
	if err != nil {
		ctl.log.Error("list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch saved views"))
		return
	}

	out := make([]models.SavedViewResponse, 0, len(views))
	for _, v := range views {
		screen, ok := ctl.screens.Get(v.Screen)
		if !ok {
			ctl.log.Warn("saved view of unmounted screen", zap.String("id", v.ID.String()), zap.String("screen", v.Screen))
			continue
		}
		out = append(out, ctl.response(screen, v))
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Saved views retrieved", out))
}

// OpenSavedView godoc
// @Summary Open a saved view
// @Description Redirects to the screen URL carrying the saved filters.
// @Tags Admin - Saved Views
// @Security BearerAuth
// @Param id path string true "Saved view ID"
// @Success 303 "Redirect to the filtered list"
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/views/{id}/open [get]
func (ctl *Controller) OpenSavedView(c *gin.Context) {
	adminID, view, ok := ctl.lookup(c)
	if !ok {
		return
	}

	screen, found := ctl.screens.Get(view.Screen)
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Screen not found"))
		return
	}
	filters, err := services.ViewFilters(view)
	if err != nil {
		ctl.log.Error("decode filters failed", zap.String("id", view.ID.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Saved view is corrupt"))
		return
	}

	path, err := screen.Sync().Route().Build(listfilter.PathParams{})
	if err == nil {
		err = screen.Sync().Push(&url.URL{Path: path}, filters, listscreen.RedirectNavigator(c))
	}
	if err != nil {
		ctl.log.Error("open failed", zap.String("id", view.ID.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Saved view cannot be opened"))
		return
	}
	ctl.log.Debug("open", zap.String("admin_id", adminID), zap.String("id", view.ID.String()))
}

// DeleteSavedView godoc
// @Summary Delete a saved view
// @Tags Admin - Saved Views
// @Produce json
// @Security BearerAuth
// @Param id path string true "Saved view ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/views/{id} [delete]
func (ctl *Controller) DeleteSavedView(c *gin.Context) {
	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid view ID"))
		return
	}

	err = ctl.views.Delete(c.Request.Context(), adminID, id)
	switch {
	case errors.Is(err, services.ErrViewNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Saved view not found"))
		return
	case err != nil:
		ctl.log.Error("delete failed", zap.String("id", id.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete saved view"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Saved view deleted", nil))
}

func (ctl *Controller) lookup(c *gin.Context) (string, *models.SavedView, bool) {
	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return "", nil, false
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid view ID"))
		return "", nil, false
	}

	view, err := ctl.views.Get(c.Request.Context(), adminID, id)
	switch {
	case errors.Is(err, services.ErrViewNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Saved view not found"))
		return "", nil, false
	case err != nil:
		ctl.log.Error("get failed", zap.String("id", id.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch saved view"))
		return "", nil, false
	}
	return adminID, view, true
}

func (ctl *Controller) response(screen listscreen.Descriptor, v models.SavedView) models.SavedViewResponse {
	resp := models.SavedViewResponse{SavedView: v}
	filters, err := services.ViewFilters(&v)
	if err != nil {
		return resp
	}
	if loc, err := screen.Sync().LocationFor(listfilter.PathParams{}, filters); err == nil {
		resp.Href = loc.String()
	}
	return resp
}
