package listscreen

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	list_cache "github.com/Modeva-Ecommerce/modeva-cms-admin/cache"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/listfilter"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrNotFound is returned by a ListFunc when the path names a resource
// that does not exist.
var ErrNotFound = errors.New("not found")

// ListFunc fetches one page of rows for a derived filter view.
type ListFunc[R any] func(ctx context.Context, view listfilter.View, p models.PageRequest) ([]R, int64, error)

// Screen serves a paginated list whose filter state lives in the URL.
type Screen[R any] struct {
	name    string
	message string
	sync    *listfilter.Synchronizer
	list    ListFunc[R]
	cache   *list_cache.Cache
	log     *zap.Logger
}

// New builds a screen served at route (a gin pattern including the group
// base path).
func New[R any](name, message, route string, tmpl *listfilter.Template, list ListFunc[R], cache *list_cache.Cache, log *zap.Logger) *Screen[R] {
	log = log.Named("admin." + name)
	return &Screen[R]{
		name:    name,
		message: message,
		sync:    listfilter.NewSynchronizer(tmpl, route, listfilter.WithLogger(log)),
		list:    list,
		cache:   cache,
		log:     log,
	}
}

func (s *Screen[R]) Name() string { return s.name }

func (s *Screen[R]) Sync() *listfilter.Synchronizer { return s.sync }

// GetList derives the effective filters from the request URL and responds
// with the matching page.
func (s *Screen[R]) GetList(c *gin.Context) {
	view := s.sync.Derive(c.Request.URL)
	page := ParsePage(c, s.log)

	rows, total, err := s.fetch(c.Request.Context(), view, page)
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Resource not found"))
		return
	case err != nil:
		s.log.Error("list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch "+s.name))
		return
	}

	meta := models.NewPagination(page, total)
	s.log.Debug("respond 200", zap.Int("page", meta.Page), zap.Int("total", meta.Total), zap.Bool("filters_active", view.Active))

	c.JSON(http.StatusOK, models.FilteredResponse(c, s.message, rows, meta, s.filterMeta(view)))
}

func (s *Screen[R]) fetch(ctx context.Context, view listfilter.View, page models.PageRequest) ([]R, int64, error) {
	if s.cache == nil {
		return s.list(ctx, view, page)
	}

	key, err := list_cache.Key(s.cacheScope(view), view.Effective, page)
	if err != nil {
		return nil, 0, err
	}
	if cached, ok := s.cache.Get(key); ok {
		if rows, ok := cached.Rows.([]R); ok {
			return rows, cached.Total, nil
		}
	}

	rows, total, err := s.list(ctx, view, page)
	if err != nil {
		return nil, 0, err
	}
	s.cache.Set(key, list_cache.Page{Rows: rows, Total: total})
	return rows, total, nil
}

// cacheScope keeps pages of different path params apart.
func (s *Screen[R]) cacheScope(view listfilter.View) string {
	names := s.sync.Route().Names()
	if len(names) == 0 {
		return s.name
	}
	parts := []string{s.name}
	for _, n := range names {
		parts = append(parts, n+"="+view.PathParams[n])
	}
	return strings.Join(parts, ";")
}

func (s *Screen[R]) filterMeta(view listfilter.View) *models.FilterMeta {
	meta := &models.FilterMeta{
		Screen:    s.name,
		Effective: view.Effective,
		Active:    view.Active,
	}
	if loc, err := s.sync.Location(view.URL, view.Effective); err == nil {
		meta.Href = loc.String()
	}
	return meta
}

// ApplyFilters pushes a submitted filter form into the list URL and
// redirects the client there.
func (s *Screen[R]) ApplyFilters(c *gin.Context) {
	candidate, err := readCandidate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid filter form"))
		return
	}
	s.push(c, s.onlyTemplateKeys(candidate))
}

// ResetFilters redirects to the list with the template defaults.
func (s *Screen[R]) ResetFilters(c *gin.Context) {
	s.push(c, s.sync.Template().Defaults())
}

func (s *Screen[R]) push(c *gin.Context, candidate listfilter.State) {
	current, err := s.currentURL(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}
	if err := s.sync.Push(current, candidate, RedirectNavigator(c)); err != nil {
		s.log.Error("push filters failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Filters could not be encoded"))
		return
	}
	s.log.Debug("filters pushed", zap.String("location", c.Writer.Header().Get("Location")))
}

// currentURL rebuilds the list URL from the route and the request's path
// params; the filter endpoints hang off the list route.
func (s *Screen[R]) currentURL(c *gin.Context) (*url.URL, error) {
	params := listfilter.PathParams{}
	for _, name := range s.sync.Route().Names() {
		params[name] = c.Param(name)
	}
	path, err := s.sync.Route().Build(params)
	if err != nil {
		return nil, err
	}
	return &url.URL{Path: path}, nil
}

func (s *Screen[R]) onlyTemplateKeys(candidate listfilter.State) listfilter.State {
	out := make(listfilter.State, len(candidate))
	for k, v := range candidate {
		if s.sync.Template().Has(k) {
			out[k] = v
		} else {
			s.log.Debug("dropping unknown filter field", zap.String("field", k))
		}
	}
	return out
}

// readCandidate reads a submitted filter form, JSON or url-encoded.
// Repeated form fields become arrays.
func readCandidate(c *gin.Context) (listfilter.State, error) {
	if strings.HasPrefix(c.ContentType(), "application/json") {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			return nil, err
		}
		return listfilter.State(body), nil
	}

	if err := c.Request.ParseForm(); err != nil {
		return nil, err
	}
	out := listfilter.State{}
	for k, values := range c.Request.PostForm {
		switch len(values) {
		case 0:
		case 1:
			out[k] = values[0]
		default:
			items := make([]any, len(values))
			for i, v := range values {
				items[i] = v
			}
			out[k] = items
		}
	}
	return out, nil
}

// RedirectNavigator navigates by answering the request with 303 See Other.
func RedirectNavigator(c *gin.Context) listfilter.Navigator {
	return listfilter.NavigatorFunc(func(loc listfilter.Location) {
		c.Redirect(http.StatusSeeOther, loc.String())
	})
}

// ParsePage reads page/limit. Invalid values fall back to 1 and 10; limit
// is capped at 50.
func ParsePage(c *gin.Context, log *zap.Logger) models.PageRequest {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		log.Debug("invalid page, using 1", zap.String("page", c.Query("page")))
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 50 {
		log.Debug("invalid limit, using 10", zap.String("limit", c.Query("limit")))
		limit = 10
	}
	return models.PageRequest{Page: page, Limit: limit}
}
