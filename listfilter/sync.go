package listfilter

import (
	"errors"
	"fmt"
	"net/url"
	"sort"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/zap"
)

// DefaultExcluded lists the query keys that never take part in the filter
// round trip.
var DefaultExcluded = []string{"page"}

// Location is a navigation target: the concrete pathname plus the query
// produced by a push. Query also carries the pathname params.
type Location struct {
	Pathname string
	Query    url.Values
	route    Route
}

// String renders the location as a URL reference with the pathname
// escaped. Pathname params are left out of the query string since they
// are already in the path.
func (l Location) String() string {
	q := url.Values{}
	names := map[string]struct{}{}
	for _, n := range l.route.Names() {
		names[n] = struct{}{}
	}
	for k, v := range l.Query {
		if _, isPath := names[k]; isPath {
			continue
		}
		q[k] = v
	}
	u := url.URL{Path: l.Pathname, RawQuery: q.Encode()}
	return u.String()
}

// Navigator moves the client to a new location. Implementations must not
// block on whatever the navigation triggers.
type Navigator interface {
	Navigate(loc Location)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(loc Location)

func (f NavigatorFunc) Navigate(loc Location) { f(loc) }

// View is the filter state derived from one URL.
type View struct {
	Effective  State
	Active     bool
	PathParams PathParams
	URL        *url.URL
}

// Option configures a Synchronizer.
type Option func(*Synchronizer)

// WithExcluded replaces the excluded query keys.
func WithExcluded(keys ...string) Option {
	return func(s *Synchronizer) { s.excluded = append([]string(nil), keys...) }
}

// WithLogger sets the logger used for recovered decode failures.
func WithLogger(l *zap.Logger) Option {
	return func(s *Synchronizer) { s.logger = l }
}

// Synchronizer keeps a list screen's filter state in its URL.
type Synchronizer struct {
	template *Template
	route    Route
	excluded []string
	logger   *zap.Logger
}

// NewSynchronizer returns a Synchronizer for the screen served at
// routePattern.
func NewSynchronizer(template *Template, routePattern string, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		template: template,
		route:    ParseRoute(routePattern),
		excluded: DefaultExcluded,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Synchronizer) Template() *Template { return s.template }

func (s *Synchronizer) Route() Route { return s.route }

// Derive computes the effective filter state for u. It never fails: a
// value that cannot be decoded falls back to its default and the rest of
// the state is still derived.
func (s *Synchronizer) Derive(u *url.URL) View {
	params := s.pathParams(u)
	decoded, err := Decode(u.Query(), s.template, params, s.excluded...)
	if err != nil {
		s.logger.Warn("malformed filter values ignored",
			zap.String("path", u.Path),
			zap.Strings("keys", malformedKeys(err)),
			zap.Error(err),
		)
	}
	effective := Merge(s.template, decoded)
	return View{
		Effective:  effective,
		Active:     !Equal(s.template.defaults, effective),
		PathParams: params,
		URL:        u,
	}
}

// Location builds the navigation target for candidate, keeping the
// pathname params of current.
func (s *Synchronizer) Location(current *url.URL, candidate State) (Location, error) {
	params := s.pathParams(current)
	q, err := Encode(candidate, params)
	if err != nil {
		return Location{}, err
	}
	return Location{Pathname: current.Path, Query: q, route: s.route}, nil
}

// LocationFor builds the navigation target for candidate on the path
// identified by params.
func (s *Synchronizer) LocationFor(params PathParams, candidate State) (Location, error) {
	path, err := s.route.Build(params)
	if err != nil {
		return Location{}, err
	}
	return s.Location(&url.URL{Path: path}, candidate)
}

// Push encodes candidate into a new location and hands it to nav.
func (s *Synchronizer) Push(current *url.URL, candidate State, nav Navigator) error {
	loc, err := s.Location(current, candidate)
	if err != nil {
		return fmt.Errorf("push filters: %w", err)
	}
	nav.Navigate(loc)
	return nil
}

func (s *Synchronizer) pathParams(u *url.URL) PathParams {
	params, ok := s.route.Match(u.Path)
	if !ok {
		s.logger.Debug("path does not match route",
			zap.String("path", u.Path),
			zap.String("route", s.route.Pattern()),
		)
		return PathParams{}
	}
	return params
}

// Equal compares two states structurally. Nil and empty collections are
// equal.
func Equal(a, b State) bool {
	return cmp.Equal(a, b, cmpopts.EquateEmpty())
}

func malformedKeys(err error) []string {
	var keys []string
	var joined interface{ Unwrap() []error }
	errs := []error{err}
	if errors.As(err, &joined) {
		errs = joined.Unwrap()
	}
	for _, e := range errs {
		var mv *MalformedValueError
		if errors.As(e, &mv) {
			keys = append(keys, mv.Key)
		}
	}
	sort.Strings(keys)
	return keys
}
