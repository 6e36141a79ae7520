package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Modeva-Ecommerce/modeva-cms-admin/listfilter"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

var ErrViewNotFound = errors.New("saved view not found")

// SavedViewRepository stores bookmarked filter states.
type SavedViewRepository interface {
	Create(ctx context.Context, view *models.SavedView) error
	List(ctx context.Context, adminID, screen string) ([]models.SavedView, error)
	Get(ctx context.Context, adminID string, id uuid.UUID) (*models.SavedView, error)
	Delete(ctx context.Context, adminID string, id uuid.UUID) error
}

// pgxQuerier is the part of *pgxpool.Pool the repository needs.
type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ pgxQuerier = (*pgxpool.Pool)(nil)

type PgxSavedViewRepository struct {
	db pgxQuerier
}

func NewPgxSavedViewRepository(pool *pgxpool.Pool) *PgxSavedViewRepository {
	return &PgxSavedViewRepository{db: pool}
}

// SavedViewSchema creates the saved views table. Applied by cmd/migrate.
const SavedViewSchema = `
	CREATE TABLE IF NOT EXISTS saved_filter_views (
		id         UUID PRIMARY KEY,
		admin_id   TEXT NOT NULL,
		screen     TEXT NOT NULL,
		name       TEXT NOT NULL,
		filters    JSONB NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_saved_filter_views_admin_screen
		ON saved_filter_views (admin_id, screen);
`

func (r *PgxSavedViewRepository) Create(ctx context.Context, v *models.SavedView) error {
	query := `
		INSERT INTO saved_filter_views (id, admin_id, screen, name, filters, created_at)
		VALUES ($1, $2, $3, $4, $5::jsonb, $6)
	`
	_, err := r.db.Exec(ctx, query, v.ID.String(), v.AdminID, v.Screen, v.Name, string(v.Filters), v.CreatedAt)
	return err
}

const savedViewColumns = `id::text, admin_id, screen, name, filters, created_at`

func (r *PgxSavedViewRepository) List(ctx context.Context, adminID, screen string) ([]models.SavedView, error) {
	query := `SELECT ` + savedViewColumns + ` FROM saved_filter_views WHERE admin_id = $1`
	args := []any{adminID}
	if screen != "" {
		query += ` AND screen = $2`
		args = append(args, screen)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := []models.SavedView{}
	for rows.Next() {
		v, err := scanSavedView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, rows.Err()
}

func (r *PgxSavedViewRepository) Get(ctx context.Context, adminID string, id uuid.UUID) (*models.SavedView, error) {
	query := `SELECT ` + savedViewColumns + ` FROM saved_filter_views WHERE id = $1 AND admin_id = $2`
	v, err := scanSavedView(r.db.QueryRow(ctx, query, id.String(), adminID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrViewNotFound
	}
	return v, err
}

func (r *PgxSavedViewRepository) Delete(ctx context.Context, adminID string, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM saved_filter_views WHERE id = $1 AND admin_id = $2`, id.String(), adminID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrViewNotFound
	}
	return nil
}

func scanSavedView(row pgx.Row) (*models.SavedView, error) {
	var (
		v       models.SavedView
		id      string
		filters []byte
	)
	if err := row.Scan(&id, &v.AdminID, &v.Screen, &v.Name, &filters, &v.CreatedAt); err != nil {
		return nil, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("saved view id %q: %w", id, err)
	}
	v.ID = parsed
	v.Filters = datatypes.JSON(filters)
	return &v, nil
}

// ── Service ──────────────────────────────────────────────────────────────────

type SavedViewService struct {
	repo SavedViewRepository
	now  func() time.Time
	log  *zap.Logger
}

func NewSavedViewService(repo SavedViewRepository, log *zap.Logger) *SavedViewService {
	return &SavedViewService{repo: repo, now: time.Now, log: log.Named("saved.views")}
}

// Create stores filters, which the caller has already merged with the
// screen's template.
func (s *SavedViewService) Create(ctx context.Context, adminID, screen, name string, filters listfilter.State) (*models.SavedView, error) {
	raw, err := json.Marshal(filters)
	if err != nil {
		return nil, fmt.Errorf("encode saved view filters: %w", err)
	}
	v := &models.SavedView{
		ID:        uuid.Must(uuid.NewV7()),
		AdminID:   adminID,
		Screen:    screen,
		Name:      name,
		Filters:   datatypes.JSON(raw),
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, v); err != nil {
		s.log.Error("create saved view failed", zap.String("screen", screen), zap.Error(err))
		return nil, fmt.Errorf("create saved view: %w", err)
	}
	s.log.Info("saved view created", zap.String("id", v.ID.String()), zap.String("screen", screen))
	return v, nil
}

func (s *SavedViewService) List(ctx context.Context, adminID, screen string) ([]models.SavedView, error) {
	return s.repo.List(ctx, adminID, screen)
}

func (s *SavedViewService) Get(ctx context.Context, adminID string, id uuid.UUID) (*models.SavedView, error) {
	return s.repo.Get(ctx, adminID, id)
}

func (s *SavedViewService) Delete(ctx context.Context, adminID string, id uuid.UUID) error {
	return s.repo.Delete(ctx, adminID, id)
}

// ViewFilters decodes the stored filter state of v.
func ViewFilters(v *models.SavedView) (listfilter.State, error) {
	var state listfilter.State
	if len(v.Filters) == 0 {
		return listfilter.State{}, nil
	}
	if err := json.Unmarshal(v.Filters, &state); err != nil {
		return nil, fmt.Errorf("decode saved view filters: %w", err)
	}
	return state, nil
}

// MemorySavedViewRepository keeps saved views in process.
type MemorySavedViewRepository struct {
	mu    sync.Mutex
	views []models.SavedView
}

func NewMemorySavedViewRepository() *MemorySavedViewRepository {
	return &MemorySavedViewRepository{}
}

func (m *MemorySavedViewRepository) Create(_ context.Context, v *models.SavedView) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.views = append(m.views, *v)
	return nil
}

func (m *MemorySavedViewRepository) List(_ context.Context, adminID, screen string) ([]models.SavedView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.SavedView{}
	for i := len(m.views) - 1; i >= 0; i-- {
		v := m.views[i]
		if v.AdminID == adminID && (screen == "" || v.Screen == screen) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *MemorySavedViewRepository) Get(_ context.Context, adminID string, id uuid.UUID) (*models.SavedView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.views {
		if m.views[i].ID == id && m.views[i].AdminID == adminID {
			v := m.views[i]
			return &v, nil
		}
	}
	return nil, ErrViewNotFound
}

func (m *MemorySavedViewRepository) Delete(_ context.Context, adminID string, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.views {
		if m.views[i].ID == id && m.views[i].AdminID == adminID {
			m.views = append(m.views[:i], m.views[i+1:]...)
			return nil
		}
	}
	return ErrViewNotFound
}
