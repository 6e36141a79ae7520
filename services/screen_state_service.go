package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	list_cache "github.com/Modeva-Ecommerce/modeva-cms-admin/cache"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/models"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/rowaction"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var ErrScreenNotFound = errors.New("screen not found")

// ScreenStateStore persists row-action state per admin and screen.
type ScreenStateStore interface {
	Load(ctx context.Context, adminID, screen string) (models.ScreenState, error)
	Save(ctx context.Context, adminID, screen string, state models.ScreenState) error
}

// ── Redis store ──────────────────────────────────────────────────────────────

type RedisScreenStateStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisScreenStateStore(client *redis.Client, ttl time.Duration) *RedisScreenStateStore {
	return &RedisScreenStateStore{client: client, ttl: ttl}
}

func screenStateKey(adminID, screen string) string {
	return "screen:" + adminID + ":" + screen + ":rowaction"
}

func (s *RedisScreenStateStore) Load(ctx context.Context, adminID, screen string) (models.ScreenState, error) {
	raw, err := s.client.Get(ctx, screenStateKey(adminID, screen)).Bytes()
	if errors.Is(err, redis.Nil) {
		return rowaction.Initial[rowaction.Fields](), nil
	}
	if err != nil {
		return models.ScreenState{}, fmt.Errorf("load screen state: %w", err)
	}
	var state models.ScreenState
	if err := json.Unmarshal(raw, &state); err != nil {
		return models.ScreenState{}, fmt.Errorf("decode screen state: %w", err)
	}
	return state, nil
}

func (s *RedisScreenStateStore) Save(ctx context.Context, adminID, screen string, state models.ScreenState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode screen state: %w", err)
	}
	if err := s.client.Set(ctx, screenStateKey(adminID, screen), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save screen state: %w", err)
	}
	return nil
}

// ── In-memory store (single instance deployments, tests) ────────────────────

type MemoryScreenStateStore struct {
	mu     sync.Mutex
	states map[string]models.ScreenState
}

func NewMemoryScreenStateStore() *MemoryScreenStateStore {
	return &MemoryScreenStateStore{states: map[string]models.ScreenState{}}
}

func (s *MemoryScreenStateStore) Load(_ context.Context, adminID, screen string) (models.ScreenState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state, ok := s.states[screenStateKey(adminID, screen)]; ok {
		return state, nil
	}
	return rowaction.Initial[rowaction.Fields](), nil
}

func (s *MemoryScreenStateStore) Save(_ context.Context, adminID, screen string, state models.ScreenState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[screenStateKey(adminID, screen)] = state
	return nil
}

// ── Service ──────────────────────────────────────────────────────────────────

// ScreenStateService drives the row-action state machine of each admin's
// list screens.
type ScreenStateService struct {
	store   ScreenStateStore
	screens map[string]struct{}
	pages   *list_cache.Cache
	log     *zap.Logger
}

// NewScreenStateService serves the row-action state of screens. pages may
// be nil; when set, a screen's cached list pages are dropped once an edit
// or delete popup on it closes.
func NewScreenStateService(store ScreenStateStore, screens []string, pages *list_cache.Cache, log *zap.Logger) *ScreenStateService {
	known := make(map[string]struct{}, len(screens))
	for _, s := range screens {
		known[s] = struct{}{}
	}
	return &ScreenStateService{store: store, screens: known, pages: pages, log: log.Named("screen.state")}
}

func (s *ScreenStateService) State(ctx context.Context, adminID, screen string) (models.ScreenState, error) {
	if _, ok := s.screens[screen]; !ok {
		return models.ScreenState{}, ErrScreenNotFound
	}
	return s.store.Load(ctx, adminID, screen)
}

// Dispatch loads the screen's state, reduces the event into it and stores
// the result. Unknown event types leave the state as it was.
func (s *ScreenStateService) Dispatch(ctx context.Context, adminID, screen string, event rowaction.Event[rowaction.Fields]) (models.ScreenState, error) {
	current, err := s.State(ctx, adminID, screen)
	if err != nil {
		return models.ScreenState{}, err
	}
	next := rowaction.NewMachine(current).Dispatch(event)
	if err := s.store.Save(ctx, adminID, screen, next); err != nil {
		return models.ScreenState{}, err
	}
	if s.pages != nil && event.Type == rowaction.Close && (current.Action == rowaction.Edit || current.Action == rowaction.Delete) {
		s.pages.InvalidateScreen(screen)
		s.log.Debug("list pages invalidated", zap.String("screen", screen), zap.String("after", string(current.Action)))
	}
	s.log.Debug("row action dispatched",
		zap.String("admin_id", adminID),
		zap.String("screen", screen),
		zap.String("type", string(event.Type)),
		zap.Bool("open", next.Open),
	)
	return next, nil
}
