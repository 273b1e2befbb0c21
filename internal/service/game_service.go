//go:generate mockery --name GameService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go_5_memory_game/internal/catalog"
	"go_5_memory_game/internal/game"
	"go_5_memory_game/internal/middleware"
	"go_5_memory_game/internal/model"
	"go_5_memory_game/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GameService interface {
	StartGame(ctx context.Context, learnerID uuid.UUID) (*model.GameResponse, error)
	GetGame(ctx context.Context, learnerID, gameID uuid.UUID) (*model.GameResponse, error)
	SubmitAnswer(ctx context.Context, learnerID, gameID uuid.UUID, roundIndex int, req *model.SubmitAnswerRequest) (*model.AnswerResponse, error)
	ListWordStats(ctx context.Context, learnerID uuid.UUID) ([]model.WordStatResponse, error)
	ResetStatistics(ctx context.Context, learnerID uuid.UUID) error
}

// learnerState is everything kept in memory for one learner. mu serializes every
// read and write of the pool and the sessions.
type learnerState struct {
	mu       sync.Mutex
	store    *learnerStore
	scorer   *game.Scorer
	pool     *model.WordPool
	sessions []*model.Session // 古い順
}

func (st *learnerState) session(gameID uuid.UUID) (*model.Session, bool) {
	for _, s := range st.sessions {
		if s.ID == gameID {
			return s, true
		}
	}
	return nil, false
}

// remember keeps at most limit sessions and drops the oldest first.
func (st *learnerState) remember(s *model.Session, limit int) {
	st.sessions = append(st.sessions, s)
	if over := len(st.sessions) - limit; over > 0 {
		st.sessions = append([]*model.Session(nil), st.sessions[over:]...)
	}
}

type gameService struct {
	db             *gorm.DB
	statsRepo      repository.StatisticsRepository
	catalog        catalog.Catalog
	generator      *game.Generator
	sessionHistory int
	now            func() time.Time

	mu       sync.Mutex
	learners map[uuid.UUID]*learnerState
}

func NewGameService(db *gorm.DB, statsRepo repository.StatisticsRepository, cat catalog.Catalog, generator *game.Generator, sessionHistory int) GameService {
	if sessionHistory <= 0 {
		sessionHistory = 1
	}
	return &gameService{
		db:             db,
		statsRepo:      statsRepo,
		catalog:        cat,
		generator:      generator,
		sessionHistory: sessionHistory,
		now:            time.Now,
		learners:       make(map[uuid.UUID]*learnerState),
	}
}

func (s *gameService) learner(learnerID uuid.UUID, create bool) *learnerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.learners[learnerID]
	if !ok && create {
		store := newLearnerStore(s.db, s.statsRepo, learnerID)
		st = &learnerState{store: store, scorer: game.NewScorer(store)}
		s.learners[learnerID] = st
	}
	return st
}

// catalogEntries never fails: an unreachable catalog leaves only the stored words.
func (s *gameService) catalogEntries(ctx context.Context) []model.CatalogEntry {
	entries, err := s.catalog.Entries(ctx)
	if err != nil {
		middleware.GetLogger(ctx).Warn("Catalog unavailable, continuing with stored words", "error", err)
		return nil
	}
	return entries
}

// loadPool merges the catalog into the learner's pool, reading storage the first time.
// Caller holds st.mu.
func (st *learnerState) loadPool(ctx context.Context, entries []model.CatalogEntry) {
	if st.pool == nil {
		stored, _ := st.store.Load(ctx)
		st.pool = game.InitializePool(stored, entries)
		return
	}
	st.pool = game.InitializePool(st.pool.Snapshot(), entries)
}

func (s *gameService) StartGame(ctx context.Context, learnerID uuid.UUID) (*model.GameResponse, error) {
	logger := middleware.GetLogger(ctx)
	entries := s.catalogEntries(ctx)

	st := s.learner(learnerID, true)
	st.mu.Lock()
	defer st.mu.Unlock()

	st.loadPool(ctx, entries)

	session, err := s.generator.CreateSession(st.pool)
	if err != nil {
		if errors.Is(err, model.ErrEmptyPool) {
			logger.Warn("Cannot start game: no words available", "learner_id", learnerID.String())
			return nil, model.NewAppError("EMPTY_POOL", "No words are available to play with.", "", err)
		}
		logger.Error("Failed to create game session", "learner_id", learnerID.String(), "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create game.", "", fmt.Errorf("%w: %w", model.ErrInternalServer, err))
	}
	session.LearnerID = learnerID
	st.remember(session, s.sessionHistory)

	logger.Info("Game started",
		"learner_id", learnerID.String(),
		"game_id", session.ID.String(),
		"pool_size", st.pool.Len(),
	)
	resp := model.NewGameResponse(session)
	return &resp, nil
}

func (s *gameService) GetGame(ctx context.Context, learnerID, gameID uuid.UUID) (*model.GameResponse, error) {
	st := s.learner(learnerID, false)
	if st == nil {
		return nil, gameNotFound(gameID)
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	session, ok := st.session(gameID)
	if !ok {
		return nil, gameNotFound(gameID)
	}
	resp := model.NewGameResponse(session)
	return &resp, nil
}

func (s *gameService) SubmitAnswer(ctx context.Context, learnerID, gameID uuid.UUID, roundIndex int, req *model.SubmitAnswerRequest) (*model.AnswerResponse, error) {
	logger := middleware.GetLogger(ctx)

	st := s.learner(learnerID, false)
	if st == nil {
		return nil, gameNotFound(gameID)
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	session, ok := st.session(gameID)
	if !ok {
		return nil, gameNotFound(gameID)
	}
	if roundIndex < 0 || roundIndex >= len(session.Rounds) {
		return nil, model.NewAppError("INVALID_ROUND_INDEX",
			fmt.Sprintf("Round index must be between 0 and %d.", len(session.Rounds)-1), "round_index", model.ErrInvalidInput)
	}
	if session.IsComplete() {
		return nil, model.NewAppError("GAME_COMPLETE", "This game is already complete.", "", model.ErrConflict)
	}
	if roundIndex != session.CurrentRoundIndex {
		return nil, model.NewAppError("ROUND_NOT_CURRENT",
			fmt.Sprintf("Only round %d can be answered now.", session.CurrentRoundIndex), "round_index", model.ErrConflict)
	}

	round := session.Rounds[roundIndex]
	selected, ok := round.Option(req.Selected)
	if !ok {
		return nil, model.NewAppError("UNKNOWN_OPTION", "The selected answer is not one of the options.", "selected", model.ErrInvalidInput)
	}

	// 保存に失敗しても回答自体は記録してラウンドを進める
	recordErr := st.scorer.RecordAnswer(ctx, st.pool, session, roundIndex, selected)
	session.Advance(s.now())

	if recordErr != nil {
		if errors.Is(recordErr, model.ErrStorageWrite) {
			logger.Error("Failed to save statistics", "learner_id", learnerID.String(), "game_id", gameID.String(), "error", recordErr)
			return nil, model.NewAppError("STATISTICS_SAVE_FAILED", "The answer was recorded but statistics could not be saved.", "", recordErr)
		}
		logger.Error("Failed to record answer", "learner_id", learnerID.String(), "game_id", gameID.String(), "error", recordErr)
		return nil, recordErr
	}

	logger.Debug("Answer recorded",
		"game_id", gameID.String(),
		"round", roundIndex,
		"correct", round.IsCorrect(),
	)
	return &model.AnswerResponse{
		IsCorrect:     round.IsCorrect(),
		CorrectAnswer: round.CorrectAnswer.Label,
		Game:          model.NewGameResponse(session),
	}, nil
}

func (s *gameService) ListWordStats(ctx context.Context, learnerID uuid.UUID) ([]model.WordStatResponse, error) {
	entries := s.catalogEntries(ctx)

	st := s.learner(learnerID, true)
	st.mu.Lock()
	defer st.mu.Unlock()

	st.loadPool(ctx, entries)

	stats := make([]model.WordStatResponse, 0, st.pool.Len())
	for _, w := range st.pool.Words() {
		stats = append(stats, model.WordStatResponse{
			Label:          w.Label,
			ImageRef:       w.ImageRef,
			CorrectCount:   w.CorrectCount,
			IncorrectCount: w.IncorrectCount,
			Priority:       game.Priority(*w),
		})
	}
	return stats, nil
}

// ResetStatistics forgets every count and every session of the learner.
func (s *gameService) ResetStatistics(ctx context.Context, learnerID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	st := s.learner(learnerID, true)
	st.mu.Lock()
	defer st.mu.Unlock()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.statsRepo.Delete(ctx, tx, learnerID)
	})
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		logger.Error("Failed to reset statistics", "learner_id", learnerID.String(), "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to reset statistics.", "", fmt.Errorf("%w: %w", model.ErrInternalServer, err))
	}

	st.pool = nil
	st.sessions = nil
	logger.Info("Statistics reset", "learner_id", learnerID.String())
	return nil
}

func gameNotFound(gameID uuid.UUID) error {
	return model.NewAppError("GAME_NOT_FOUND", fmt.Sprintf("Game %s was not found.", gameID), "game_id", model.ErrNotFound)
}
