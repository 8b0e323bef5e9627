package generation

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/sazon/internal/models"
	"github.com/thenoetrevino/sazon/internal/recipe"
)

// Service defines recipe generation operations
type Service interface {
	// Generate waits out the simulated delay and renders the template
	Generate(ctx context.Context, req GenerateRequest) (*models.Recipe, error)

	// History returns recipes generated during this session, oldest first
	History(ctx context.Context) ([]*models.Recipe, error)
}

// Recorder receives every generated recipe
type Recorder interface {
	Record(ctx context.Context, recipe *models.Recipe) error
	List(ctx context.Context) ([]*models.Recipe, error)
}

// GenerateRequest encapsulates the form snapshot taken at trigger time
type GenerateRequest struct {
	Ingredients  []string
	Restrictions models.DietaryRestrictions
}

// Option configures the service
type Option func(*service)

// WithDelay replaces the simulated delay
func WithDelay(d Delay) Option {
	return func(s *service) {
		s.delay = d
	}
}

// WithRecorder stores every generated recipe in r
func WithRecorder(r Recorder) Option {
	return func(s *service) {
		s.recorder = r
	}
}

// WithLogger sets the logger used for generation events
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		s.logger = logger
	}
}

// WithClock overrides the timestamp source
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// service implements Service
type service struct {
	delay    Delay
	recorder Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates a generation service with a two second delay by default
func NewService(opts ...Option) Service {
	s := &service{
		delay:  FixedDelay(DefaultDelay),
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate renders a recipe once the delay has elapsed
func (s *service) Generate(ctx context.Context, req GenerateRequest) (*models.Recipe, error) {
	if len(req.Ingredients) == 0 {
		return nil, ErrNoIngredients
	}

	// copy so later form edits cannot leak into the result
	ingredients := slices.Clone(req.Ingredients)

	s.logger.Debug("recipe generation started", "ingredients", len(ingredients))

	if err := s.delay.Wait(ctx); err != nil {
		return nil, fmt.Errorf("generation interrupted: %w", err)
	}

	result := &models.Recipe{
		ID:           uuid.NewString(),
		Title:        recipe.Title(ingredients[0]),
		Text:         recipe.Generate(ingredients, req.Restrictions),
		Ingredients:  ingredients,
		Restrictions: req.Restrictions,
		GeneratedAt:  s.now(),
	}

	if s.recorder != nil {
		if err := s.recorder.Record(ctx, result); err != nil {
			// history is advisory; the recipe is still returned
			s.logger.Error("failed to record recipe", "id", result.ID, "error", err)
		}
	}

	s.logger.Info("recipe generated", "id", result.ID, "title", result.Title)
	return result, nil
}

// History lists this session's recipes
func (s *service) History(ctx context.Context) ([]*models.Recipe, error) {
	if s.recorder == nil {
		return []*models.Recipe{}, nil
	}
	return s.recorder.List(ctx)
}
