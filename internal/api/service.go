package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"recipechat/internal/assistant"
	"recipechat/internal/logging"
	"recipechat/internal/recipe"
	"recipechat/internal/services"
	"recipechat/internal/session"
)

// RecipeParser loads a recipe from a page URL.
type RecipeParser interface {
	Parse(ctx context.Context, url string) (*recipe.Recipe, error)
}

// RecipeCache stores parsed recipes by URL.
type RecipeCache interface {
	Get(ctx context.Context, url string) (*recipe.Recipe, bool, error)
	Put(ctx context.Context, r *recipe.Recipe) error
}

// Service implements the recipe chat operations independent of transport.
type Service struct {
	parser   RecipeParser
	cache    RecipeCache
	sessions *session.Manager
	logger   *slog.Logger
}

// NewService constructs a Service. cache may be nil.
func NewService(parser RecipeParser, cache RecipeCache, sessions *session.Manager, logger *slog.Logger) *Service {
	if sessions == nil {
		sessions = session.NewManager(session.Options{Logger: logger})
	}
	return &Service{
		parser:   parser,
		cache:    cache,
		sessions: sessions,
		logger:   logging.NewComponentLogger(logger, "api"),
	}
}

// Sessions exposes the underlying session manager.
func (s *Service) Sessions() *session.Manager {
	return s.sessions
}

// Parse loads req.URL into the requested session, creating one when
// req.SessionID is empty or unknown. Sessions are only registered once the
// recipe has loaded, so failed parses never count against max_sessions.
func (s *Service) Parse(ctx context.Context, req ParseRequest) (ParseResponse, error) {
	url := strings.TrimSpace(req.URL)
	if url == "" {
		return ParseResponse{}, &Error{Message: MsgNoURL, Err: services.Wrap(services.ErrValidation, "api", "parse", "url is required", nil)}
	}
	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID != "" {
		if err := session.ValidateID(sessionID); err != nil {
			return ParseResponse{}, &Error{Message: "Invalid session_id", Err: err}
		}
		ctx = services.WithSessionID(ctx, sessionID)
	}
	logger := logging.WithContext(ctx, s.logger)

	r, cached, err := s.load(ctx, logger, url, req.Refresh)
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) {
			return ParseResponse{}, err
		}
		logger.Error("recipe parse failed",
			logging.String("url", url),
			logging.Error(err),
			logging.String(logging.FieldEventType, "parse_failed"),
			logging.String(logging.FieldErrorHint, "verify the page exposes schema.org Recipe data"),
		)
		return ParseResponse{}, &Error{Message: parsePrefix + err.Error(), Err: err}
	}
	sess, _, err := s.sessions.Open(sessionID)
	if err != nil {
		return ParseResponse{}, &Error{Message: "Invalid session_id", Err: err}
	}
	sess.Load(r)
	if sessionID == "" {
		logger = logger.With(logging.String(logging.FieldSessionID, sess.ID()))
	}

	logger.Info("recipe loaded",
		logging.String("url", url),
		logging.Bool("cached", cached),
		logging.Int("ingredients", r.IngredientCount()),
		logging.Int("steps", r.StepCount()),
	)
	return ParseResponse{
		Success:          true,
		Message:          fmt.Sprintf("Successfully parsed recipe with %d ingredients and %d steps!", r.IngredientCount(), r.StepCount()),
		SessionID:        sess.ID(),
		Title:            r.Title,
		IngredientsCount: r.IngredientCount(),
		StepsCount:       r.StepCount(),
		Cached:           cached,
	}, nil
}

func (s *Service) load(ctx context.Context, logger *slog.Logger, url string, refresh bool) (*recipe.Recipe, bool, error) {
	if s.cache != nil && !refresh {
		r, ok, err := s.cache.Get(ctx, url)
		switch {
		case err != nil:
			logging.WarnWithContext(logger, "recipe cache read failed", "cache_read_failed",
				logging.Error(err),
				logging.String(logging.FieldImpact, "recipe fetched from the network"),
			)
		case ok:
			return r, true, nil
		}
	}
	if s.parser == nil {
		return nil, false, services.Wrap(services.ErrConfiguration, "api", "parse", "no recipe parser configured", nil)
	}
	r, err := s.parser.Parse(ctx, url)
	if err != nil {
		return nil, false, err
	}
	if s.cache != nil {
		if err := s.cache.Put(ctx, r); err != nil {
			logging.WarnWithContext(logger, "recipe cache write failed", "cache_write_failed",
				logging.Error(err),
				logging.String(logging.FieldImpact, "next parse of this url refetches the page"),
			)
		}
	}
	return r, false, nil
}

// Query answers req.Query in the named session.
func (s *Service) Query(ctx context.Context, req QueryRequest) (QueryResponse, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return QueryResponse{}, &Error{Message: MsgNoQuery, Err: services.Wrap(services.ErrValidation, "api", "query", "query is required", nil)}
	}
	sess, ok := s.sessions.Get(strings.TrimSpace(req.SessionID))
	if !ok || !sess.Ready() {
		return QueryResponse{}, &Error{Message: MsgNoRecipe, Err: services.Wrap(services.ErrValidation, "api", "query", "session has no usable recipe", nil)}
	}
	ctx = services.WithSessionID(ctx, sess.ID())

	answer, err := sess.Ask(query)
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrEmptyQuery):
			return QueryResponse{}, &Error{Message: MsgNoQuery, Err: services.Wrap(services.ErrValidation, "api", "query", "", err)}
		case errors.Is(err, session.ErrNoRecipe), errors.Is(err, recipe.ErrEmptyRecipe):
			return QueryResponse{}, &Error{Message: MsgNoRecipe, Err: services.Wrap(services.ErrValidation, "api", "query", "", err)}
		default:
			return QueryResponse{}, err
		}
	}
	attrs := []logging.Attr{logging.String("intent", string(answer.Intent))}
	if answer.Intent.Navigates() {
		attrs = append(attrs, logging.Int("current_step", answer.CurrentStep))
	}
	logging.WithContext(ctx, s.logger).Debug("query answered", logging.Args(attrs...)...)
	return QueryResponse{
		Success:     true,
		Response:    answer.Text,
		Intent:      string(answer.Intent),
		CurrentStep: answer.CurrentStep,
	}, nil
}

// Status describes the named session. Unknown sessions report no recipe.
func (s *Service) Status(_ context.Context, sessionID string) StatusResponse {
	sess, ok := s.sessions.Get(strings.TrimSpace(sessionID))
	if !ok {
		return StatusResponse{}
	}
	snap := sess.Snapshot()
	return StatusResponse{
		SessionID:        snap.ID,
		HasRecipe:        snap.HasRecipe,
		URL:              snap.URL,
		Title:            snap.Title,
		IngredientsCount: snap.IngredientsCount,
		StepsCount:       snap.StepsCount,
		CurrentStep:      snap.CurrentStep,
	}
}

// Reset discards the named session.
func (s *Service) Reset(_ context.Context, sessionID string) ResetResponse {
	removed := s.sessions.Delete(strings.TrimSpace(sessionID))
	return ResetResponse{Success: true, Removed: removed}
}

// Health reports liveness.
func (s *Service) Health() HealthResponse {
	return HealthResponse{Status: "ok", Message: "Server is running"}
}
