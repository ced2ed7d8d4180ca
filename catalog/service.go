package catalog

import (
	"context"
	"log/slog"
)

// Store is the entity store backing the catalog.
type Store interface {
	MovieGetter

	// ScanMovies returns the movies of a single store page.
	ScanMovies(ctx context.Context) ([]Movie, error)

	// QueryCast runs one cast query and returns a single store page,
	// ascending by q.SortKey.
	QueryCast(ctx context.Context, q CastQuery) ([]CastMember, error)
}

// Service answers catalog requests against a Store.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService creates a Service. A nil logger falls back to slog.Default.
func NewService(s Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:  s,
		logger: logger,
	}
}

// ListMovies returns every movie the store yields in one page.
func (s *Service) ListMovies(ctx context.Context) ([]Movie, error) {
	movies, err := s.store.ScanMovies(ctx)
	if err != nil {
		return nil, err
	}
	if movies == nil {
		movies = []Movie{}
	}
	return movies, nil
}

// GetMovie looks up the movie named by params["id"].
// It returns ErrNotFound when no such movie exists.
func (s *Service) GetMovie(ctx context.Context, params map[string]string) (*Movie, error) {
	id, err := ParseMovieID(params, ParamID)
	if err != nil {
		return nil, err
	}
	return s.store.GetMovie(ctx, id)
}

// GetCast validates params, runs one cast query and optionally enriches the
// result with movie facts. Validation failures never reach the store.
func (s *Service) GetCast(ctx context.Context, params map[string]string) (*CastResponse, error) {
	req, err := ParseCastRequest(params)
	if err != nil {
		return nil, err
	}

	q := req.Query()
	s.logger.Debug("querying cast",
		"movieId", q.MovieID,
		"filter", req.Filter.Kind.String(),
		"sortKey", string(q.SortKey),
		"prefix", q.Prefix,
		"facts", req.Facts,
	)

	cast, err := s.store.QueryCast(ctx, q)
	if err != nil {
		return nil, err
	}
	return Assemble(ctx, s.store, cast, req.MovieID, req.Facts)
}
