// Package api exposes the catalog endpoints over AWS Lambda function URLs and
// over a local echo HTTP server.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"github.com/jacentio/moviecast/catalog"
)

const contentTypeJSON = "application/json"

// Options tunes endpoint behavior.
type Options struct {
	// StrictNotFound answers a get-movie miss with 404 instead of 200 {}.
	StrictNotFound bool

	// Timeout bounds each request's store calls. Zero means no limit.
	Timeout time.Duration
}

// Handler serves the catalog endpoints.
type Handler struct {
	svc    *catalog.Service
	logger *slog.Logger
	opts   Options
}

// NewHandler creates a new endpoint handler.
func NewHandler(svc *catalog.Service, logger *slog.Logger, opts Options) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		svc:    svc,
		logger: logger,
		opts:   opts,
	}
}

// response is a transport-neutral endpoint result. A nil body is sent empty.
type response struct {
	status int
	body   []byte
}

type dataEnvelope struct {
	Data any `json:"data"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

// ListMovies is the Lambda function URL handler for listing movies.
func (h *Handler) ListMovies(ctx context.Context, req events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	return lambdaResponse(h.listMovies(ctx, h.requestLogger(req))), nil
}

// GetMovie is the Lambda function URL handler for a single movie.
func (h *Handler) GetMovie(ctx context.Context, req events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	return lambdaResponse(h.getMovie(ctx, h.requestLogger(req), lambdaParams(req))), nil
}

// GetCast is the Lambda function URL handler for a movie's cast.
func (h *Handler) GetCast(ctx context.Context, req events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	return lambdaResponse(h.getCast(ctx, h.requestLogger(req), lambdaParams(req))), nil
}

func (h *Handler) requestLogger(req events.LambdaFunctionURLRequest) *slog.Logger {
	if id := req.RequestContext.RequestID; id != "" {
		return h.logger.With("requestId", id)
	}
	return h.logger
}

func lambdaResponse(r response) events.LambdaFunctionURLResponse {
	return events.LambdaFunctionURLResponse{
		StatusCode: r.status,
		Headers:    map[string]string{"content-type": contentTypeJSON},
		Body:       string(r.body),
	}
}

func (h *Handler) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.opts.Timeout > 0 {
		return context.WithTimeout(ctx, h.opts.Timeout)
	}
	return context.WithCancel(ctx)
}

func (h *Handler) listMovies(ctx context.Context, logger *slog.Logger) response {
	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	movies, err := h.svc.ListMovies(ctx)
	if err != nil {
		logger.Error("failed to list movies", "error", err)
		return response{status: http.StatusInternalServerError}
	}
	return h.encode(logger, http.StatusOK, dataEnvelope{Data: movies}, false)
}

func (h *Handler) getMovie(ctx context.Context, logger *slog.Logger, params map[string]string) response {
	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	movie, err := h.svc.GetMovie(ctx, params)
	switch {
	case err == nil:
		return h.encode(logger, http.StatusOK, dataEnvelope{Data: movie}, false)
	case errors.Is(err, catalog.ErrNotFound):
		logger.Info("movie not found", "id", params[catalog.ParamID])
		if h.opts.StrictNotFound {
			return response{status: http.StatusNotFound}
		}
		return response{status: http.StatusOK, body: []byte("{}")}
	case catalog.IsValidation(err):
		logger.Warn("rejected get movie request", "error", err)
		return response{status: http.StatusBadRequest}
	default:
		logger.Error("failed to get movie", "id", params[catalog.ParamID], "error", err)
		return response{status: http.StatusInternalServerError}
	}
}

func (h *Handler) getCast(ctx context.Context, logger *slog.Logger, params map[string]string) response {
	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	resp, err := h.svc.GetCast(ctx, params)
	switch {
	case err == nil:
		logger.Info("served cast",
			"movieId", params[catalog.ParamMovieID],
			"castCount", len(resp.Cast),
			"facts", resp.MovieFacts != nil,
		)
		return h.encode(logger, http.StatusOK, dataEnvelope{Data: resp}, true)
	case catalog.IsValidation(err):
		logger.Warn("rejected cast request", "error", err)
		return h.encode(logger, http.StatusBadRequest, errorEnvelope{Error: err.Error()}, true)
	default:
		logger.Error("failed to get cast", "movieId", params[catalog.ParamMovieID], "error", err)
		return h.encode(logger, http.StatusInternalServerError, errorEnvelope{Error: err.Error()}, true)
	}
}

// encode serializes v. On failure the status becomes 500, with an error body
// when withError is set.
func (h *Handler) encode(logger *slog.Logger, status int, v any, withError bool) response {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Error("failed to encode response", "error", err)
		if !withError {
			return response{status: http.StatusInternalServerError}
		}
		body, _ = json.Marshal(errorEnvelope{Error: err.Error()})
		return response{status: http.StatusInternalServerError, body: body}
	}
	return response{status: status, body: body}
}
