package catalog

import (
	"context"
	"errors"
)

// MovieGetter performs a movie point lookup.
type MovieGetter interface {
	GetMovie(ctx context.Context, id int64) (*Movie, error)
}

// MovieFacts are the movie fields surfaced alongside a cast listing.
type MovieFacts struct {
	Title    string `json:"title"`
	GenreIDs []int  `json:"genre_ids"`
	Overview string `json:"overview"`
}

// CastResponse is the payload of a get-cast request. Facts is nil when
// enrichment was not requested or the movie does not exist, in which case
// its fields are omitted from the JSON output.
type CastResponse struct {
	Cast []CastMember `json:"cast"`
	*MovieFacts
}

// Assemble merges cast rows with optional movie facts. When enrich is set it
// performs exactly one movie lookup; a missing movie is not an error.
func Assemble(ctx context.Context, movies MovieGetter, cast []CastMember, movieID int64, enrich bool) (*CastResponse, error) {
	if cast == nil {
		cast = []CastMember{}
	}
	resp := &CastResponse{Cast: cast}
	if !enrich {
		return resp, nil
	}

	movie, err := movies.GetMovie(ctx, movieID)
	if errors.Is(err, ErrNotFound) {
		return resp, nil
	}
	if err != nil {
		return nil, err
	}

	resp.MovieFacts = &MovieFacts{
		Title:    movie.Title,
		GenreIDs: movie.GenreIDs,
		Overview: movie.Overview,
	}
	return resp, nil
}
