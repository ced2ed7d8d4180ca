package catalog

import (
	"strconv"
)

// Request parameter names.
const (
	ParamID        = "id"
	ParamMovieID   = "movieId"
	ParamRoleName  = "roleName"
	ParamActorName = "actorName"
	ParamFacts     = "facts"
)

// FilterKind selects how a cast partition is narrowed.
type FilterKind int

const (
	// FilterNone returns the whole partition ordered by actor name.
	FilterNone FilterKind = iota

	// FilterByActor matches actor names beginning with a prefix.
	FilterByActor

	// FilterByRole matches role names beginning with a prefix, using the
	// alternate ordering by role name.
	FilterByRole
)

func (k FilterKind) String() string {
	switch k {
	case FilterByActor:
		return "actor"
	case FilterByRole:
		return "role"
	default:
		return "none"
	}
}

// CastFilter is the filter selection for a cast query.
// Prefix is meaningful only for FilterByActor and FilterByRole.
type CastFilter struct {
	Kind   FilterKind
	Prefix string
}

// NoFilter selects every cast member of a movie.
func NoFilter() CastFilter { return CastFilter{Kind: FilterNone} }

// ByActorPrefix selects cast members whose actor name begins with prefix.
func ByActorPrefix(prefix string) CastFilter {
	return CastFilter{Kind: FilterByActor, Prefix: prefix}
}

// ByRolePrefix selects cast members whose role name begins with prefix.
func ByRolePrefix(prefix string) CastFilter {
	return CastFilter{Kind: FilterByRole, Prefix: prefix}
}

// SelectFilter picks the filter from raw request parameters.
// A present roleName takes precedence over actorName.
func SelectFilter(params map[string]string) CastFilter {
	if prefix, ok := params[ParamRoleName]; ok {
		return ByRolePrefix(prefix)
	}
	if prefix, ok := params[ParamActorName]; ok {
		return ByActorPrefix(prefix)
	}
	return NoFilter()
}

// SortKey names the attribute a cast partition is ordered by.
type SortKey string

const (
	// SortByActorName is the primary ordering of the cast store.
	SortByActorName SortKey = AttrActorName

	// SortByRoleName is the alternate ordering (role index).
	SortByRoleName SortKey = AttrRoleName
)

// CastQuery is a backend-neutral description of one cast lookup:
// the partition for MovieID, ordered by SortKey, narrowed to sort key
// values beginning with Prefix. An empty Prefix reads the whole partition.
type CastQuery struct {
	MovieID int64
	SortKey SortKey
	Prefix  string
}

// UsesRoleIndex reports whether the query reads the alternate ordering.
func (q CastQuery) UsesRoleIndex() bool {
	return q.SortKey == SortByRoleName
}

// HasPrefix reports whether the query carries a sort key condition.
func (q CastQuery) HasPrefix() bool {
	return q.Prefix != ""
}

// NewCastQuery compiles a filter into a query for movieID.
func NewCastQuery(movieID int64, filter CastFilter) CastQuery {
	switch filter.Kind {
	case FilterByRole:
		return CastQuery{MovieID: movieID, SortKey: SortByRoleName, Prefix: filter.Prefix}
	case FilterByActor:
		return CastQuery{MovieID: movieID, SortKey: SortByActorName, Prefix: filter.Prefix}
	default:
		return CastQuery{MovieID: movieID, SortKey: SortByActorName}
	}
}

// ParseMovieID reads an integer id from params[name].
func ParseMovieID(params map[string]string, name string) (int64, error) {
	raw, ok := params[name]
	if !ok || raw == "" {
		return 0, &ValidationError{Kind: MissingParameter, Param: name}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &ValidationError{Kind: InvalidFormat, Param: name, Value: raw}
	}
	return id, nil
}

// CastRequest is a validated get-cast request.
type CastRequest struct {
	MovieID int64
	Filter  CastFilter

	// Facts requests movie enrichment. Only the literal "true" enables it.
	Facts bool
}

// Query compiles the request into its cast query.
func (r CastRequest) Query() CastQuery {
	return NewCastQuery(r.MovieID, r.Filter)
}

// ParseCastRequest validates raw get-cast parameters.
func ParseCastRequest(params map[string]string) (CastRequest, error) {
	movieID, err := ParseMovieID(params, ParamMovieID)
	if err != nil {
		return CastRequest{}, err
	}
	return CastRequest{
		MovieID: movieID,
		Filter:  SelectFilter(params),
		Facts:   params[ParamFacts] == "true",
	}, nil
}
