// Package catalog implements the read model of the movie catalog: movies, the
// cast members of each movie, and the translation of request filters into a
// single lookup against a sorted entity store.
//
// # Stores
//
// A [Store] is any backend able to answer three questions:
//
//	type Store interface {
//	    ScanMovies(ctx context.Context) ([]Movie, error)
//	    GetMovie(ctx context.Context, id int64) (*Movie, error)
//	    QueryCast(ctx context.Context, q CastQuery) ([]CastMember, error)
//	}
//
// Cast members are partitioned by movie id and sorted by actor name. An
// alternate ordering sorts the same partition by role name.
//
// # Cast queries
//
// A [CastFilter] is selected once from the request parameters and compiled into
// a [CastQuery]:
//
//	filter := catalog.SelectFilter(params) // roleName wins over actorName
//	q := catalog.NewCastQuery(movieID, filter)
//
// # Errors
//
//   - [ValidationError] - missing or malformed request parameter
//   - [ErrNotFound] - referenced movie does not exist
//   - [StoreError] - backend failure
package catalog
