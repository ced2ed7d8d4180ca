// Package store provides the DynamoDB entity store behind the movie catalog.
//
// Two tables are read:
//
//   - the movies table, partitioned by the numeric "id" attribute
//   - the cast table, partitioned by "movieId" and sorted by "actorName", with a
//     local secondary index re-sorting each partition by "roleName"
//
// A [Store] satisfies [catalog.Store]. Every operation is a single DynamoDB
// round trip returning one page; the store never paginates and never retries
// (retry policy belongs to the SDK client).
//
// # Configuration
//
// Use [DefaultConfig] for the conventional table names:
//
//	cfg := store.DefaultConfig()
//	cfg.CastTable = "MovieCast-staging"
//	s := store.New(client, cfg)
//
// # Cast queries
//
// A [catalog.CastQuery] compiles to one Query call. The key condition is built
// with the SDK expression builder:
//
//	movieId = :id                                  // whole partition
//	movieId = :id AND begins_with(actorName, :p)   // primary ordering
//	movieId = :id AND begins_with(roleName, :p)    // role index
//
// # Errors
//
// Backend failures are returned as [catalog.StoreError]. A missing table or
// index additionally matches [ErrTableNotFound]. A missing movie is
// [catalog.ErrNotFound].
package store
