package store

// Config holds configuration for the Store.
type Config struct {
	// MoviesTable is the name of the movies table (partition key "id").
	// Default: "Movies"
	MoviesTable string

	// CastTable is the name of the cast table (partition key "movieId",
	// sort key "actorName").
	// Default: "MovieCast"
	CastTable string

	// RoleIndex is the local secondary index on the cast table sorted by
	// "roleName".
	// Default: "roleIx"
	RoleIndex string

	// ConsistentRead requests strongly consistent reads. Local secondary
	// indexes support them; leave false for eventually consistent reads.
	ConsistentRead bool
}

// DefaultConfig returns the conventional table and index names.
func DefaultConfig() Config {
	return Config{
		MoviesTable: "Movies",
		CastTable:   "MovieCast",
		RoleIndex:   "roleIx",
	}
}

// validate fills empty names with their defaults.
func (c *Config) validate() {
	def := DefaultConfig()
	if c.MoviesTable == "" {
		c.MoviesTable = def.MoviesTable
	}
	if c.CastTable == "" {
		c.CastTable = def.CastTable
	}
	if c.RoleIndex == "" {
		c.RoleIndex = def.RoleIndex
	}
}
