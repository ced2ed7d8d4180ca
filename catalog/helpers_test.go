package catalog_test

import (
	"context"
	"sort"
	"strings"

	"github.com/jacentio/moviecast/catalog"
)

// fakeStore is an in-memory catalog.Store that counts round trips.
type fakeStore struct {
	movies map[int64]catalog.Movie
	cast   []catalog.CastMember

	scanErr  error
	getErr   error
	queryErr error

	scanCalls  int
	getCalls   int
	queryCalls int
	lastQuery  catalog.CastQuery
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		movies: map[int64]catalog.Movie{
			2: {ID: 2, Title: "The Iron Lady", Overview: "A look at the life of Margaret Thatcher.", GenreIDs: []int{18, 36}},
			7: {ID: 7, Title: "Doubt", Overview: "A nun questions a priest.", GenreIDs: []int{18}},
		},
		cast: []catalog.CastMember{
			{MovieID: 2, ActorName: "Meryl Streep", RoleName: "Margaret Thatcher"},
			{MovieID: 2, ActorName: "Jim Broadbent", RoleName: "Denis Thatcher"},
			{MovieID: 2, ActorName: "Meryl Fictional", RoleName: "Lead Stand-in"},
			{MovieID: 2, ActorName: "Alexandra Roach", RoleName: "Young Margaret"},
			{MovieID: 2, ActorName: "Harry Lloyd", RoleName: "Young Denis"},
			{MovieID: 2, ActorName: "Anthony Head", RoleName: "Geoffrey Howe"},
			{MovieID: 2, ActorName: "Iain Glen", RoleName: "Leader's Father"},
			{MovieID: 7, ActorName: "Meryl Streep", RoleName: "Sister Aloysius"},
			{MovieID: 99, ActorName: "Nobody Known", RoleName: "Lead"},
		},
	}
}

func (f *fakeStore) ScanMovies(ctx context.Context) ([]catalog.Movie, error) {
	f.scanCalls++
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	var out []catalog.Movie
	for _, m := range f.movies {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) GetMovie(ctx context.Context, id int64) (*catalog.Movie, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	m, ok := f.movies[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return &m, nil
}

func (f *fakeStore) QueryCast(ctx context.Context, q catalog.CastQuery) ([]catalog.CastMember, error) {
	f.queryCalls++
	f.lastQuery = q
	if f.queryErr != nil {
		return nil, f.queryErr
	}

	key := func(c catalog.CastMember) string {
		if q.SortKey == catalog.SortByRoleName {
			return c.RoleName
		}
		return c.ActorName
	}

	var out []catalog.CastMember
	for _, c := range f.cast {
		if c.MovieID == q.MovieID && strings.HasPrefix(key(c), q.Prefix) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return key(out[i]) < key(out[j]) })
	return out, nil
}

func castNames(cast []catalog.CastMember) []string {
	names := make([]string, 0, len(cast))
	for _, c := range cast {
		names = append(names, c.ActorName)
	}
	return names
}
