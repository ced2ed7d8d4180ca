package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jacentio/moviecast/catalog"
)

// Fixtures is the YAML document loaded into a local store:
//
//	movies:
//	  - id: 2
//	    title: The Iron Lady
//	    genre_ids: [18, 36]
//	cast:
//	  - movieId: 2
//	    actorName: Meryl Streep
//	    roleName: Margaret Thatcher
//
// Records are free-form; every attribute is kept and served back unchanged.
type Fixtures struct {
	Movies []map[string]any `yaml:"movies"`
	Cast   []map[string]any `yaml:"cast"`
}

// LoadFixtures reads a fixture file and writes its records into s.
func (s *Store) LoadFixtures(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("localstore: read fixtures: %w", err)
	}
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("localstore: parse fixtures %s: %w", path, err)
	}
	return s.Load(ctx, f)
}

// Load writes every fixture record into s.
func (s *Store) Load(ctx context.Context, f Fixtures) error {
	for i, rec := range f.Movies {
		var m catalog.Movie
		if err := convert(rec, &m); err != nil {
			return fmt.Errorf("localstore: movie #%d: %w", i, err)
		}
		if err := s.PutMovie(ctx, m); err != nil {
			return err
		}
	}
	for i, rec := range f.Cast {
		var c catalog.CastMember
		if err := convert(rec, &c); err != nil {
			return fmt.Errorf("localstore: cast member #%d: %w", i, err)
		}
		if err := s.PutCast(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

// convert maps a decoded YAML record onto a catalog entity via its JSON form.
func convert(rec map[string]any, out any) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
