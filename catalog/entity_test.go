package catalog_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacentio/moviecast/catalog"
)

func TestMovie_JSONPassthrough(t *testing.T) {
	raw := `{"id":1234,"title":"Dune","overview":"Spice.","genre_ids":[878,12],"popularity":1002.5,"adult":false,"original_language":"en"}`

	var m catalog.Movie
	require.NoError(t, json.Unmarshal([]byte(raw), &m))

	assert.Equal(t, int64(1234), m.ID)
	assert.Equal(t, "Dune", m.Title)
	assert.Equal(t, []int{878, 12}, m.GenreIDs)
	assert.Contains(t, m.Attributes, "original_language")

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestMovie_MarshalWithoutAttributes(t *testing.T) {
	out, err := json.Marshal(catalog.Movie{ID: 1, Title: "T", Overview: "O", GenreIDs: []int{1}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"title":"T","overview":"O","genre_ids":[1]}`, string(out))
}

func TestCastMember_JSONPassthrough(t *testing.T) {
	raw := `{"movieId":2,"actorName":"Meryl Streep","roleName":"Margaret Thatcher","roleDescription":"Prime Minister"}`

	var c catalog.CastMember
	require.NoError(t, json.Unmarshal([]byte(raw), &c))
	assert.Equal(t, int64(2), c.MovieID)
	assert.Equal(t, "Margaret Thatcher", c.RoleName)

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestCastMember_UnmarshalRejectsBadTypes(t *testing.T) {
	var c catalog.CastMember
	assert.Error(t, json.Unmarshal([]byte(`{"movieId":"two"}`), &c))
}

func TestStoreError_Unwrap(t *testing.T) {
	cause := errors.New("throttled")
	err := &catalog.StoreError{Op: "scan movies", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "catalog: scan movies: throttled", err.Error())
}
