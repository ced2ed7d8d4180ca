package catalog

import (
	"bytes"
	"encoding/json"
)

// Attribute names shared by every backend.
const (
	AttrMovieID   = "movieId"
	AttrActorName = "actorName"
	AttrRoleName  = "roleName"
	AttrID        = "id"
)

// Movie is a catalog entry.
type Movie struct {
	ID       int64  `json:"id" dynamodbav:"id"`
	Title    string `json:"title" dynamodbav:"title"`
	Overview string `json:"overview" dynamodbav:"overview"`
	GenreIDs []int  `json:"genre_ids" dynamodbav:"genre_ids"`

	// Attributes is the complete stored record, including attributes not
	// modelled above. When set it is what gets serialized.
	Attributes map[string]any `json:"-" dynamodbav:"-"`
}

type movieFields Movie

// MarshalJSON emits the stored record unchanged when Attributes is set.
func (m Movie) MarshalJSON() ([]byte, error) {
	if m.Attributes != nil {
		return json.Marshal(m.Attributes)
	}
	return json.Marshal(movieFields(m))
}

// UnmarshalJSON fills both the typed fields and Attributes.
func (m *Movie) UnmarshalJSON(data []byte) error {
	var f movieFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	attrs, err := decodeAttributes(data)
	if err != nil {
		return err
	}
	*m = Movie(f)
	m.Attributes = attrs
	return nil
}

// CastMember is one actor's role in a movie. (MovieID, ActorName) is unique.
type CastMember struct {
	MovieID   int64  `json:"movieId" dynamodbav:"movieId"`
	ActorName string `json:"actorName" dynamodbav:"actorName"`
	RoleName  string `json:"roleName" dynamodbav:"roleName"`

	// Attributes is the complete stored record (e.g. roleDescription).
	Attributes map[string]any `json:"-" dynamodbav:"-"`
}

type castFields CastMember

// MarshalJSON emits the stored record unchanged when Attributes is set.
func (c CastMember) MarshalJSON() ([]byte, error) {
	if c.Attributes != nil {
		return json.Marshal(c.Attributes)
	}
	return json.Marshal(castFields(c))
}

// UnmarshalJSON fills both the typed fields and Attributes.
func (c *CastMember) UnmarshalJSON(data []byte) error {
	var f castFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	attrs, err := decodeAttributes(data)
	if err != nil {
		return err
	}
	*c = CastMember(f)
	c.Attributes = attrs
	return nil
}

// decodeAttributes keeps numbers as json.Number so large ids survive a round trip.
func decodeAttributes(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var attrs map[string]any
	if err := dec.Decode(&attrs); err != nil {
		return nil, err
	}
	return attrs, nil
}
