package store

import (
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jacentio/moviecast/catalog"
)

// PK represents a DynamoDB primary key.
type PK map[string]types.AttributeValue

// MovieKey returns the primary key of a movie.
func MovieKey(id int64) PK {
	return PK{
		catalog.AttrID: &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
	}
}

// decodeMovie converts a DynamoDB item into a catalog.Movie, keeping every
// stored attribute in Attributes.
func decodeMovie(raw map[string]types.AttributeValue) (catalog.Movie, error) {
	var m catalog.Movie
	if err := attributevalue.UnmarshalMap(raw, &m); err != nil {
		return catalog.Movie{}, fmt.Errorf("decode movie: %w", err)
	}
	if err := attributevalue.UnmarshalMap(raw, &m.Attributes); err != nil {
		return catalog.Movie{}, fmt.Errorf("decode movie attributes: %w", err)
	}
	return m, nil
}

// decodeCastMember converts a DynamoDB item into a catalog.CastMember.
func decodeCastMember(raw map[string]types.AttributeValue) (catalog.CastMember, error) {
	var c catalog.CastMember
	if err := attributevalue.UnmarshalMap(raw, &c); err != nil {
		return catalog.CastMember{}, fmt.Errorf("decode cast member: %w", err)
	}
	if err := attributevalue.UnmarshalMap(raw, &c.Attributes); err != nil {
		return catalog.CastMember{}, fmt.Errorf("decode cast member attributes: %w", err)
	}
	return c, nil
}
