package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/jacentio/moviecast/catalog"
)

// DynamoAPI is the subset of *dynamodb.Client used by the Store.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Store reads movies and cast members from DynamoDB.
type Store struct {
	client DynamoAPI
	config Config
}

var _ catalog.Store = (*Store)(nil)

// New creates a new Store instance.
func New(client DynamoAPI, config Config) *Store {
	config.validate()
	return &Store{
		client: client,
		config: config,
	}
}

// Config returns the effective configuration.
func (s *Store) Config() Config {
	return s.config
}

// ScanMovies returns the movies of the first scan page.
func (s *Store) ScanMovies(ctx context.Context) ([]catalog.Movie, error) {
	result, err := s.client.Scan(ctx, &dynamodb.ScanInput{
		TableName:      aws.String(s.config.MoviesTable),
		ConsistentRead: aws.Bool(s.config.ConsistentRead),
	})
	if err != nil {
		return nil, wrapError("scan movies", err)
	}

	movies := make([]catalog.Movie, 0, len(result.Items))
	for _, raw := range result.Items {
		m, err := decodeMovie(raw)
		if err != nil {
			return nil, wrapError("scan movies", err)
		}
		movies = append(movies, m)
	}
	return movies, nil
}

// GetMovie retrieves a movie by id, returning catalog.ErrNotFound if missing.
func (s *Store) GetMovie(ctx context.Context, id int64) (*catalog.Movie, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.config.MoviesTable),
		Key:            MovieKey(id),
		ConsistentRead: aws.Bool(s.config.ConsistentRead),
	})
	if err != nil {
		return nil, wrapError("get movie", err)
	}
	if result.Item == nil {
		return nil, catalog.ErrNotFound
	}

	m, err := decodeMovie(result.Item)
	if err != nil {
		return nil, wrapError("get movie", err)
	}
	return &m, nil
}

// QueryCast runs q as a single Query call and returns its first page.
func (s *Store) QueryCast(ctx context.Context, q catalog.CastQuery) ([]catalog.CastMember, error) {
	input, err := s.CastQueryInput(q)
	if err != nil {
		return nil, wrapError("query cast", err)
	}

	result, err := s.client.Query(ctx, input)
	if err != nil {
		return nil, wrapError("query cast", err)
	}

	cast := make([]catalog.CastMember, 0, len(result.Items))
	for _, raw := range result.Items {
		c, err := decodeCastMember(raw)
		if err != nil {
			return nil, wrapError("query cast", err)
		}
		cast = append(cast, c)
	}
	return cast, nil
}

// CastQueryInput compiles q into a DynamoDB Query request. The role
// ordering reads the role index; every other query reads the table.
func (s *Store) CastQueryInput(q catalog.CastQuery) (*dynamodb.QueryInput, error) {
	keyCond := expression.KeyEqual(expression.Key(catalog.AttrMovieID), expression.Value(q.MovieID))
	if q.HasPrefix() {
		keyCond = keyCond.And(expression.KeyBeginsWith(expression.Key(string(q.SortKey)), q.Prefix))
	}

	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("build key condition: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(s.config.CastTable),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ConsistentRead:            aws.Bool(s.config.ConsistentRead),
	}
	if q.UsesRoleIndex() {
		input.IndexName = aws.String(s.config.RoleIndex)
	}
	return input, nil
}
