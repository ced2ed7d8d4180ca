package store

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jacentio/moviecast/catalog"
)

// ErrTableNotFound is matched when DynamoDB reports a missing table or index.
var ErrTableNotFound = errors.New("store: table or index not found")

// wrapError converts an SDK failure into a catalog.StoreError for op.
func wrapError(op string, err error) error {
	var rnf *types.ResourceNotFoundException
	if errors.As(err, &rnf) {
		err = fmt.Errorf("%w: %w", ErrTableNotFound, err)
	}
	return &catalog.StoreError{Op: op, Err: err}
}
