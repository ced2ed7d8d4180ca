package api

import (
	"net/url"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
)

func TestFlattenQuery(t *testing.T) {
	values := url.Values{
		"movieId":  {"2", "3"},
		"roleName": {""},
		"empty":    {},
	}

	params := flattenQuery(values)

	assert.Equal(t, "2", params["movieId"])
	v, ok := params["roleName"]
	assert.True(t, ok, "present but empty parameter must be kept")
	assert.Empty(t, v)
	_, ok = params["empty"]
	assert.True(t, ok)
}

func TestLambdaParams_Copies(t *testing.T) {
	req := events.LambdaFunctionURLRequest{QueryStringParameters: map[string]string{"actorName": ""}}

	params := lambdaParams(req)
	params["movieId"] = "2"

	_, ok := params["actorName"]
	assert.True(t, ok)
	assert.NotContains(t, req.QueryStringParameters, "movieId")
}

func TestLambdaParams_Nil(t *testing.T) {
	params := lambdaParams(events.LambdaFunctionURLRequest{})
	assert.NotNil(t, params)
	assert.Empty(t, params)
}
