package api

import (
	"net/url"

	"github.com/aws/aws-lambda-go/events"
)

// lambdaParams returns the query parameters of a function URL request. Keys
// present with an empty value are kept, since presence alone selects a filter.
func lambdaParams(req events.LambdaFunctionURLRequest) map[string]string {
	params := make(map[string]string, len(req.QueryStringParameters))
	for k, v := range req.QueryStringParameters {
		params[k] = v
	}
	return params
}

// flattenQuery keeps the first value of each query parameter.
func flattenQuery(values url.Values) map[string]string {
	params := make(map[string]string, len(values))
	for k, vs := range values {
		if len(vs) == 0 {
			params[k] = ""
			continue
		}
		params[k] = vs[0]
	}
	return params
}
