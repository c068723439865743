package client

import (
	"context"
	"encoding/json"

	"github.com/labforge-io/gitlab-client/internal/http"
	"github.com/labforge-io/gitlab-client/pkg/gitlab"
)

// decodeSingle unmarshals a response body into a single value. Decoding
// failures are typed so callers can tell a protocol mismatch from a
// request error.
func decodeSingle[T any](resp *http.Response) (*T, error) {
	var value T

	err := json.Unmarshal(resp.Body, &value)
	if err != nil {
		return nil, &gitlab.DecodeError{Err: err}
	}

	return &value, nil
}

// decodeCollection unmarshals a response body into a slice, preserving
// server order.
func decodeCollection[T any](resp *http.Response) ([]T, error) {
	var values []T

	err := json.Unmarshal(resp.Body, &values)
	if err != nil {
		return nil, &gitlab.DecodeError{Err: err}
	}

	return values, nil
}

// pageFetcher adapts the HTTP client to gitlab.PageFetcher so the generic
// pagination helpers can walk any collection endpoint.
func pageFetcher[T any](httpClient *http.Client) gitlab.PageFetcherFunc[T] {
	return func(ctx context.Context, path string, query *gitlab.Query, page *gitlab.PageOptions) ([]T, error) {
		resp, err := httpClient.GetPage(ctx, path, query, page)
		if err != nil {
			return nil, err
		}

		return decodeCollection[T](resp)
	}
}

// fetchAll walks every page of a collection endpoint and concatenates the
// results.
func fetchAll[T any](ctx context.Context, httpClient *http.Client, path string, query *gitlab.Query, opts *gitlab.PageOptions) ([]T, error) {
	return gitlab.FetchAllPages(ctx, pageFetcher[T](httpClient), path, query, opts)
}
