package gitlab_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/labforge-io/gitlab-client/pkg/gitlab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPError_ExtractsMessage(t *testing.T) {
	t.Parallel()

	body := []byte(`{"message": "404 Project Not Found"}`)
	httpErr := gitlab.NewHTTPError(http.StatusNotFound, body)

	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Equal(t, "404 Project Not Found", httpErr.Message)
	assert.Equal(t, body, httpErr.Body)
	assert.Contains(t, httpErr.Error(), "404 Not Found")
	assert.Contains(t, httpErr.Error(), "404 Project Not Found")
}

func TestNewHTTPError_ExtractsErrorField(t *testing.T) {
	t.Parallel()

	httpErr := gitlab.NewHTTPError(http.StatusUnauthorized, []byte(`{"error": "invalid_token"}`))

	assert.Equal(t, "invalid_token", httpErr.Message)
}

func TestNewHTTPError_StructuredMessageKeptVerbatim(t *testing.T) {
	t.Parallel()

	body := []byte(`{"message": {"name": ["has already been taken"]}}`)
	httpErr := gitlab.NewHTTPError(http.StatusBadRequest, body)

	assert.JSONEq(t, `{"name": ["has already been taken"]}`, httpErr.Message)
}

func TestNewHTTPError_NonJSONBody(t *testing.T) {
	t.Parallel()

	body := []byte("<html>502 Bad Gateway</html>")
	httpErr := gitlab.NewHTTPError(http.StatusBadGateway, body)

	assert.Empty(t, httpErr.Message)
	assert.Equal(t, body, httpErr.Body)
	assert.Equal(t, "gitlab: 502 Bad Gateway", httpErr.Error())
}

func TestStatusHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		matches func(error) bool
		want    bool
	}{
		{
			name:    "not found matches",
			err:     gitlab.NewHTTPError(http.StatusNotFound, nil),
			matches: gitlab.IsNotFound,
			want:    true,
		},
		{
			name:    "unauthorized matches",
			err:     gitlab.NewHTTPError(http.StatusUnauthorized, nil),
			matches: gitlab.IsUnauthorized,
			want:    true,
		},
		{
			name:    "forbidden matches",
			err:     gitlab.NewHTTPError(http.StatusForbidden, nil),
			matches: gitlab.IsForbidden,
			want:    true,
		},
		{
			name:    "wrong status does not match",
			err:     gitlab.NewHTTPError(http.StatusInternalServerError, nil),
			matches: gitlab.IsNotFound,
			want:    false,
		},
		{
			name:    "plain error does not match",
			err:     errors.New("boom"),
			matches: gitlab.IsNotFound,
			want:    false,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, testCase.matches(testCase.err))
		})
	}
}

func TestStatusHelpers_SeeThroughWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("fetching project: %w", gitlab.NewHTTPError(http.StatusNotFound, nil))

	assert.True(t, gitlab.IsNotFound(wrapped))
}

func TestDecodeError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("unexpected end of JSON input")
	decodeErr := &gitlab.DecodeError{Err: cause}

	require.ErrorIs(t, decodeErr, cause)
	assert.Contains(t, decodeErr.Error(), "decoding response")
}

func TestDecodeError_DistinctFromHTTPError(t *testing.T) {
	t.Parallel()

	decodeErr := &gitlab.DecodeError{Err: errors.New("bad payload")}

	assert.False(t, gitlab.IsNotFound(decodeErr))

	httpErr := &gitlab.HTTPError{}
	assert.False(t, errors.As(error(decodeErr), &httpErr))
}
