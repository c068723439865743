package gitlab_test

import (
	"testing"

	"github.com/labforge-io/gitlab-client/pkg/gitlab"
	"github.com/stretchr/testify/assert"
)

func TestNewPageOptions(t *testing.T) {
	t.Parallel()

	opts := gitlab.NewPageOptions()

	assert.Equal(t, 0, opts.Page)
	assert.Equal(t, gitlab.MaxPerPage, opts.PerPage)
}

func TestPageOptions_WithPerPageClamps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		perPage  int
		expected int
	}{
		{name: "within range", perPage: 50, expected: 50},
		{name: "at maximum", perPage: 100, expected: 100},
		{name: "above maximum", perPage: 500, expected: gitlab.MaxPerPage},
		{name: "zero", perPage: 0, expected: 1},
		{name: "negative", perPage: -5, expected: 1},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			opts := gitlab.NewPageOptions().WithPerPage(testCase.perPage)

			assert.Equal(t, testCase.expected, opts.PerPage)
		})
	}
}

func TestPageOptions_ClampedEqualsMaximum(t *testing.T) {
	t.Parallel()

	clamped := gitlab.NewPageOptions().WithPerPage(1000)
	maximum := gitlab.NewPageOptions().WithPerPage(gitlab.MaxPerPage)

	assert.Equal(t, maximum.ToQuery().Encode(), clamped.ToQuery().Encode())
}

func TestPageOptions_ToQuery(t *testing.T) {
	t.Parallel()

	opts := gitlab.NewPageOptions().WithPage(3).WithPerPage(50)

	assert.Equal(t, "?page=3&per_page=50", opts.ToQuery().Encode())
}

func TestPageOptions_ToQueryOmitsUnsetPage(t *testing.T) {
	t.Parallel()

	opts := gitlab.NewPageOptions()

	assert.Equal(t, "?per_page=100", opts.ToQuery().Encode())
}
