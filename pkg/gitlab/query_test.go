package gitlab_test

import (
	"testing"

	"github.com/labforge-io/gitlab-client/pkg/gitlab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery_Empty(t *testing.T) {
	t.Parallel()

	query := gitlab.NewQuery()

	assert.Equal(t, "", query.Encode())
	assert.Equal(t, 0, query.Len())
}

func TestQuery_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	query := gitlab.NewQuery().
		Add("zeta", "1").
		Add("alpha", "2").
		AddInt("page", 3)

	assert.Equal(t, "?zeta=1&alpha=2&page=3", query.Encode())
}

func TestQuery_AllowsRepeatedKeys(t *testing.T) {
	t.Parallel()

	query := gitlab.NewQuery().
		Add("labels", "bug").
		Add("labels", "critical")

	assert.Equal(t, "?labels=bug&labels=critical", query.Encode())
	assert.Equal(t, 2, query.Len())
}

func TestQuery_EscapesValues(t *testing.T) {
	t.Parallel()

	query := gitlab.NewQuery().Add("search", "hello world & more")

	assert.Equal(t, "?search=hello+world+%26+more", query.Encode())
}

func TestQuery_AddOptional(t *testing.T) {
	t.Parallel()

	description := "fix the build"
	assignee := 42
	wip := false

	query := gitlab.NewQuery().
		AddOptional("description", &description).
		AddOptional("milestone", nil).
		AddOptionalInt("assignee_id", &assignee).
		AddOptionalInt("milestone_id", nil).
		AddOptionalBool("wip", &wip).
		AddOptionalBool("draft", nil)

	// Nil pointers vanish entirely; false still renders.
	assert.Equal(t, "?description=fix+the+build&assignee_id=42&wip=false", query.Encode())
	assert.Equal(t, 3, query.Len())
}

func TestQuery_EncodeIsPure(t *testing.T) {
	t.Parallel()

	query := gitlab.NewQuery().Add("a", "1").AddBool("b", true)

	first := query.Encode()
	second := query.Encode()

	assert.Equal(t, first, second)
	assert.Equal(t, 2, query.Len())
}

func TestQuery_Merge(t *testing.T) {
	t.Parallel()

	base := gitlab.NewQuery().Add("state", "opened")
	page := gitlab.NewQuery().AddInt("page", 2).AddInt("per_page", 100)

	base.Merge(page)

	assert.Equal(t, "?state=opened&page=2&per_page=100", base.Encode())
}

func TestQuery_MergeNil(t *testing.T) {
	t.Parallel()

	query := gitlab.NewQuery().Add("a", "1")
	query.Merge(nil)

	assert.Equal(t, "?a=1", query.Encode())
}

func TestQuery_MergeAllowsCollisions(t *testing.T) {
	t.Parallel()

	left := gitlab.NewQuery().Add("sort", "asc")
	right := gitlab.NewQuery().Add("sort", "desc")

	left.Merge(right)

	assert.Equal(t, "?sort=asc&sort=desc", left.Encode())
}

func TestQuery_Values(t *testing.T) {
	t.Parallel()

	query := gitlab.NewQuery().
		Add("labels", "bug").
		Add("labels", "critical").
		Add("state", "opened")

	values := query.Values()

	require.Len(t, values["labels"], 2)
	assert.Equal(t, []string{"bug", "critical"}, values["labels"])
	assert.Equal(t, "opened", values.Get("state"))
}
