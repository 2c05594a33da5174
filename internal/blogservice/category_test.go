package blogservice

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sushihentaime/inkpost/internal/common"
)

func TestListCategories(t *testing.T) {
	s, _, _ := setupTestEnvironment(t)
	ctx := context.Background()

	_, err := s.AddCategory(ctx, "agile")
	require.NoError(t, err)

	names, err := s.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"agile", "AI", "Blogging", "Technology", "Writing"}, names)
}

func TestListCategoriesWithCounts(t *testing.T) {
	s, _, _ := setupTestEnvironment(t)

	counts, err := s.ListCategoriesWithCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []CategoryCount{
		{Name: "AI", Count: 1},
		{Name: "Blogging", Count: 1},
		{Name: "Technology", Count: 1},
		{Name: "Writing", Count: 1},
	}, counts)
}

func TestAddCategory(t *testing.T) {
	s, _, _ := setupTestEnvironment(t)

	testCases := []struct {
		name        string
		input       string
		want        string
		expectedErr error
	}{
		{name: "trimmed", input: "  Travel  ", want: "Travel"},
		{name: "duplicate ignoring case", input: "ai", expectedErr: ErrDuplicateCategory},
		{name: "duplicate of new entry", input: "TRAVEL", expectedErr: ErrDuplicateCategory},
		{name: "blank", input: "   ", expectedErr: common.ValidationError{Errors: map[string]string{"name": "must be provided"}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.AddCategory(context.Background(), tc.input)
			assert.Equal(t, tc.expectedErr, err)
			assert.Equal(t, tc.want, got)
		})
	}

	assert.ErrorIs(t, ErrDuplicateCategory, common.ErrConflict)
}

func TestDeleteCategoryStripsTags(t *testing.T) {
	s, _, _ := setupTestEnvironment(t)
	ctx := context.Background()

	require.NoError(t, s.DeleteCategory(ctx, "ai"))

	names, err := s.ListCategories(ctx)
	require.NoError(t, err)
	for _, n := range names {
		assert.False(t, strings.EqualFold(n, "ai"))
	}

	posts, err := s.ListPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 4)
	for _, p := range posts {
		assert.False(t, p.HasTag("AI"), p.ID)
	}

	post4, err := s.GetPost(ctx, "post4")
	require.NoError(t, err)
	assert.Equal(t, []string{"Travel", "Adventure", "Scheduled"}, post4.Tags)
}

func TestDeleteUnmanagedTag(t *testing.T) {
	s, _, _ := setupTestEnvironment(t)
	ctx := context.Background()

	require.NoError(t, s.DeleteCategory(ctx, "travel"))

	post4, err := s.GetPost(ctx, "post4")
	require.NoError(t, err)
	assert.Equal(t, []string{"Adventure", "Scheduled", "AI"}, post4.Tags)

	err = s.DeleteCategory(ctx, "")
	assert.Equal(t, common.ValidationError{Errors: map[string]string{"name": "must be provided"}}, err)
}
