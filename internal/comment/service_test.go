package comment

import (
	"context"
	"testing"

	"github.com/SergSukh/api-yamdb-33-all/internal/dto"
	"github.com/SergSukh/api-yamdb-33-all/internal/model/user"
	"github.com/SergSukh/api-yamdb-33-all/internal/permission"
	"github.com/SergSukh/api-yamdb-33-all/internal/review"
	"github.com/SergSukh/api-yamdb-33-all/internal/testutils"
	"github.com/SergSukh/api-yamdb-33-all/packages/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewCommentService(NewCommentRepository(db), review.NewReviewRepository(db))
	ctx := context.Background()

	work := testutils.CreateTestTitle(db)
	otherWork := testutils.CreateTestTitle(db)
	bobUser := testutils.CreateTestUser(db, testutils.WithUsername("bob"))
	bob := permission.SubjectFromUser(bobUser)
	carol := permission.SubjectFromUser(testutils.CreateTestUser(db, testutils.WithUsername("carol")))
	admin := permission.SubjectFromUser(testutils.CreateTestUser(db, testutils.WithRole(user.RoleAdmin)))

	rev := testutils.CreateTestReview(db, work.ID, bobUser.ID, 6)
	path := Path{TitleID: work.ID, ReviewID: rev.ID}

	created, err := service.Create(ctx, bob, path, CommentRequest{Text: "first"})
	require.Nil(t, err)
	assert.Equal(t, "bob", created.Author)

	t.Run("review under another title", func(t *testing.T) {
		_, err := service.Create(ctx, bob, Path{TitleID: otherWork.ID, ReviewID: rev.ID}, CommentRequest{Text: "x"})
		require.NotNil(t, err)
		assert.Equal(t, response.NotFound, err.Code)
	})

	t.Run("anonymous create", func(t *testing.T) {
		_, err := service.Create(ctx, permission.Anonymous(), path, CommentRequest{Text: "x"})
		require.NotNil(t, err)
		assert.Equal(t, response.Unauthorized, err.Code)
	})

	t.Run("list", func(t *testing.T) {
		page, err := service.List(ctx, path, dto.PageQuery{})
		require.Nil(t, err)
		require.Len(t, page.Results, 1)
		assert.Equal(t, "first", page.Results[0].Text)
	})

	t.Run("non-owner cannot edit", func(t *testing.T) {
		_, err := service.Update(ctx, carol, path, created.ID, CommentRequest{Text: "mine now"})
		require.NotNil(t, err)
		assert.Equal(t, response.Forbidden, err.Code)
	})

	t.Run("owner edits", func(t *testing.T) {
		resp, err := service.Update(ctx, bob, path, created.ID, CommentRequest{Text: "edited"})
		require.Nil(t, err)
		assert.Equal(t, "edited", resp.Text)

		got, err := service.Get(ctx, path, created.ID)
		require.Nil(t, err)
		assert.Equal(t, "edited", got.Text)
	})

	t.Run("admin deletes", func(t *testing.T) {
		require.Nil(t, service.Delete(ctx, admin, path, created.ID))

		_, err := service.Get(ctx, path, created.ID)
		require.NotNil(t, err)
		assert.Equal(t, response.NotFound, err.Code)
	})
}
