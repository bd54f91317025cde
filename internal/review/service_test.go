package review

import (
	"context"
	"testing"
	"time"

	"github.com/SergSukh/api-yamdb-33-all/internal/dto"
	"github.com/SergSukh/api-yamdb-33-all/internal/model/feedback"
	"github.com/SergSukh/api-yamdb-33-all/internal/model/user"
	"github.com/SergSukh/api-yamdb-33-all/internal/permission"
	"github.com/SergSukh/api-yamdb-33-all/internal/testutils"
	"github.com/SergSukh/api-yamdb-33-all/internal/title"
	"github.com/SergSukh/api-yamdb-33-all/packages/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }

func newService(db *gorm.DB) *ReviewService {
	return NewReviewService(NewReviewRepository(db), title.NewTitleRepository(db))
}

func TestReviewService_Create(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := newService(db)
	ctx := context.Background()

	work := testutils.CreateTestTitle(db)
	alice := permission.SubjectFromUser(testutils.CreateTestUser(db, testutils.WithUsername("alice")))

	resp, err := service.Create(ctx, alice, work.ID, ReviewRequest{Text: "great", Score: intPtr(9)})
	require.Nil(t, err)
	assert.Equal(t, "alice", resp.Author)
	assert.Equal(t, work.ID, resp.Title)
	assert.False(t, resp.PubDate.IsZero())

	tests := []struct {
		name    string
		subject permission.Subject
		titleID uint
		req     ReviewRequest
		code    response.ResponseCode
	}{
		{"second review conflicts", alice, work.ID, ReviewRequest{Text: "again", Score: intPtr(3)}, response.Conflict},
		{"anonymous", permission.Anonymous(), work.ID, ReviewRequest{Text: "x", Score: intPtr(5)}, response.Unauthorized},
		{"missing title", alice, 9999, ReviewRequest{Text: "x", Score: intPtr(5)}, response.NotFound},
		{"score too low", alice, work.ID, ReviewRequest{Text: "x", Score: intPtr(0)}, response.InvalidParameter},
		{"score too high", alice, work.ID, ReviewRequest{Text: "x", Score: intPtr(11)}, response.InvalidParameter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(ctx, tt.subject, tt.titleID, tt.req)
			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
		})
	}

	var count int64
	require.NoError(t, db.Model(&feedback.Review{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestReviewService_ListNewestFirst(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := newService(db)
	ctx := context.Background()

	work := testutils.CreateTestTitle(db)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		r := testutils.CreateTestReview(db, work.ID, testutils.CreateTestUser(db).ID, i+1)
		require.NoError(t, db.Exec("UPDATE reviews SET pub_date = ? WHERE id = ?", base.Add(time.Duration(i)*time.Hour), r.ID).Error)
	}

	page, err := service.List(ctx, work.ID, dto.PageQuery{})
	require.Nil(t, err)
	assert.Equal(t, int64(3), page.Count)
	require.Len(t, page.Results, 3)
	assert.Equal(t, []int{3, 2, 1}, []int{page.Results[0].Score, page.Results[1].Score, page.Results[2].Score})

	_, err = service.List(ctx, 9999, dto.PageQuery{})
	require.NotNil(t, err)
	assert.Equal(t, response.NotFound, err.Code)
}

func TestReviewService_UpdateAndDelete(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := newService(db)
	ctx := context.Background()

	work := testutils.CreateTestTitle(db)
	other := testutils.CreateTestTitle(db)
	authorUser := testutils.CreateTestUser(db)
	author := permission.SubjectFromUser(authorUser)
	stranger := permission.SubjectFromUser(testutils.CreateTestUser(db))
	moderator := permission.SubjectFromUser(testutils.CreateTestUser(db, testutils.WithRole(user.RoleModerator)))

	review := testutils.CreateTestReview(db, work.ID, authorUser.ID, 5)
	testutils.CreateTestComment(db, review.ID, authorUser.ID)

	t.Run("stranger cannot edit", func(t *testing.T) {
		_, err := service.Update(ctx, stranger, work.ID, review.ID, ReviewPatchRequest{Text: strPtr("hijack")})
		require.NotNil(t, err)
		assert.Equal(t, response.Forbidden, err.Code)

		var reloaded feedback.Review
		require.NoError(t, db.First(&reloaded, review.ID).Error)
		assert.Equal(t, review.Text, reloaded.Text)
	})

	t.Run("anonymous cannot edit", func(t *testing.T) {
		_, err := service.Update(ctx, permission.Anonymous(), work.ID, review.ID, ReviewPatchRequest{Text: strPtr("x")})
		require.NotNil(t, err)
		assert.Equal(t, response.Unauthorized, err.Code)
	})

	t.Run("author edits", func(t *testing.T) {
		resp, err := service.Update(ctx, author, work.ID, review.ID, ReviewPatchRequest{Score: intPtr(8)})
		require.Nil(t, err)
		assert.Equal(t, 8, resp.Score)
		assert.Equal(t, review.Text, resp.Text)
	})

	t.Run("out of range score", func(t *testing.T) {
		_, err := service.Update(ctx, author, work.ID, review.ID, ReviewPatchRequest{Score: intPtr(42)})
		require.NotNil(t, err)
		assert.Contains(t, err.Fields, "score")
	})

	t.Run("wrong title is not found", func(t *testing.T) {
		_, err := service.Get(ctx, other.ID, review.ID)
		require.NotNil(t, err)
		assert.Equal(t, response.NotFound, err.Code)
	})

	t.Run("moderator deletes with comments", func(t *testing.T) {
		require.Nil(t, service.Delete(ctx, moderator, work.ID, review.ID))

		var comments int64
		require.NoError(t, db.Model(&feedback.Comment{}).Count(&comments).Error)
		assert.Zero(t, comments)
	})
}
