package testutils

import (
	"fmt"
	"time"

	"github.com/SergSukh/api-yamdb-33-all/internal/model/catalog"
	"github.com/SergSukh/api-yamdb-33-all/internal/model/feedback"
	"github.com/SergSukh/api-yamdb-33-all/internal/model/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func shortID() string {
	return uuid.New().String()[:8]
}

// CreateTestUser creates a confirmed user with a unique username/email
func CreateTestUser(db *gorm.DB, opts ...UserOption) *user.User {
	id := shortID()
	now := time.Now()

	testUser := &user.User{
		Username:    "user_" + id,
		Email:       fmt.Sprintf("user_%s@example.com", id),
		Role:        user.RoleUser,
		ConfirmedAt: &now,
	}

	for _, opt := range opts {
		opt(testUser)
	}

	if err := db.Create(testUser).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test user: %v", err))
	}

	return testUser
}

// UserOption configures test user
type UserOption func(*user.User)

func WithUsername(username string) UserOption {
	return func(u *user.User) {
		u.Username = username
	}
}

func WithEmail(email string) UserOption {
	return func(u *user.User) {
		u.Email = email
	}
}

func WithRole(role string) UserOption {
	return func(u *user.User) {
		u.Role = role
	}
}

func WithSuperuser() UserOption {
	return func(u *user.User) {
		u.IsSuperuser = true
		u.IsStaff = true
	}
}

// WithConfirmationCode stores the bcrypt hash of code, leaving the user pending
func WithConfirmationCode(code string) UserOption {
	return func(u *user.User) {
		hash, _ := bcrypt.GenerateFromPassword([]byte(code), bcrypt.MinCost)
		u.ConfirmationCode = string(hash)
		u.ConfirmedAt = nil
	}
}

func CreateTestCategory(db *gorm.DB, slug string) *catalog.Category {
	c := &catalog.Category{Name: "Category " + slug, Slug: slug}
	if err := db.Create(c).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test category: %v", err))
	}
	return c
}

func CreateTestGenre(db *gorm.DB, slug string) *catalog.Genre {
	g := &catalog.Genre{Name: "Genre " + slug, Slug: slug}
	if err := db.Create(g).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test genre: %v", err))
	}
	return g
}

func CreateTestAuthor(db *gorm.DB, slug string) *catalog.Author {
	a := &catalog.Author{FirstName: "First", LastName: "Last " + slug, Slug: slug}
	if err := db.Create(a).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test author: %v", err))
	}
	return a
}

// CreateTestTitle creates a title named after a random id, year 2020
func CreateTestTitle(db *gorm.DB, opts ...TitleOption) *catalog.Title {
	t := &catalog.Title{
		Name: "Title " + shortID(),
		Year: 2020,
	}
	for _, opt := range opts {
		opt(t)
	}

	genres := t.Genres
	t.Genres = nil
	if err := db.Omit("Genres", "Category", "Author").Create(t).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test title: %v", err))
	}
	for _, g := range genres {
		if err := db.Create(&catalog.GenreTitle{TitleID: t.ID, GenreID: g.ID}).Error; err != nil {
			panic(fmt.Sprintf("Failed to link test genre: %v", err))
		}
	}
	t.Genres = genres

	return t
}

// TitleOption configures test title
type TitleOption func(*catalog.Title)

func WithTitleName(name string) TitleOption {
	return func(t *catalog.Title) {
		t.Name = name
	}
}

func WithYear(year int) TitleOption {
	return func(t *catalog.Title) {
		t.Year = year
	}
}

func WithCategory(c *catalog.Category) TitleOption {
	return func(t *catalog.Title) {
		t.CategoryID = &c.ID
		t.Category = c
	}
}

func WithAuthor(a *catalog.Author) TitleOption {
	return func(t *catalog.Title) {
		t.AuthorID = &a.ID
		t.Author = a
	}
}

func WithGenres(genres ...*catalog.Genre) TitleOption {
	return func(t *catalog.Title) {
		for _, g := range genres {
			t.Genres = append(t.Genres, *g)
		}
	}
}

func CreateTestReview(db *gorm.DB, titleID, authorID uint, score int) *feedback.Review {
	r := &feedback.Review{
		TitleID:  titleID,
		AuthorID: authorID,
		Text:     "review " + shortID(),
		Score:    score,
	}
	if err := db.Create(r).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test review: %v", err))
	}
	return r
}

func CreateTestComment(db *gorm.DB, reviewID, authorID uint) *feedback.Comment {
	c := &feedback.Comment{
		ReviewID: reviewID,
		AuthorID: authorID,
		Text:     "comment " + shortID(),
	}
	if err := db.Create(c).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test comment: %v", err))
	}
	return c
}
