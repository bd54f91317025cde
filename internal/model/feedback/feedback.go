package feedback

import (
	"time"

	"github.com/SergSukh/api-yamdb-33-all/internal/model/catalog"
	"github.com/SergSukh/api-yamdb-33-all/internal/model/user"
)

const (
	MinScore = 1
	MaxScore = 10
)

// Review at most one per (author, title); pub_date is written on create only.
type Review struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	TitleID  uint      `gorm:"not null;uniqueIndex:idx_reviews_author_title" json:"-"`
	AuthorID uint      `gorm:"not null;uniqueIndex:idx_reviews_author_title" json:"-"`
	Text     string    `gorm:"type:text;not null" json:"text"`
	Score    int       `gorm:"not null;check:chk_reviews_score,score >= 1 AND score <= 10" json:"score"`
	PubDate  time.Time `gorm:"<-:create;not null;index;autoCreateTime" json:"pub_date"`

	Title  *catalog.Title `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Author *user.User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Review) TableName() string {
	return "reviews"
}

type Comment struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	ReviewID uint      `gorm:"not null;index" json:"-"`
	AuthorID uint      `gorm:"not null;index" json:"-"`
	Text     string    `gorm:"type:text;not null" json:"text"`
	PubDate  time.Time `gorm:"<-:create;not null;index;autoCreateTime" json:"pub_date"`

	Review *Review    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Author *user.User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Comment) TableName() string {
	return "comments"
}
