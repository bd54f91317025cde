// Package catalog holds the reviewable works and their reference data.
package catalog

type Category struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	Name        string `gorm:"type:varchar(256);not null" json:"name"`
	Slug        string `gorm:"type:varchar(50);not null;uniqueIndex" json:"slug"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}

type Genre struct {
	ID   uint   `gorm:"primaryKey" json:"-"`
	Name string `gorm:"type:varchar(256);not null" json:"name"`
	Slug string `gorm:"type:varchar(50);not null;uniqueIndex" json:"slug"`
}

func (Genre) TableName() string {
	return "genres"
}

type Author struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	FirstName string `gorm:"type:varchar(150);not null" json:"first_name"`
	LastName  string `gorm:"type:varchar(150);not null" json:"last_name"`
	Slug      string `gorm:"type:varchar(50);not null;uniqueIndex" json:"slug"`
}

func (Author) TableName() string {
	return "authors"
}
