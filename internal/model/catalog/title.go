package catalog

// Title a reviewable work. (name, year, category_id) is unique; rows with a
// NULL category are covered by the partial index created in model.InitTable.
type Title struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(256);not null;uniqueIndex:idx_titles_name_year_category" json:"name"`
	Year        int    `gorm:"not null;index;uniqueIndex:idx_titles_name_year_category" json:"year"`
	Description string `gorm:"type:text" json:"description"`
	AuthorID    *uint  `gorm:"index" json:"-"`
	CategoryID  *uint  `gorm:"index;uniqueIndex:idx_titles_name_year_category" json:"-"`

	Author   *Author   `gorm:"constraint:OnDelete:SET NULL" json:"author,omitempty"`
	Category *Category `gorm:"constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Genres   []Genre   `gorm:"many2many:genre_titles;constraint:OnDelete:CASCADE" json:"genre"`
}

func (Title) TableName() string {
	return "titles"
}

// GenreTitle join row between titles and genres.
type GenreTitle struct {
	TitleID uint `gorm:"primaryKey"`
	GenreID uint `gorm:"primaryKey;index"`
}

func (GenreTitle) TableName() string {
	return "genre_titles"
}
