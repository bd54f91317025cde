package user

import "time"

const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// ReservedUsername cannot be registered; it addresses the caller's own profile.
const ReservedUsername = "me"

type User struct {
	ID               uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username         string     `gorm:"column:username;type:varchar(150);not null;uniqueIndex" json:"username"`
	Email            string     `gorm:"column:email;type:varchar(254);not null;uniqueIndex" json:"email"`
	FirstName        string     `gorm:"column:first_name;type:varchar(150)" json:"first_name"`
	LastName         string     `gorm:"column:last_name;type:varchar(150)" json:"last_name"`
	Bio              string     `gorm:"column:bio;type:text" json:"bio"`
	Role             string     `gorm:"column:role;type:varchar(20);not null;default:'user'" json:"role"`
	ConfirmationCode string     `gorm:"column:confirmation_code;type:varchar(255)" json:"-"` // bcrypt hash
	ConfirmedAt      *time.Time `gorm:"column:confirmed_at" json:"-"`
	IsStaff          bool       `gorm:"column:is_staff;not null;default:false" json:"-"`
	IsSuperuser      bool       `gorm:"column:is_superuser;not null;default:false" json:"-"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// Confirmed reports whether a token has ever been issued to the user.
func (u *User) Confirmed() bool {
	return u.ConfirmedAt != nil
}
