package model

type UserRole string

const (
	Candidate UserRole = "candidate"
	Admin     UserRole = "admin"
)

// User 答题用户，只保存身份信息，账号凭证由外部管理
// swagger:model User
type User struct {
	BaseModel
	Name  string   `gorm:"size:100;not null" json:"name"`
	Email string   `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Role  UserRole `gorm:"size:20;default:'candidate'" json:"role"`
}

func (User) TableName() string {
	return "users"
}
