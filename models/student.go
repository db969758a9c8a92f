// kahootboard/models/student.go
package models

// Student represents a student account. Usernames are unique
// case-insensitively. DisplayName doubles as the join key into the
// score sheet (matched case-insensitively and trimmed, no foreign
// key), so it must stay unique in practice for score lookup to work.
type Student struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Username    string `gorm:"uniqueIndex;not null" json:"username"`
	Password    string `gorm:"not null" json:"-"`
	DisplayName string `gorm:"not null" json:"displayName"`
	Avatar      string `gorm:"not null" json:"avatar"`
}
