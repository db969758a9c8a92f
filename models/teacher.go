// kahootboard/models/teacher.go
package models

// TeacherID is the fixed primary key of the singleton teacher row.
const TeacherID uint = 1

// Teacher is the single teacher account. It is created on first boot
// with a default credential and is never deleted.
type Teacher struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Username    string `gorm:"uniqueIndex;not null" json:"username"`
	Password    string `gorm:"not null" json:"-"`
	DisplayName string `gorm:"not null" json:"displayName"`
	Avatar      string `gorm:"not null" json:"avatar"`
}
