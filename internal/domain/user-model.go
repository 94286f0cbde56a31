package domain

import "gorm.io/gorm"

type Role string

const (
	RoleParticipant Role = "participant"
	RoleDoctor      Role = "doctor"
	RoleSupplier    Role = "supplier"
	RoleSponsor     Role = "sponsor"
	RoleNonProfit   Role = "non-profit"
	RoleAdmin       Role = "admin"
)

func IsValidRole(r Role) bool {
	switch r {
	case RoleParticipant, RoleDoctor, RoleSupplier, RoleSponsor, RoleNonProfit, RoleAdmin:
		return true
	}
	return false
}

type UserStatus string

const (
	UserStatusHold     UserStatus = "hold"
	UserStatusAccepted UserStatus = "accepted"
	UserStatusRejected UserStatus = "rejected"
)

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	FirstName    string     `gorm:"not null" json:"first_name"`
	LastName     string     `gorm:"not null" json:"last_name"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	Phone        string     `gorm:"uniqueIndex;not null" json:"phone"`
	Age          int        `json:"age"`
	Gender       string     `gorm:"type:varchar(10);not null" json:"gender"`
	Role         Role       `gorm:"type:varchar(20);not null;index" json:"role"`
	Status       UserStatus `gorm:"type:varchar(20);not null;default:hold;index" json:"status"`
	PasswordHash string     `json:"-"`
	gorm.Model
}
