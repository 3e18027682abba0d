package models

import "time"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	Base
	Name         string     `json:"name" gorm:"default:''"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	Password     string     `json:"-" gorm:"not null"`
	Role         string     `json:"role" gorm:"default:'USER'"` // USER, ADMIN
	ProfileImage string     `json:"profileImage" gorm:"default:''"`
	Bio          string     `json:"bio" gorm:"default:''"`
	LastLogin    *time.Time `json:"lastLogin"`
	IsDeleted    bool       `json:"-" gorm:"default:false"`
}
