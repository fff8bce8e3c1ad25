package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name     string     `json:"name" gorm:"not null"`
	Email    string     `json:"email" gorm:"unique;not null"`
	Password string     `json:"-" gorm:"not null"`
	Role     Role       `json:"role" gorm:"default:'student';not null"`
	Status   UserStatus `json:"status" gorm:"default:'active';not null"`
}
