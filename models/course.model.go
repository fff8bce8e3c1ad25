package models

import "gorm.io/gorm"

// Course content-management access is matched against Instructor by display
// name, not by user id. Renaming a user changes what they own.
type Course struct {
	gorm.Model
	Title       string  `json:"title" gorm:"not null"`
	Instructor  string  `json:"instructor" gorm:"not null"`
	Description string  `json:"description" gorm:"not null"`
	Category    string  `json:"category"`
	ImageID     string  `json:"imageId"`
	Duration    string  `json:"duration"`
	Rating      float64 `json:"rating"`
	Price       float64 `json:"price"`
	URL         string  `json:"url,omitempty"`
	YoutubeURL  string  `json:"youtubeUrl,omitempty"`
}

type Category struct {
	gorm.Model
	Name string `json:"name" gorm:"unique;not null"`
}
