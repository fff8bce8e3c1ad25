package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Lecture struct {
	gorm.Model
	CourseID uint        `json:"courseId" gorm:"index;not null"`
	Title    string      `json:"title" gorm:"not null"`
	Type     LectureType `json:"type" gorm:"not null"`
	Content  string      `json:"content" gorm:"not null"`
	Order    int         `json:"order" gorm:"column:sort_order;default:0"`
	Course   Course      `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

// Assignment numbers are unique within a course, enforced by the composite
// index so a duplicate surfaces as a conflict rather than a silent overwrite.
type Assignment struct {
	gorm.Model
	CourseID         uint   `json:"courseId" gorm:"uniqueIndex:idx_course_assignment;not null"`
	AssignmentNumber int    `json:"assignmentNumber" gorm:"uniqueIndex:idx_course_assignment;not null"`
	Name             string `json:"name" gorm:"not null"`
	Description      string `json:"description" gorm:"not null"`
	Instructions     string `json:"instructions" gorm:"not null"`
	AdditionalFiles  string `json:"additionalFiles,omitempty"`
	Course           Course `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

type Quiz struct {
	gorm.Model
	CourseID    uint   `json:"courseId" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	Course      Course `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

// Question options are stored as a JSON array so the column ports between
// postgres and the sqlite test driver.
type Question struct {
	gorm.Model
	QuizID             uint           `json:"quizId" gorm:"index;not null"`
	QuestionText       string         `json:"questionText" gorm:"not null"`
	Options            datatypes.JSON `json:"options" gorm:"not null"`
	CorrectAnswerIndex int            `json:"correctAnswerIndex" gorm:"not null"`
	Quiz               Quiz           `json:"-" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
}
