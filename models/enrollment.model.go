package models

import "gorm.io/gorm"

// PaymentMethodBkash is the only supported payment channel for now.
const PaymentMethodBkash = "bkash"

// Enrollment records a student's paid-access request against a course. The
// composite unique index is the one-enrollment-per-(user, course) guarantee;
// the create path relies on it instead of a read-then-write check so two
// concurrent submissions cannot both insert.
type Enrollment struct {
	gorm.Model
	UserID        uint             `json:"userId" gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID      uint             `json:"courseId" gorm:"uniqueIndex:idx_user_course;not null"`
	ContactNumber string           `json:"contactNumber" gorm:"not null"`
	PaymentMethod string           `json:"paymentMethod" gorm:"default:'bkash';not null"`
	BkashNumber   string           `json:"bkashNumber" gorm:"not null"`
	TransactionID string           `json:"transactionId" gorm:"not null"`
	Status        EnrollmentStatus `json:"status" gorm:"default:'pending';not null"`
	ReceiptNo     string           `json:"receiptNo,omitempty"`
	User          User             `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Course        Course           `json:"course,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
