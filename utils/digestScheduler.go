package utils

import (
	"fmt"
	"log"

	"edumate/config"
	"edumate/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// InitializeDigestScheduler sets up the daily admin digest job
func InitializeDigestScheduler(db *gorm.DB) *cron.Cron {
	log.Println("[DIGEST-SCHEDULER] Initializing admin digest scheduler...")

	c := cron.New()

	// Run daily at 9 AM server time
	c.AddFunc("0 9 * * *", func() {
		log.Println("[DIGEST-SCHEDULER] Running daily pending-work check...")
		SendPendingWorkDigest(db)
	})

	c.Start()
	log.Println("[DIGEST-SCHEDULER] Admin digest scheduler started - runs daily at 9 AM")
	return c
}

// SendPendingWorkDigest emails the admin a summary of pending enrollments and
// instructor applications. Nothing pending means no email.
func SendPendingWorkDigest(db *gorm.DB) {
	if config.AppConfig.AdminEmail == "" {
		log.Println("[DIGEST-SCHEDULER] ADMIN_EMAIL not set, skipping digest")
		return
	}

	var pendingEnrollments int64
	if err := db.Model(&models.Enrollment{}).
		Where("status = ?", models.EnrollmentPending).
		Count(&pendingEnrollments).Error; err != nil {
		log.Printf("[DIGEST-SCHEDULER] Error counting pending enrollments: %v", err)
		return
	}

	var pendingInstructors int64
	if err := db.Model(&models.User{}).
		Where("role = ? AND status = ?", models.RoleInstructor, models.UserPending).
		Count(&pendingInstructors).Error; err != nil {
		log.Printf("[DIGEST-SCHEDULER] Error counting pending instructors: %v", err)
		return
	}

	if pendingEnrollments == 0 && pendingInstructors == 0 {
		log.Println("[DIGEST-SCHEDULER] Nothing pending, no digest sent")
		return
	}

	body := fmt.Sprintf(
		`<p>Good morning,</p>
		<p>There is work waiting for review on EduMate:</p>
		<ul>
			<li><b>%d</b> pending enrollment request(s)</li>
			<li><b>%d</b> pending instructor application(s)</li>
		</ul>
		<p>Visit the admin dashboard to process them.</p>`,
		pendingEnrollments, pendingInstructors,
	)

	if err := SendEmail("Admin", config.AppConfig.AdminEmail, "EduMate: pending approvals", body); err != nil {
		log.Printf("[DIGEST-SCHEDULER] Error sending digest email: %v", err)
		return
	}

	log.Printf("[DIGEST-SCHEDULER] Digest sent: %d enrollments, %d instructors pending",
		pendingEnrollments, pendingInstructors)
}
