package utils

import (
	"fmt"
	"log"

	"edumate/config"
	"edumate/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers a single HTML email through SendGrid. With no API key
// configured, delivery is skipped and only logged — keeps dev and tests quiet.
func SendEmail(toName, toEmail, subject, htmlBody string) error {
	if config.AppConfig.SendGridKey == "" {
		log.Printf("Email disabled, skipping: to=%s subject=%q", toEmail, subject)
		return nil
	}

	from := mail.NewEmail("EduMate", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: %d %s", toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid responded with status %d", resp.StatusCode)
	}

	log.Printf("Email sent to %s: %q", toEmail, subject)
	return nil
}

// SendEnrollmentApproved notifies a student that their payment was verified
func SendEnrollmentApproved(user models.User, course models.Course, receiptNo string) {
	body := fmt.Sprintf(
		`<p>Hi %s,</p>
		<p>Your enrollment in <b>%s</b> has been approved. You now have full access to the course materials.</p>
		<p>Receipt number: <b>%s</b></p>
		<p>Happy learning!<br>The EduMate Team</p>`,
		user.Name, course.Title, receiptNo,
	)
	if err := SendEmail(user.Name, user.Email, "Your enrollment is approved", body); err != nil {
		log.Printf("Error sending approval email for enrollment (user %d, course %d): %v", user.ID, course.ID, err)
	}
}

// SendEnrollmentRejected notifies a student that their payment could not be verified
func SendEnrollmentRejected(user models.User, course models.Course) {
	body := fmt.Sprintf(
		`<p>Hi %s,</p>
		<p>We could not verify the payment for your enrollment in <b>%s</b> and the request was rejected.</p>
		<p>Please double-check your transaction details and contact support if you believe this is a mistake.</p>
		<p>The EduMate Team</p>`,
		user.Name, course.Title,
	)
	if err := SendEmail(user.Name, user.Email, "Your enrollment was rejected", body); err != nil {
		log.Printf("Error sending rejection email for enrollment (user %d, course %d): %v", user.ID, course.ID, err)
	}
}

// SendInstructorApproved notifies an applicant that their instructor account is active
func SendInstructorApproved(user models.User) {
	body := fmt.Sprintf(
		`<p>Hi %s,</p>
		<p>Your instructor application has been approved. You can now sign in and manage your courses from the instructor dashboard.</p>
		<p>The EduMate Team</p>`,
		user.Name,
	)
	if err := SendEmail(user.Name, user.Email, "Instructor application approved", body); err != nil {
		log.Printf("Error sending instructor approval email to user %d: %v", user.ID, err)
	}
}
