package pagesController

import "github.com/gofiber/fiber/v2"

// Minimal HTML shells for the navigable pages. The frontend proper lives in a
// separate client; these exist so the PageGuard redirect matrix has real
// routes to protect.

func shell(c *fiber.Ctx, title, body string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(
		"<!DOCTYPE html><html><head><title>" + title + " | EduMate</title></head><body>" +
			body + "</body></html>")
}

func Home(c *fiber.Ctx) error {
	return shell(c, "Welcome", "<h1>EduMate</h1><p>Browse the <a href=\"/courses\">course catalog</a>.</p>")
}

func Login(c *fiber.Ctx) error {
	return shell(c, "Login", "<h1>Login</h1>")
}

func Register(c *fiber.Ctx) error {
	return shell(c, "Register", "<h1>Register</h1>")
}

func Dashboard(c *fiber.Ctx) error {
	return shell(c, "Dashboard", "<h1>My Dashboard</h1>")
}

func AdminDashboard(c *fiber.Ctx) error {
	return shell(c, "Admin Dashboard", "<h1>Admin Dashboard</h1>")
}

func InstructorDashboard(c *fiber.Ctx) error {
	return shell(c, "Instructor Dashboard", "<h1>Instructor Dashboard</h1>")
}
