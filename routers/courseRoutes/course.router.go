package courseRoutes

import (
	controllers "edumate/controllers/course"
	"edumate/middleware"
	courseValidator "edumate/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupCourseRoutes sets up the catalog, course CRUD and course-content routes
func SetupCourseRoutes(app *fiber.App, db *gorm.DB) {
	handler := controllers.NewHandler(db)

	courseGroup := app.Group("/courses")

	// Catalog reads are public
	courseGroup.Get("/", handler.ListCourses)
	courseGroup.Get("/:id", courseValidator.CourseID(), handler.GetCourse)

	// Course CRUD (admin)
	courseGroup.Post("/", middleware.AuthMiddleware, courseValidator.CreateCourse(), handler.CreateCourse)
	courseGroup.Put("/:id", middleware.AuthMiddleware, courseValidator.UpdateCourse(), handler.UpdateCourse)
	courseGroup.Delete("/:id", middleware.AuthMiddleware, courseValidator.CourseID(), handler.DeleteCourse)

	// Lectures
	courseGroup.Get("/:id/lectures", middleware.AuthMiddleware, courseValidator.CourseID(), handler.ListLectures)
	courseGroup.Post("/:id/lectures", middleware.AuthMiddleware, courseValidator.CreateLecture(), handler.CreateLecture)
	courseGroup.Put("/:id/lectures/:lectureId", middleware.AuthMiddleware, courseValidator.UpdateLecture(), handler.UpdateLecture)
	courseGroup.Delete("/:id/lectures/:lectureId", middleware.AuthMiddleware, courseValidator.DeleteLecture(), handler.DeleteLecture)

	// Assignments
	courseGroup.Get("/:id/assignments", middleware.AuthMiddleware, courseValidator.CourseID(), handler.ListAssignments)
	courseGroup.Post("/:id/assignments", middleware.AuthMiddleware, courseValidator.CreateAssignment(), handler.CreateAssignment)
	courseGroup.Put("/:id/assignments/:assignmentId", middleware.AuthMiddleware, courseValidator.UpdateAssignment(), handler.UpdateAssignment)
	courseGroup.Delete("/:id/assignments/:assignmentId", middleware.AuthMiddleware, courseValidator.DeleteAssignment(), handler.DeleteAssignment)

	// Quizzes
	courseGroup.Get("/:id/quizzes", middleware.AuthMiddleware, courseValidator.CourseID(), handler.ListQuizzes)
	courseGroup.Post("/:id/quizzes", middleware.AuthMiddleware, courseValidator.CreateQuiz(), handler.CreateQuiz)
	courseGroup.Put("/:id/quizzes/:quizId", middleware.AuthMiddleware, courseValidator.UpdateQuiz(), handler.UpdateQuiz)
	courseGroup.Delete("/:id/quizzes/:quizId", middleware.AuthMiddleware, courseValidator.DeleteQuiz(), handler.DeleteQuiz)

	// Questions are scoped to their quiz
	quizGroup := app.Group("/quizzes")
	quizGroup.Get("/:quizId/questions", middleware.AuthMiddleware, courseValidator.QuizID(), handler.ListQuestions)
	quizGroup.Post("/:quizId/questions", middleware.AuthMiddleware, courseValidator.CreateQuestion(), handler.CreateQuestion)
	quizGroup.Put("/:quizId/questions/:questionId", middleware.AuthMiddleware, courseValidator.UpdateQuestion(), handler.UpdateQuestion)
	quizGroup.Delete("/:quizId/questions/:questionId", middleware.AuthMiddleware, courseValidator.DeleteQuestion(), handler.DeleteQuestion)
}
