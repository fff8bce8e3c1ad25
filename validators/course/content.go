package courseValidator

import (
	"edumate/middleware"
	"edumate/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// LectureRequest is the validated lecture create/update body
type LectureRequest struct {
	Title   string `json:"title" validate:"required"`
	Type    string `json:"type" validate:"required,oneof=youtube pdf url"`
	Content string `json:"content" validate:"required"`
}

// AssignmentRequest is the validated assignment create/update body
type AssignmentRequest struct {
	AssignmentNumber int    `json:"assignmentNumber" validate:"required,gt=0"`
	Name             string `json:"name" validate:"required"`
	Description      string `json:"description" validate:"required"`
	Instructions     string `json:"instructions" validate:"required"`
	AdditionalFiles  string `json:"additionalFiles"`
}

// QuizRequest is the validated quiz create/update body
type QuizRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// QuestionRequest is the validated question create/update body
type QuestionRequest struct {
	QuestionText       string   `json:"questionText" validate:"required"`
	Options            []string `json:"options" validate:"required,min=2,dive,required"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex" validate:"gte=0"`
}

// LectureType converts the validated type string into the model enum
func (r *LectureRequest) LectureType() models.LectureType {
	return models.LectureType(r.Type)
}

// courseScopedBody validates the :id course parameter plus a request body
func courseScopedBody(local string, newBody func() interface{}, messages map[string]string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := newBody()
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				field := fieldErr.Field()
				if msg, found := messages[field]; found {
					errors[jsonField(field)] = msg
				} else {
					errors[jsonField(field)] = "Invalid value!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals(local, reqData)
		return c.Next()
	}
}

// jsonField lowercases the first rune of a struct field name to match the
// JSON key used in the request
func jsonField(field string) string {
	if field == "" {
		return field
	}
	return string(field[0]|0x20) + field[1:]
}

var lectureMessages = map[string]string{
	"Title":   "Title is required!",
	"Type":    "Type must be youtube, pdf or url!",
	"Content": "Content URL is required!",
}

var assignmentMessages = map[string]string{
	"AssignmentNumber": "Assignment number must be greater than 0!",
	"Name":             "Name is required!",
	"Description":      "Description is required!",
	"Instructions":     "Instructions are required!",
}

var quizMessages = map[string]string{
	"Title": "Title is required!",
}

var questionMessages = map[string]string{
	"QuestionText":       "Question text is required!",
	"Options":            "At least two non-empty options are required!",
	"CorrectAnswerIndex": "Correct answer index must not be negative!",
}

// CreateLecture validator middleware
func CreateLecture() fiber.Handler {
	return courseScopedBody("validatedLecture", func() interface{} { return new(LectureRequest) }, lectureMessages)
}

// UpdateLecture validator middleware
func UpdateLecture() fiber.Handler {
	return withChildID("lectureId", "lectureID",
		courseScopedBody("validatedLecture", func() interface{} { return new(LectureRequest) }, lectureMessages))
}

// DeleteLecture validator middleware
func DeleteLecture() fiber.Handler {
	return withChildID("lectureId", "lectureID", CourseID())
}

// CreateAssignment validator middleware
func CreateAssignment() fiber.Handler {
	return courseScopedBody("validatedAssignment", func() interface{} { return new(AssignmentRequest) }, assignmentMessages)
}

// UpdateAssignment validator middleware
func UpdateAssignment() fiber.Handler {
	return withChildID("assignmentId", "assignmentID",
		courseScopedBody("validatedAssignment", func() interface{} { return new(AssignmentRequest) }, assignmentMessages))
}

// DeleteAssignment validator middleware
func DeleteAssignment() fiber.Handler {
	return withChildID("assignmentId", "assignmentID", CourseID())
}

// CreateQuiz validator middleware
func CreateQuiz() fiber.Handler {
	return courseScopedBody("validatedQuiz", func() interface{} { return new(QuizRequest) }, quizMessages)
}

// UpdateQuiz validator middleware
func UpdateQuiz() fiber.Handler {
	return withChildID("quizId", "quizID",
		courseScopedBody("validatedQuiz", func() interface{} { return new(QuizRequest) }, quizMessages))
}

// DeleteQuiz validator middleware
func DeleteQuiz() fiber.Handler {
	return withChildID("quizId", "quizID", CourseID())
}

// QuizID validator middleware for routes scoped to a quiz instead of a course
func QuizID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID, ok := parseIDParam(c, "quizId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Quiz ID!", nil)
		}
		c.Locals("quizID", quizID)
		return c.Next()
	}
}

// CreateQuestion validator middleware
func CreateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID, ok := parseIDParam(c, "quizId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Quiz ID!", nil)
		}

		reqData := new(QuestionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validateQuestion(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, err)
		}

		c.Locals("quizID", quizID)
		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}

// UpdateQuestion validator middleware
func UpdateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID, ok := parseIDParam(c, "quizId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Quiz ID!", nil)
		}
		questionID, ok := parseIDParam(c, "questionId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Question ID!", nil)
		}

		reqData := new(QuestionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validateQuestion(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, err)
		}

		c.Locals("quizID", quizID)
		c.Locals("questionID", questionID)
		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}

// DeleteQuestion validator middleware
func DeleteQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID, ok := parseIDParam(c, "quizId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Quiz ID!", nil)
		}
		questionID, ok := parseIDParam(c, "questionId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Question ID!", nil)
		}

		c.Locals("quizID", quizID)
		c.Locals("questionID", questionID)
		return c.Next()
	}
}

// validateQuestion runs struct validation plus the index bound that tags
// cannot express
func validateQuestion(reqData *QuestionRequest) map[string]string {
	errors := make(map[string]string)

	if err := validate.Struct(reqData); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			field := fieldErr.StructField()
			if msg, found := questionMessages[field]; found {
				errors[jsonField(field)] = msg
			} else {
				errors["options"] = questionMessages["Options"]
			}
		}
	}

	if _, found := errors["correctAnswerIndex"]; !found && reqData.CorrectAnswerIndex >= len(reqData.Options) {
		errors["correctAnswerIndex"] = "Correct answer index is out of range!"
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}

// withChildID wraps a handler with validation of an extra child id parameter
func withChildID(param, local string, next fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		childID, ok := parseIDParam(c, param)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID parameter!", nil)
		}
		c.Locals(local, childID)
		return next(c)
	}
}
