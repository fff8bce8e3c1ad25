package controllers

import (
	"encoding/json"
	"log"

	"edumate/middleware"
	"edumate/models"
	courseValidator "edumate/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ListQuizzes returns a course's quizzes
func (h *Handler) ListQuizzes(c *fiber.Ctx) error {
	course, errResp := h.findCourse(c)
	if errResp != nil {
		return errResp
	}
	if errResp := h.requireMaterialAccess(c, course); errResp != nil {
		return errResp
	}

	var quizzes []models.Quiz
	if err := h.Db.Where("course_id = ?", course.ID).Order("created_at asc").Find(&quizzes).Error; err != nil {
		log.Printf("Error fetching quizzes for course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully.", quizzes)
}

// CreateQuiz adds a quiz to a course
func (h *Handler) CreateQuiz(c *fiber.Ctx) error {
	course, errResp := h.findCourse(c)
	if errResp != nil {
		return errResp
	}
	if errResp := h.requireContentManager(c, course); errResp != nil {
		return errResp
	}

	reqData, ok := c.Locals("validatedQuiz").(*courseValidator.QuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	quiz := models.Quiz{
		CourseID:    course.ID,
		Title:       reqData.Title,
		Description: reqData.Description,
	}

	if err := h.Db.Create(&quiz).Error; err != nil {
		log.Printf("Error creating quiz for course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", quiz)
}

// UpdateQuiz edits a quiz's title or description
func (h *Handler) UpdateQuiz(c *fiber.Ctx) error {
	course, errResp := h.findCourse(c)
	if errResp != nil {
		return errResp
	}
	if errResp := h.requireContentManager(c, course); errResp != nil {
		return errResp
	}

	quizID := c.Locals("quizID").(uint)

	var quiz models.Quiz
	if err := h.Db.Where("id = ? AND course_id = ?", quizID, course.ID).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuiz").(*courseValidator.QuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	quiz.Title = reqData.Title
	quiz.Description = reqData.Description

	if err := h.Db.Save(&quiz).Error; err != nil {
		log.Printf("Error updating quiz %d: %v", quizID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz updated successfully!", quiz)
}

// DeleteQuiz removes a quiz and all its questions in one transaction
func (h *Handler) DeleteQuiz(c *fiber.Ctx) error {
	course, errResp := h.findCourse(c)
	if errResp != nil {
		return errResp
	}
	if errResp := h.requireContentManager(c, course); errResp != nil {
		return errResp
	}

	quizID := c.Locals("quizID").(uint)

	var quiz models.Quiz
	if err := h.Db.Where("id = ? AND course_id = ?", quizID, course.ID).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	err := h.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", quiz.ID).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&quiz).Error
	})
	if err != nil {
		log.Printf("Error deleting quiz %d: %v", quizID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz and all associated questions deleted successfully!", nil)
}

// ListQuestions returns a quiz's questions
func (h *Handler) ListQuestions(c *fiber.Ctx) error {
	quiz, course, errResp := h.findQuizCourse(c)
	if errResp != nil {
		return errResp
	}
	if errResp := h.requireMaterialAccess(c, course); errResp != nil {
		return errResp
	}

	var questions []models.Question
	if err := h.Db.Where("quiz_id = ?", quiz.ID).Order("created_at asc").Find(&questions).Error; err != nil {
		log.Printf("Error fetching questions for quiz %d: %v", quiz.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions fetched successfully.", questions)
}

// CreateQuestion adds a question to a quiz
func (h *Handler) CreateQuestion(c *fiber.Ctx) error {
	quiz, course, errResp := h.findQuizCourse(c)
	if errResp != nil {
		return errResp
	}
	if errResp := h.requireContentManager(c, course); errResp != nil {
		return errResp
	}

	reqData, ok := c.Locals("validatedQuestion").(*courseValidator.QuestionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	options, err := json.Marshal(reqData.Options)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid options!", nil)
	}

	question := models.Question{
		QuizID:             quiz.ID,
		QuestionText:       reqData.QuestionText,
		Options:            datatypes.JSON(options),
		CorrectAnswerIndex: reqData.CorrectAnswerIndex,
	}

	if err := h.Db.Create(&question).Error; err != nil {
		log.Printf("Error creating question for quiz %d: %v", quiz.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question created successfully!", question)
}

// UpdateQuestion edits a question
func (h *Handler) UpdateQuestion(c *fiber.Ctx) error {
	quiz, course, errResp := h.findQuizCourse(c)
	if errResp != nil {
		return errResp
	}
	if errResp := h.requireContentManager(c, course); errResp != nil {
		return errResp
	}

	questionID := c.Locals("questionID").(uint)

	var question models.Question
	if err := h.Db.Where("id = ? AND quiz_id = ?", questionID, quiz.ID).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuestion").(*courseValidator.QuestionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	options, err := json.Marshal(reqData.Options)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid options!", nil)
	}

	question.QuestionText = reqData.QuestionText
	question.Options = datatypes.JSON(options)
	question.CorrectAnswerIndex = reqData.CorrectAnswerIndex

	if err := h.Db.Save(&question).Error; err != nil {
		log.Printf("Error updating question %d: %v", questionID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question updated successfully!", question)
}

// DeleteQuestion removes a question from a quiz
func (h *Handler) DeleteQuestion(c *fiber.Ctx) error {
	quiz, course, errResp := h.findQuizCourse(c)
	if errResp != nil {
		return errResp
	}
	if errResp := h.requireContentManager(c, course); errResp != nil {
		return errResp
	}

	questionID := c.Locals("questionID").(uint)

	var question models.Question
	if err := h.Db.Where("id = ? AND quiz_id = ?", questionID, quiz.ID).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	if err := h.Db.Delete(&question).Error; err != nil {
		log.Printf("Error deleting question %d: %v", questionID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully!", nil)
}
