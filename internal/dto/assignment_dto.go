package dto

import (
	"time"

	"github.com/noah-isme/lms-quiz-api/internal/models"
)

// QuestionPayload describes one question in a create-assignment request.
type QuestionPayload struct {
	QuestionText   string   `json:"questionText" validate:"required"`
	Options        []string `json:"options" validate:"required,min=2,dive,required"`
	CorrectOptions []int    `json:"correctOptions"`
	Rubric         string   `json:"rubric"`
	Marks          float64  `json:"marks" validate:"required,gt=0"`
}

// AssignmentCreateRequest describes the payload for creating a new assignment.
type AssignmentCreateRequest struct {
	Title       string            `json:"title" validate:"required,min=3"`
	Description string            `json:"description" validate:"required"`
	Questions   []QuestionPayload `json:"questions" validate:"required,min=1,dive"`
	DueDate     string            `json:"dueDate" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

// AssignmentResponse is the teacher-facing representation, answer key included.
type AssignmentResponse struct {
	ID          uint              `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Questions   []models.Question `json:"questions"`
	DueDate     time.Time         `json:"dueDate"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// TeacherAssignmentListItem augments an assignment with submission counts for
// the teacher overview.
type TeacherAssignmentListItem struct {
	AssignmentResponse
	TotalSubmissions int `json:"totalSubmissions"`
	GradedCount      int `json:"gradedCount"`
	PendingCount     int `json:"pendingCount"`
}

// StudentQuestion is a question with the answer key and rubric stripped out.
type StudentQuestion struct {
	QuestionNumber int      `json:"questionNumber"`
	QuestionText   string   `json:"questionText"`
	Options        []string `json:"options"`
	Marks          float64  `json:"marks"`
}

// ReviewQuestion exposes the answer key for post-grading review, rubric still
// withheld.
type ReviewQuestion struct {
	QuestionNumber int      `json:"questionNumber"`
	QuestionText   string   `json:"questionText"`
	Options        []string `json:"options"`
	Marks          float64  `json:"marks"`
	CorrectOptions []int    `json:"correctOptions"`
}

// StudentAssignmentSummary lists an assignment without its questions.
type StudentAssignmentSummary struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	CreatedAt   time.Time `json:"createdAt"`
}

// StudentAssignmentResponse carries the questions a student may see before
// submitting.
type StudentAssignmentResponse struct {
	StudentAssignmentSummary
	Questions []StudentQuestion `json:"questions"`
}

// NewAssignmentResponse converts a model into the teacher DTO.
func NewAssignmentResponse(model models.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		Questions:   model.QuestionList(),
		DueDate:     model.DueDate,
		CreatedAt:   model.CreatedAt,
	}
}

// NewStudentAssignmentSummary converts a model into the student list DTO.
func NewStudentAssignmentSummary(model models.Assignment) StudentAssignmentSummary {
	return StudentAssignmentSummary{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		DueDate:     model.DueDate,
		CreatedAt:   model.CreatedAt,
	}
}

// NewStudentAssignmentResponse converts a model into the student DTO, keeping
// the answer key and rubric out of the payload.
func NewStudentAssignmentResponse(model models.Assignment) StudentAssignmentResponse {
	questions := model.QuestionList()
	stripped := make([]StudentQuestion, 0, len(questions))
	for _, question := range questions {
		stripped = append(stripped, StudentQuestion{
			QuestionNumber: question.QuestionNumber,
			QuestionText:   question.QuestionText,
			Options:        question.Options,
			Marks:          question.Marks,
		})
	}

	return StudentAssignmentResponse{
		StudentAssignmentSummary: NewStudentAssignmentSummary(model),
		Questions:                stripped,
	}
}

// NewReviewQuestions converts questions into the post-grading review shape.
func NewReviewQuestions(questions []models.Question) []ReviewQuestion {
	review := make([]ReviewQuestion, 0, len(questions))
	for _, question := range questions {
		review = append(review, ReviewQuestion{
			QuestionNumber: question.QuestionNumber,
			QuestionText:   question.QuestionText,
			Options:        question.Options,
			Marks:          question.Marks,
			CorrectOptions: question.CorrectOptions,
		})
	}
	return review
}
