package dto

import (
	"time"

	"github.com/noah-isme/lms-quiz-api/internal/models"
)

// AnswerPayload is one answer in a submit request. Selections reference
// option indices and may be empty or contain multiple values.
type AnswerPayload struct {
	QuestionNumber  int   `json:"questionNumber" validate:"required,gt=0"`
	SelectedOptions []int `json:"selectedOptions"`
}

// SubmitRequest describes the payload for a student submitting answers.
type SubmitRequest struct {
	StudentName string          `json:"studentName" validate:"required,min=1"`
	Answers     []AnswerPayload `json:"answers" validate:"required,min=1,dive"`
}

// FinalizeRequest carries the teacher's final grading decision.
type FinalizeRequest struct {
	FinalScore   *float64 `json:"finalScore" validate:"omitempty,gte=0"`
	FinalGrade   string   `json:"finalGrade" validate:"required"`
	TeacherNotes string   `json:"teacherNotes"`
}

// SubmissionResponse is the teacher-facing submission representation.
type SubmissionResponse struct {
	ID           uint                `json:"id"`
	AssignmentID uint                `json:"assignmentId"`
	StudentName  string              `json:"studentName"`
	Answers      []models.Answer     `json:"answers"`
	Status       string              `json:"status"`
	SubmittedAt  time.Time           `json:"submittedAt"`
	AIScore      *float64            `json:"aiScore"`
	FinalScore   *float64            `json:"finalScore"`
	FinalGrade   string              `json:"finalGrade"`
	TeacherNotes string              `json:"teacherNotes"`
	GradedAt     *time.Time          `json:"gradedAt"`
	FinalizedAt  *time.Time          `json:"finalizedAt"`
	Assignment   *AssignmentResponse `json:"assignment,omitempty"`
}

// StudentSubmissionResponse is the student-facing slice of a submission.
// Teacher notes and grading timestamps are not part of it.
type StudentSubmissionResponse struct {
	ID           uint            `json:"id"`
	AssignmentID uint            `json:"assignmentId"`
	StudentName  string          `json:"studentName"`
	Answers      []models.Answer `json:"answers"`
	Status       string          `json:"status"`
	SubmittedAt  time.Time       `json:"submittedAt"`
	AIScore      *float64        `json:"aiScore"`
	FinalScore   *float64        `json:"finalScore"`
	FinalGrade   string          `json:"finalGrade"`
}

// StudentSubmissionListItem augments a submission with its assignment
// headline when listing by student name.
type StudentSubmissionListItem struct {
	StudentSubmissionResponse
	AssignmentTitle       string `json:"assignmentTitle,omitempty"`
	AssignmentDescription string `json:"assignmentDescription,omitempty"`
}

// SubmissionDetailAssignment embeds the assignment with the answer key for
// the post-grading review endpoint.
type SubmissionDetailAssignment struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Questions   []ReviewQuestion `json:"questions"`
}

// SubmissionDetailResponse is the student review view including feedback and
// the answer key.
type SubmissionDetailResponse struct {
	StudentSubmissionResponse
	Assignment SubmissionDetailAssignment `json:"assignment"`
}

// AutoGradeResponse reports the outcome of an auto-grade batch.
type AutoGradeResponse struct {
	Message     string `json:"message"`
	GradedCount int    `json:"gradedCount"`
}

// FeedbackResponse reports how many answers received generated feedback.
type FeedbackResponse struct {
	Message       string `json:"message"`
	FeedbackCount int    `json:"feedbackCount"`
}

// NewSubmissionResponse converts a Submission model into the teacher DTO.
func NewSubmissionResponse(model models.Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:           model.ID,
		AssignmentID: model.AssignmentID,
		StudentName:  model.StudentName,
		Answers:      model.AnswerList(),
		Status:       model.Status,
		SubmittedAt:  model.SubmittedAt,
		AIScore:      model.AIScore,
		FinalScore:   model.FinalScore,
		FinalGrade:   model.FinalGrade,
		TeacherNotes: model.TeacherNotes,
		GradedAt:     model.GradedAt,
		FinalizedAt:  model.FinalizedAt,
	}
}

// NewSubmissionResponseSlice converts submission models into teacher DTOs.
func NewSubmissionResponseSlice(submissions []models.Submission) []SubmissionResponse {
	responses := make([]SubmissionResponse, 0, len(submissions))
	for _, submission := range submissions {
		responses = append(responses, NewSubmissionResponse(submission))
	}
	return responses
}

// NewStudentSubmissionResponse converts a Submission model into the student DTO.
func NewStudentSubmissionResponse(model models.Submission) StudentSubmissionResponse {
	return StudentSubmissionResponse{
		ID:           model.ID,
		AssignmentID: model.AssignmentID,
		StudentName:  model.StudentName,
		Answers:      model.AnswerList(),
		Status:       model.Status,
		SubmittedAt:  model.SubmittedAt,
		AIScore:      model.AIScore,
		FinalScore:   model.FinalScore,
		FinalGrade:   model.FinalGrade,
	}
}
