package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Submission represents one student's answers for an assignment, carrying
// grading and finalization state. Answers live in a JSON column like the
// assignment's questions.
type Submission struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	AssignmentID uint           `gorm:"not null;index" json:"assignment_id"`
	StudentName  string         `gorm:"size:255;not null" json:"student_name"`
	Answers      datatypes.JSON `gorm:"type:json" json:"-"`
	Status       string         `gorm:"size:32;not null" json:"status"`
	SubmittedAt  time.Time      `json:"submitted_at"`
	AIScore      *float64       `json:"ai_score"`
	FinalScore   *float64       `json:"final_score"`
	FinalGrade   string         `gorm:"size:16" json:"final_grade"`
	TeacherNotes string         `gorm:"type:text" json:"teacher_notes"`
	GradedAt     *time.Time     `json:"graded_at"`
	FinalizedAt  *time.Time     `json:"finalized_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	Assignment   Assignment     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"assignment"`
}

const (
	// SubmissionStatusPending indicates the submission has not been graded.
	SubmissionStatusPending = "pending"
	// SubmissionStatusSubmitted indicates the submission has been auto-graded.
	SubmissionStatusSubmitted = "submitted"
	// SubmissionStatusGraded indicates the teacher finalized the grade.
	SubmissionStatusGraded = "graded"
)

// Answer is the student's response to one question, annotated with grading
// results and generated feedback once those stages have run.
type Answer struct {
	QuestionNumber      int        `json:"questionNumber"`
	SelectedOptions     []int      `json:"selectedOptions"`
	IsCorrect           *bool      `json:"isCorrect,omitempty"`
	Score               *float64   `json:"score,omitempty"`
	AIFeedback          string     `json:"aiFeedback,omitempty"`
	FeedbackGeneratedAt *time.Time `json:"feedbackGeneratedAt,omitempty"`
}

// SetAnswers serializes the answer list into the JSON storage column.
func (s *Submission) SetAnswers(answers []Answer) {
	data, err := json.Marshal(answers)
	if err != nil {
		s.Answers = datatypes.JSON([]byte("[]"))
		return
	}
	s.Answers = datatypes.JSON(data)
}

// AnswerList deserializes the stored answers into a Go slice.
func (s Submission) AnswerList() []Answer {
	if len(s.Answers) == 0 {
		return nil
	}

	var answers []Answer
	if err := json.Unmarshal(s.Answers, &answers); err != nil {
		return nil
	}

	return answers
}

// IsFinalized reports whether the teacher has finalized the submission.
func (s Submission) IsFinalized() bool {
	return s.Status == SubmissionStatusGraded
}
