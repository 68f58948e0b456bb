package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Assignment represents a quiz assignment with its question set stored as a
// JSON column, mirroring the document shape used by the hosted store.
type Assignment struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Questions   datatypes.JSON `gorm:"type:json" json:"-"`
	DueDate     time.Time      `gorm:"not null" json:"due_date"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Submissions []Submission   `gorm:"foreignKey:AssignmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// Question is one multiple-choice question inside an assignment. Options are
// positional; correct answers reference option indices, not option text.
type Question struct {
	QuestionNumber int      `json:"questionNumber"`
	QuestionText   string   `json:"questionText"`
	Options        []string `json:"options"`
	CorrectOptions []int    `json:"correctOptions"`
	Rubric         string   `json:"rubric"`
	Marks          float64  `json:"marks"`
}

// SetQuestions serializes the question list into the JSON storage column.
func (a *Assignment) SetQuestions(questions []Question) {
	data, err := json.Marshal(questions)
	if err != nil {
		a.Questions = datatypes.JSON([]byte("[]"))
		return
	}
	a.Questions = datatypes.JSON(data)
}

// QuestionList deserializes the stored question set into a Go slice.
func (a Assignment) QuestionList() []Question {
	if len(a.Questions) == 0 {
		return nil
	}

	var questions []Question
	if err := json.Unmarshal(a.Questions, &questions); err != nil {
		return nil
	}

	return questions
}

// QuestionByNumber returns the question at the given 1-based position.
func (a Assignment) QuestionByNumber(number int) (Question, bool) {
	for _, question := range a.QuestionList() {
		if question.QuestionNumber == number {
			return question, true
		}
	}
	return Question{}, false
}

// IsPastDue returns true when the assignment deadline has already passed.
func (a Assignment) IsPastDue(reference time.Time) bool {
	return reference.After(a.DueDate)
}
