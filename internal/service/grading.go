package service

import "github.com/noah-isme/lms-quiz-api/internal/models"

// GradeAnswers scores a submission's answers against the assignment's
// questions. An answer whose question position has no match is passed through
// untouched and contributes zero. A question awards its full mark value only
// when the selected option set equals the correct option set; there is no
// partial credit. The second return value is the aggregate score.
func GradeAnswers(questions []models.Question, answers []models.Answer) ([]models.Answer, float64) {
	byNumber := make(map[int]models.Question, len(questions))
	for _, question := range questions {
		byNumber[question.QuestionNumber] = question
	}

	graded := make([]models.Answer, 0, len(answers))
	var total float64

	for _, answer := range answers {
		question, ok := byNumber[answer.QuestionNumber]
		if !ok {
			graded = append(graded, answer)
			continue
		}

		correct := sameOptionSet(answer.SelectedOptions, question.CorrectOptions)
		score := 0.0
		if correct {
			score = question.Marks
		}
		total += score

		answer.IsCorrect = &correct
		answer.Score = &score
		graded = append(graded, answer)
	}

	return graded, total
}

// sameOptionSet compares two option index selections as sets: order and
// duplicates are irrelevant.
func sameOptionSet(selected, correct []int) bool {
	selectedSet := make(map[int]struct{}, len(selected))
	for _, index := range selected {
		selectedSet[index] = struct{}{}
	}

	correctSet := make(map[int]struct{}, len(correct))
	for _, index := range correct {
		correctSet[index] = struct{}{}
	}

	if len(selectedSet) != len(correctSet) {
		return false
	}

	for index := range correctSet {
		if _, ok := selectedSet[index]; !ok {
			return false
		}
	}

	return true
}
