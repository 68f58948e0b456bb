package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/lms-quiz-api/internal/dto"
	"github.com/noah-isme/lms-quiz-api/internal/utils"
)

func createPayload() map[string]interface{} {
	return map[string]interface{}{
		"title":       "Algebra Basics",
		"description": "Weekly quiz on linear equations",
		"dueDate":     time.Now().Add(72 * time.Hour).Format(time.RFC3339),
		"questions": []map[string]interface{}{
			{
				"questionText":   "What is 2+2?",
				"options":        []string{"A", "B", "C"},
				"correctOptions": []int{1},
				"rubric":         "Pick B",
				"marks":          2,
			},
		},
	}
}

func TestCreateAssignmentAndList(t *testing.T) {
	app := setupTestApp(t, nil)

	body, err := json.Marshal(createPayload())
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/teacher/assignments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var created dto.AssignmentResponse
	decodeResponse(t, resp, &created)
	require.NotZero(t, created.ID)
	require.Len(t, created.Questions, 1)
	require.Equal(t, []int{1}, created.Questions[0].CorrectOptions)

	listResp, err := app.Test(httptest.NewRequest("GET", "/api/teacher/assignments", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, listResp.StatusCode)

	var items []dto.TeacherAssignmentListItem
	decodeResponse(t, listResp, &items)
	require.Len(t, items, 1)
	require.Zero(t, items[0].TotalSubmissions)
}

func TestCreateAssignmentRejectsMissingRubric(t *testing.T) {
	app := setupTestApp(t, nil)

	payload := createPayload()
	payload["questions"].([]map[string]interface{})[0]["rubric"] = ""

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/teacher/assignments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var failure utils.ErrorResponse
	decodeResponse(t, resp, &failure)
	require.Contains(t, failure.Error, "rubric")
}

func TestGetAssignmentNotFound(t *testing.T) {
	app := setupTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/teacher/assignments/99", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var failure utils.ErrorResponse
	decodeResponse(t, resp, &failure)
	require.Equal(t, "Assignment not found", failure.Error)
}

func TestAutoGradeUnknownAssignment(t *testing.T) {
	app := setupTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/teacher/assignments/42/auto-grade", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
