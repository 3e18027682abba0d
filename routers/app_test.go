package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gyaandeepika/config"
	"gyaandeepika/database/testutil"
	"gyaandeepika/middleware"
	"gyaandeepika/models"
	"gyaandeepika/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubCompleter struct{ reply string }

func (s stubCompleter) Complete(context.Context, services.CompletionRequest) (string, error) {
	return s.reply, nil
}

type env struct {
	t    *testing.T
	app  *fiber.App
	db   *gorm.DB
	user *models.User
	tok  string
}

func setup(t *testing.T) *env {
	t.Helper()
	prev := config.AppConfig
	config.AppConfig = &config.Config{
		JWTKey:     "test-secret",
		JWTTTL:     time.Hour,
		SaltRound:  4,
		LogMode:    "silent",
		SummaryTTL: time.Hour,
	}
	t.Cleanup(func() { config.AppConfig = prev })

	db := testutil.DB(t)
	testutil.UseGlobal(t, db)

	user := testutil.SeedUser(t, db, "learner@example.com")
	tok, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)

	return &env{t: t, app: NewApp(stubCompleter{reply: "generated"}), db: db, user: user, tok: tok}
}

func (e *env) do(method, path string, body interface{}, token string) (int, map[string]interface{}) {
	e.t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(e.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(e.t, err)
	defer resp.Body.Close()

	out := map[string]interface{}{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(e.t, err)
	if len(raw) > 0 {
		require.NoError(e.t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func seedCourse(t *testing.T, db *gorm.DB) *models.Course {
	return testutil.SeedCourse(t, db, "HTTP Course",
		[]testutil.ItemSpec{
			{Title: "Lesson 1", Type: models.ContentTypeVideo, Seconds: 60},
			{Title: "Lesson 2", Type: models.ContentTypeVideo, Seconds: 60},
		},
		[]testutil.ItemSpec{
			{Title: "Quiz", Type: models.ContentTypeQuiz, Quizzes: []testutil.QuizSpec{
				{Question: "Capital of India?", Options: []string{"Delhi", "Mumbai"}, Answer: "Delhi"},
			}},
		},
	)
}

func TestEnrollFlow(t *testing.T) {
	e := setup(t)
	course := seedCourse(t, e.db)
	path := "/api/courses/enroll/" + course.ID.String()

	status, body := e.do(http.MethodPost, path, nil, "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])

	status, body = e.do(http.MethodPost, "/api/courses/enroll/not-a-uuid", nil, e.tok)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])

	status, body = e.do(http.MethodPost, "/api/courses/enroll/"+uuid.NewString(), nil, e.tok)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Course not found!", body["error"])

	status, body = e.do(http.MethodPost, path, nil, e.tok)
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, course.ID.String(), body["courseId"])

	status, body = e.do(http.MethodPost, path, nil, e.tok)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Already enrolled in this course!", body["error"])

	status, body = e.do(http.MethodGet, "/api/courses/enrolled", nil, e.tok)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"], 1)
}

func TestProgressFlow(t *testing.T) {
	e := setup(t)
	course := seedCourse(t, e.db)
	lesson1 := testutil.ItemID(t, course, "Lesson 1")

	progress := map[string]interface{}{
		"courseId":        course.ID.String(),
		"contentId":       lesson1.String(),
		"watchedDuration": 60,
		"isCompleted":     true,
	}

	status, body := e.do(http.MethodPut, "/api/courses/progress", progress, e.tok)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "You are not enrolled in this course!", body["error"])

	testutil.Enroll(t, e.db, e.user.ID, course.ID)

	status, body = e.do(http.MethodPut, "/api/courses/progress", map[string]interface{}{
		"courseId":        course.ID.String(),
		"contentId":       "nope",
		"watchedDuration": -5,
	}, e.tok)
	assert.Equal(t, http.StatusBadRequest, status)
	errs, ok := body["errors"].(map[string]interface{})
	require.True(t, ok, body)
	assert.Contains(t, errs, "contentId")
	assert.Contains(t, errs, "watchedDuration")

	status, body = e.do(http.MethodPut, "/api/courses/progress", progress, e.tok)
	require.Equal(t, http.StatusOK, status, body)
	data := body["data"].(map[string]interface{})
	assert.EqualValues(t, 50, data["completionPercentage"])

	status, body = e.do(http.MethodGet, "/api/courses/progress/"+course.ID.String(), nil, e.tok)
	require.Equal(t, http.StatusOK, status)
	data = body["data"].(map[string]interface{})
	assert.EqualValues(t, 50, data["completionPercentage"])

	status, body = e.do(http.MethodGet, "/api/courses/progress/stats", nil, e.tok)
	require.Equal(t, http.StatusOK, status, body)
	data = body["data"].(map[string]interface{})
	assert.EqualValues(t, 1, data["videosCompleted"])

	status, body = e.do(http.MethodGet, "/api/courses/enrolled/"+course.ID.String()+"/content", nil, e.tok)
	require.Equal(t, http.StatusOK, status)
	data = body["data"].(map[string]interface{})
	sections := data["sections"].([]interface{})
	first := sections[0].(map[string]interface{})["content"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, true, first["completed"])
	assert.EqualValues(t, 60, first["watchedDuration"])
}

func TestQuizFlow(t *testing.T) {
	e := setup(t)
	course := seedCourse(t, e.db)
	testutil.Enroll(t, e.db, e.user.ID, course.ID)
	quizPath := "/api/courses/" + course.ID.String() + "/" + testutil.ItemID(t, course, "Quiz").String() + "/quiz"

	status, body := e.do(http.MethodGet, quizPath, nil, e.tok)
	require.Equal(t, http.StatusOK, status, body)
	data := body["data"].(map[string]interface{})
	quizzes := data["quizzes"].([]interface{})
	require.Len(t, quizzes, 1)
	q := quizzes[0].(map[string]interface{})
	assert.EqualValues(t, 1, q["questionId"])
	assert.NotContains(t, q, "correctAnswer")

	status, body = e.do(http.MethodPost, quizPath+"/submit", map[string]interface{}{
		"answers": []map[string]interface{}{{"questionId": 1, "answer": "Delhi"}},
	}, e.tok)
	require.Equal(t, http.StatusOK, status, body)
	assert.EqualValues(t, 1, body["score"])
	assert.EqualValues(t, 1, body["total"])
	assert.Len(t, body["results"], 1)

	status, body = e.do(http.MethodPost, quizPath+"/submit", map[string]interface{}{"answers": []interface{}{}}, e.tok)
	require.Equal(t, http.StatusOK, status, body)
	assert.EqualValues(t, 0, body["score"])
	assert.EqualValues(t, 1, body["total"])

	lessonQuiz := "/api/courses/" + course.ID.String() + "/" + testutil.ItemID(t, course, "Lesson 1").String() + "/quiz"
	status, _ = e.do(http.MethodGet, lessonQuiz, nil, e.tok)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCatalogAndAdminRoutes(t *testing.T) {
	e := setup(t)
	course := seedCourse(t, e.db)

	status, body := e.do(http.MethodGet, "/api/courses?limit=5", nil, "")
	require.Equal(t, http.StatusOK, status, body)
	data := body["data"].(map[string]interface{})
	assert.EqualValues(t, 1, data["total"])

	status, _ = e.do(http.MethodGet, "/api/courses?page=0", nil, "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = e.do(http.MethodGet, "/api/courses/"+course.ID.String(), nil, "")
	require.Equal(t, http.StatusOK, status)
	data = body["data"].(map[string]interface{})
	assert.Equal(t, "HTTP Course", data["title"])

	newCourse := map[string]interface{}{
		"title":       "Admin Course",
		"description": "made by an admin",
		"category":    "ops",
		"sections": []map[string]interface{}{{
			"title":   "S1",
			"content": []map[string]interface{}{{"title": "V1", "type": "video", "videoDurationSeconds": 30}},
		}},
	}
	status, _ = e.do(http.MethodPost, "/api/admin/courses", newCourse, e.tok)
	assert.Equal(t, http.StatusForbidden, status)

	admin := testutil.SeedUser(t, e.db, "admin@example.com")
	require.NoError(t, e.db.Model(admin).Update("role", models.RoleAdmin).Error)
	adminTok, err := middleware.GenerateJWT(admin.ID, admin.Name, models.RoleAdmin, admin.Email)
	require.NoError(t, err)

	status, body = e.do(http.MethodPost, "/api/admin/courses", map[string]interface{}{"title": "x"}, adminTok)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["errors"], "category")

	status, body = e.do(http.MethodPost, "/api/admin/courses", newCourse, adminTok)
	require.Equal(t, http.StatusCreated, status, body)
	created := body["data"].(map[string]interface{})
	id := created["id"].(string)

	status, _ = e.do(http.MethodPatch, "/api/admin/courses/"+id+"/publish", map[string]interface{}{"isPublished": true}, adminTok)
	require.Equal(t, http.StatusOK, status)

	status, body = e.do(http.MethodGet, "/api/courses", nil, "")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 2, body["data"].(map[string]interface{})["total"])
}

func TestAuthRoutes(t *testing.T) {
	e := setup(t)

	status, body := e.do(http.MethodPost, "/api/auth/signup", map[string]interface{}{
		"name": "New Learner", "email": "new@example.com", "password": "longenough",
	}, "")
	require.Equal(t, http.StatusCreated, status, body)
	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	assert.NotContains(t, data["user"], "password")

	status, body = e.do(http.MethodPost, "/api/auth/signup", map[string]interface{}{
		"name": "x", "email": "bad", "password": "short",
	}, "")
	assert.Equal(t, http.StatusBadRequest, status)
	errs := body["errors"].(map[string]interface{})
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")

	status, body = e.do(http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email": "new@example.com", "password": "longenough",
	}, "")
	require.Equal(t, http.StatusOK, status, body)
	token := body["data"].(map[string]interface{})["token"].(string)

	status, _ = e.do(http.MethodGet, "/api/courses/enrolled", nil, token)
	assert.Equal(t, http.StatusOK, status)

	status, body = e.do(http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email": "new@example.com", "password": "wrong-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid credentials!", body["error"])
}

func TestNotesAndAIRoutes(t *testing.T) {
	e := setup(t)
	course := seedCourse(t, e.db)
	testutil.Enroll(t, e.db, e.user.ID, course.ID)
	lesson := testutil.ItemID(t, course, "Lesson 1")

	status, body := e.do(http.MethodPut, "/api/notes", map[string]interface{}{
		"courseId": course.ID.String(), "contentId": lesson.String(), "text": "key idea", "videoTimestamp": 12,
	}, e.tok)
	require.Equal(t, http.StatusOK, status, body)
	noteID := body["data"].(map[string]interface{})["id"].(string)

	status, body = e.do(http.MethodGet, "/api/notes/"+course.ID.String()+"?contentId="+lesson.String(), nil, e.tok)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"], 1)

	status, _ = e.do(http.MethodDelete, "/api/notes/"+noteID, nil, e.tok)
	assert.Equal(t, http.StatusOK, status)

	ref := map[string]interface{}{"courseId": course.ID.String(), "contentId": lesson.String()}
	status, body = e.do(http.MethodPost, "/api/ai/summary", ref, e.tok)
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, "generated", body["data"].(map[string]interface{})["text"])

	status, _ = e.do(http.MethodPost, "/api/ai/ask", ref, e.tok)
	assert.Equal(t, http.StatusBadRequest, status)

	ref["question"] = "what is this about?"
	status, body = e.do(http.MethodPost, "/api/ai/ask", ref, e.tok)
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, "generated", body["data"].(map[string]interface{})["answer"])
}

func TestNilIDsAreValidationErrors(t *testing.T) {
	e := setup(t)
	course := seedCourse(t, e.db)
	testutil.Enroll(t, e.db, e.user.ID, course.ID)
	lesson := testutil.ItemID(t, course, "Lesson 1")

	nilRef := map[string]interface{}{"courseId": uuid.Nil.String(), "contentId": lesson.String(), "question": "why?"}
	for _, path := range []string{"/api/ai/summary", "/api/ai/ask"} {
		status, body := e.do(http.MethodPost, path, nilRef, e.tok)
		require.Equal(t, http.StatusBadRequest, status, path)
		assert.Contains(t, body["errors"], "courseId", path)
	}

	status, body := e.do(http.MethodPut, "/api/notes", map[string]interface{}{
		"courseId": course.ID.String(), "contentId": uuid.Nil.String(), "text": "key idea",
	}, e.tok)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["errors"], "contentId")
}

func TestNewAppPrintsRoutesOutsideProduction(t *testing.T) {
	e := setup(t)
	assert.True(t, e.app.Config().EnablePrintRoutes)

	config.AppConfig.AppEnv = "production"
	assert.False(t, NewApp(stubCompleter{}).Config().EnablePrintRoutes)
}

func TestInvalidToken(t *testing.T) {
	e := setup(t)
	status, body := e.do(http.MethodGet, "/api/courses/enrolled", nil, "garbage")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, false, body["success"])

	status, _ = e.do(http.MethodGet, "/api/nothing-here", nil, "")
	assert.Equal(t, http.StatusNotFound, status)
}
