package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"interview_prep_backend/internal/model"
	"interview_prep_backend/internal/repository"
	"interview_prep_backend/internal/service"
	"interview_prep_backend/internal/util"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

// withUser stands in for the auth middleware.
func withUser(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != 0 {
			util.SetUserInContext(c, &util.Claims{UserID: userID, Role: model.Candidate})
		}
		c.Next()
	}
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: decode response %q: %v", method, path, w.Body.String(), err)
	}
	return w, env
}

// memAnswers is an in-memory answer store keyed by user and question.
type memAnswers struct {
	rows   map[[2]uint]model.Answer
	nextID uint
}

func (m *memAnswers) FindByUserAndQuestion(userID, questionID uint) (*model.Answer, error) {
	a, ok := m.rows[[2]uint{userID, questionID}]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (m *memAnswers) Save(a *model.Answer) error {
	if a.ID == 0 {
		m.nextID++
		a.ID = m.nextID
	}
	m.rows[[2]uint{a.UserID, a.QuestionID}] = *a
	return nil
}

func (m *memAnswers) FindScoredByUser(userID uint) ([]model.Answer, error) {
	var out []model.Answer
	for k, a := range m.rows {
		if k[0] == userID && a.Score != nil {
			out = append(out, a)
		}
	}
	return out, nil
}

type fixedQuestions map[uint]string

func (f fixedQuestions) FindByID(id uint) (*model.Question, error) {
	text, ok := f[id]
	if !ok {
		return nil, util.ErrQuestionNotFound
	}
	return &model.Question{BaseModel: model.BaseModel{ID: id}, Text: text}, nil
}

type anyUser struct{}

func (anyUser) FindByID(id uint) (*model.User, error) {
	return &model.User{BaseModel: model.BaseModel{ID: id}}, nil
}

type cannedEvaluator string

func (e cannedEvaluator) Evaluate(ctx context.Context, q, a string) (string, error) {
	return string(e), nil
}

type failingMedia struct{}

func (failingMedia) Store(ctx context.Context, data []byte, filename, contentType string) (string, string, error) {
	return "", "", errors.New("bucket unreachable")
}

func (failingMedia) Remove(ctx context.Context, key string) error {
	return nil
}

func newAnswerRouter(userID uint) (*gin.Engine, *memAnswers) {
	store := &memAnswers{rows: map[[2]uint]model.Answer{}}
	svc := service.NewAnswerService(
		store,
		fixedQuestions{1: "Explain interfaces in Go."},
		anyUser{},
		cannedEvaluator("Score (overall, out of 5): 1\nCorrectness (0–5): 1\nCompleteness (0–5): 2\nClarity (0–5): 1\nFeedback: Too vague."),
		failingMedia{},
	)
	answers := NewAnswerController(svc)
	dashboard := NewDashboardController(service.NewDashboardService(store, nil))

	r := gin.New()
	api := r.Group("/api", withUser(userID))
	api.POST("/answers", answers.SubmitAnswer)
	api.GET("/answers/:questionId", answers.GetAnswer)
	api.GET("/dashboard", dashboard.GetDashboard)
	return r, store
}

func TestSubmitAnswerCreatedThenUpdated(t *testing.T) {
	r, _ := newAnswerRouter(7)
	body := map[string]interface{}{"questionId": 1, "answerType": "TEXT", "answerText": "They are implicit."}

	w, env := doRequest(t, r, http.MethodPost, "/api/answers", body)
	if w.Code != http.StatusCreated || env.Message != "Answer uploaded successfully" {
		t.Fatalf("first submit: %d %q, want 201 uploaded", w.Code, env.Message)
	}
	var resp AnswerResponse
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if resp.Score == nil || *resp.Score != 1 || resp.Completeness == nil || *resp.Completeness != 2 {
		t.Fatalf("scores=%v/%v, want 1 and 2", resp.Score, resp.Completeness)
	}
	if resp.Feedback == nil || *resp.Feedback != "Too vague." {
		t.Fatalf("feedback=%v", resp.Feedback)
	}
	if resp.QuestionText != "Explain interfaces in Go." || resp.AnswerType != "TEXT" || resp.UserID != 7 {
		t.Fatalf("resp=%+v", resp)
	}

	w, env = doRequest(t, r, http.MethodPost, "/api/answers", body)
	if w.Code != http.StatusOK || env.Message != "Answer updated successfully" {
		t.Fatalf("resubmit: %d %q, want 200 updated", w.Code, env.Message)
	}
}

func TestSubmitAnswerRejectsBadInput(t *testing.T) {
	cases := []struct {
		name       string
		body       interface{}
		wantStatus int
		wantErr    string
	}{
		{"malformed json", `{"questionId":`, http.StatusBadRequest, ""},
		{"missing question", map[string]interface{}{"answerType": "TEXT", "answerText": "x"}, http.StatusBadRequest, "questionId is required"},
		{"unknown type", map[string]interface{}{"questionId": 1, "answerType": "PDF"}, http.StatusBadRequest, "answerType must be one of"},
		{"text without body", map[string]interface{}{"questionId": 1, "answerType": "TEXT", "answerText": "   "}, http.StatusBadRequest, "answerText is required for TEXT answers"},
		{"audio without file", map[string]interface{}{"questionId": 1, "answerType": "AUDIO"}, http.StatusBadRequest, "fileBase64 is required for AUDIO/VIDEO answers"},
		{"unknown question", map[string]interface{}{"questionId": 42, "answerType": "TEXT", "answerText": "x"}, http.StatusNotFound, ""},
		{"undecodable media", map[string]interface{}{"questionId": 1, "answerType": "VIDEO", "fileBase64": "!!", "fileType": "video/mp4", "filename": "a.mp4"}, http.StatusBadRequest, ""},
		{"upload failure", map[string]interface{}{"questionId": 1, "answerType": "VIDEO", "fileBase64": "AAEC", "fileType": "video/mp4", "filename": "a.mp4"}, http.StatusBadGateway, ""},
	}

	for _, c := range cases {
		r, store := newAnswerRouter(7)
		w, env := doRequest(t, r, http.MethodPost, "/api/answers", c.body)
		if w.Code != c.wantStatus {
			t.Fatalf("%s: status=%d (%q), want %d", c.name, w.Code, env.Message, c.wantStatus)
		}
		if c.wantErr != "" && !containsPrefix(env.Errors, c.wantErr) {
			t.Fatalf("%s: errors=%q, want one starting with %q", c.name, env.Errors, c.wantErr)
		}
		if len(store.rows) != 0 {
			t.Fatalf("%s: answer stored despite rejection", c.name)
		}
	}
}

func containsPrefix(list []string, prefix string) bool {
	for _, s := range list {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

func TestSubmitAnswerAcceptsLowercaseType(t *testing.T) {
	r, store := newAnswerRouter(7)
	w, env := doRequest(t, r, http.MethodPost, "/api/answers", map[string]interface{}{
		"questionId": 1, "answerType": "text", "answerText": "x",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d (%q %v), want 201", w.Code, env.Message, env.Errors)
	}
	if got := store.rows[[2]uint{7, 1}].AnswerType; got != model.AnswerTypeText {
		t.Fatalf("stored AnswerType=%q, want TEXT", got)
	}
}

func TestSubmitAnswerRequiresUser(t *testing.T) {
	r, _ := newAnswerRouter(0)
	w, _ := doRequest(t, r, http.MethodPost, "/api/answers", map[string]interface{}{"questionId": 1, "answerType": "TEXT", "answerText": "x"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want 401", w.Code)
	}
}

func TestGetAnswer(t *testing.T) {
	r, _ := newAnswerRouter(7)

	w, env := doRequest(t, r, http.MethodGet, "/api/answers/1", nil)
	if w.Code != http.StatusOK || env.Message != "No answer found for this question" || (len(env.Data) != 0 && string(env.Data) != "null") {
		t.Fatalf("before submit: %d %q data=%s", w.Code, env.Message, env.Data)
	}

	doRequest(t, r, http.MethodPost, "/api/answers", map[string]interface{}{"questionId": 1, "answerType": "TEXT", "answerText": "x"})

	w, env = doRequest(t, r, http.MethodGet, "/api/answers/1", nil)
	if w.Code != http.StatusOK || env.Message != "Answer retrieved successfully" {
		t.Fatalf("after submit: %d %q", w.Code, env.Message)
	}

	w, _ = doRequest(t, r, http.MethodGet, "/api/answers/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric id status=%d, want 400", w.Code)
	}
}

func TestGetDashboard(t *testing.T) {
	r, _ := newAnswerRouter(7)

	w, env := doRequest(t, r, http.MethodGet, "/api/dashboard", nil)
	if w.Code != http.StatusOK || env.Message != "No answered questions found" {
		t.Fatalf("empty dashboard: %d %q", w.Code, env.Message)
	}
	var empty service.DashboardSummary
	json.Unmarshal(env.Data, &empty)
	if empty.LowScoreQuestions == nil {
		t.Fatal("lowScoreQuestions should serialize as [] not null")
	}

	doRequest(t, r, http.MethodPost, "/api/answers", map[string]interface{}{"questionId": 1, "answerType": "TEXT", "answerText": "x"})

	w, env = doRequest(t, r, http.MethodGet, "/api/dashboard", nil)
	if w.Code != http.StatusOK || env.Message != "Dashboard statistics retrieved successfully" {
		t.Fatalf("dashboard: %d %q", w.Code, env.Message)
	}
	var summary service.DashboardSummary
	if err := json.Unmarshal(env.Data, &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.AverageScore != 1 || summary.QuestionsAnsweredCount != 1 || len(summary.LowScoreQuestions) != 1 {
		t.Fatalf("summary=%+v", summary)
	}
	if summary.LowScoreQuestions[0].QuestionText != "Explain interfaces in Go." {
		t.Fatalf("weak point text=%q", summary.LowScoreQuestions[0].QuestionText)
	}
}

type cannedGenerator struct {
	raw string
	err error
}

func (g cannedGenerator) GenerateQuestions(ctx context.Context, req service.GenerateQuestionsRequest) (string, error) {
	return g.raw, g.err
}

type memSets struct {
	sets map[uint]*model.QuestionSet
}

func (m *memSets) Create(set *model.QuestionSet) error {
	set.ID = uint(len(m.sets) + 1)
	m.sets[set.ID] = set
	return nil
}

func (m *memSets) FindByID(id uint) (*model.QuestionSet, error) {
	if s, ok := m.sets[id]; ok {
		return s, nil
	}
	return nil, util.ErrQuestionSetNotFound
}

type memQuestions struct {
	all []model.Question
}

func (m *memQuestions) FindByID(id uint) (*model.Question, error) {
	return nil, util.ErrQuestionNotFound
}

func (m *memQuestions) List(f repository.QuestionFilter) ([]model.Question, int64, error) {
	return m.all, int64(len(m.all)), nil
}

func (m *memQuestions) FindBySet(setID uint) ([]model.Question, error) {
	return m.all, nil
}

func newQuestionRouter(gen cannedGenerator) *gin.Engine {
	questions := &memQuestions{all: []model.Question{
		{BaseModel: model.BaseModel{ID: 1}, Text: "What is a goroutine?", Type: "technical", Difficulty: "easy"},
	}}
	svc := service.NewQuestionService(questions, &memSets{sets: map[uint]*model.QuestionSet{}}, gen)
	ctrl := NewQuestionController(svc)

	r := gin.New()
	api := r.Group("/api", withUser(3))
	api.GET("/questions", ctrl.ListQuestions)
	api.POST("/question-sets/generate", ctrl.GenerateQuestionSet)
	api.GET("/question-sets/:id/questions", ctrl.ListQuestionsBySet)
	return r
}

func TestGenerateQuestionSetEndpoint(t *testing.T) {
	r := newQuestionRouter(cannedGenerator{raw: "1. First?\n2. Second?"})
	body := map[string]interface{}{"name": "Go", "type": "technical", "difficulty": "easy", "quantity": 2}

	w, env := doRequest(t, r, http.MethodPost, "/api/question-sets/generate", body)
	if w.Code != http.StatusCreated || env.Message != "Question set generated successfully" {
		t.Fatalf("generate: %d %q", w.Code, env.Message)
	}
	var resp QuestionSetResponse
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "DRAFT" || len(resp.Questions) != 2 || resp.Questions[1] != "Second?" {
		t.Fatalf("resp=%+v", resp)
	}

	w, env = doRequest(t, r, http.MethodGet, "/api/question-sets/1/questions", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list by set: %d %q", w.Code, env.Message)
	}
	w, _ = doRequest(t, r, http.MethodGet, "/api/question-sets/9/questions", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing set status=%d, want 404", w.Code)
	}
}

func TestGenerateQuestionSetFailures(t *testing.T) {
	cases := []struct {
		name       string
		gen        cannedGenerator
		body       interface{}
		wantStatus int
	}{
		{"quantity out of range", cannedGenerator{raw: "1. x"}, map[string]interface{}{"name": "n", "type": "t", "difficulty": "d", "quantity": 0}, http.StatusBadRequest},
		{"nothing parsed", cannedGenerator{raw: "no list here"}, map[string]interface{}{"name": "n", "type": "t", "difficulty": "d", "quantity": 2}, http.StatusBadGateway},
		{"generator down", cannedGenerator{err: &util.EvaluatorError{Op: "generate", Err: errors.New("timeout")}}, map[string]interface{}{"name": "n", "type": "t", "difficulty": "d", "quantity": 2}, http.StatusBadGateway},
	}
	for _, c := range cases {
		r := newQuestionRouter(c.gen)
		w, env := doRequest(t, r, http.MethodPost, "/api/question-sets/generate", c.body)
		if w.Code != c.wantStatus {
			t.Fatalf("%s: status=%d (%q), want %d", c.name, w.Code, env.Message, c.wantStatus)
		}
	}
}

func TestListQuestionsEndpoint(t *testing.T) {
	r := newQuestionRouter(cannedGenerator{})
	w, env := doRequest(t, r, http.MethodGet, "/api/questions?page=0&size=5&type=tech", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var page struct {
		List  []QuestionPreviewResponse `json:"list"`
		Total int64                     `json:"total"`
		Limit int                       `json:"limit"`
	}
	if err := json.Unmarshal(env.Data, &page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if page.Total != 1 || len(page.List) != 1 || page.List[0].Text != "What is a goroutine?" || page.Limit != 5 {
		t.Fatalf("page=%+v", page)
	}
}

func TestListQuestionsReportsClampedPaging(t *testing.T) {
	r := newQuestionRouter(cannedGenerator{})
	cases := []struct {
		query              string
		wantPage, wantSize int
	}{
		{"?size=1000", 0, util.MaxPageSize},
		{"?page=-2&size=0", 0, util.DefaultPageSize},
		{"?page=abc&size=xyz", 0, util.DefaultPageSize},
	}
	for _, c := range cases {
		w, env := doRequest(t, r, http.MethodGet, "/api/questions"+c.query, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status=%d", c.query, w.Code)
		}
		var page util.PageResponse
		if err := json.Unmarshal(env.Data, &page); err != nil {
			t.Fatalf("%s: decode: %v", c.query, err)
		}
		if page.Page != c.wantPage || page.Limit != c.wantSize {
			t.Fatalf("%s: page=%d limit=%d, want %d %d", c.query, page.Page, page.Limit, c.wantPage, c.wantSize)
		}
	}
}
