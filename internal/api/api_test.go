package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Tahmid447/Tahmid-English-Club/internal/api"
	"github.com/Tahmid447/Tahmid-English-Club/internal/audio"
	"github.com/Tahmid447/Tahmid-English-Club/internal/auth"
	"github.com/Tahmid447/Tahmid-English-Club/internal/models"
	"github.com/Tahmid447/Tahmid-English-Club/internal/store"
	"github.com/Tahmid447/Tahmid-English-Club/internal/testutil"
)

var apiSeeds = map[string][]models.Record{
	store.CollectionUsers: {
		{"id": "haru", "name": "Haru", "role": "student", "pass": "haru123"},
		{"id": "Teacher", "name": "Tanaka Sensei", "role": "teacher"},
	},
	store.CollectionVocab: {
		{"id": "v1", "word": "Elephant", "meaning": "ぞう"},
	},
	store.CollectionQuiz: {
		{"id": "q1", "type": "grammar", "title": "Unit 3", "date": "2026-08-01",
			"question": "I ___ playing soccer now.", "options": []any{"am", "is", "are"},
			"correctAnswer": "am"},
		{"id": "q2", "type": "writing", "title": "Unit 3", "date": "2026-08-01",
			"question": "「はい、そうです」を英語で書きなさい。", "correctAnswer": "Yes, it is."},
	},
	store.CollectionResults: {},
}

type APISuite struct {
	suite.Suite
	ctx    context.Context
	db     *store.Store
	server *httptest.Server
	client *http.Client
}

func (s *APISuite) SetupTest() {
	s.ctx = context.Background()
	s.db = store.New(testutil.NewTestKV(s.T()), store.WithSeeds(apiSeeds))

	authService := auth.NewService(s.db, auth.StaticVerifier{
		Email: "teacher@example.com",
		Pass:  "sensei",
		Name:  "Tanaka Sensei",
	})

	srv := &api.Server{
		Store:   s.db,
		Auth:    authService,
		Player:  audio.LogPlayer{},
		Speaker: audio.LogSpeaker{},
	}
	s.server = httptest.NewServer(srv.Routes())
	s.T().Cleanup(s.server.Close)
	s.client = s.server.Client()
}

func (s *APISuite) do(method, path string, body any) (*http.Response, map[string]any) {
	s.T().Helper()

	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, s.server.URL+path, &buf)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	var decoded map[string]any
	if resp.StatusCode != http.StatusNoContent {
		_ = json.NewDecoder(resp.Body).Decode(&decoded)
	}
	return resp, decoded
}

func (s *APISuite) login(id, pass string) {
	s.T().Helper()
	resp, _ := s.do(http.MethodPost, "/api/login", map[string]string{"id": id, "pass": pass})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
}

func (s *APISuite) TestLoginFailure() {
	resp, body := s.do(http.MethodPost, "/api/login", map[string]string{"id": "haru", "pass": "wrong"})
	s.Assert().Equal(http.StatusUnauthorized, resp.StatusCode)

	errObj, _ := body["error"].(map[string]any)
	s.Require().NotNil(errObj)
	s.Assert().Equal("AUTH_ERROR", errObj["code"])
	s.Assert().Equal(auth.WrongCredentialsMessage, errObj["message"])
}

func (s *APISuite) TestSessionBeforeAndAfterLogin() {
	resp, body := s.do(http.MethodGet, "/api/session", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Assert().Nil(body["user"])

	s.login("haru", "haru123")

	resp, body = s.do(http.MethodGet, "/api/session", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	user, _ := body["user"].(map[string]any)
	s.Require().NotNil(user)
	s.Assert().Equal("haru", user["id"])
}

func (s *APISuite) TestCollectionsRequireLogin() {
	resp, _ := s.do(http.MethodGet, "/api/collections/vocab", nil)
	s.Assert().Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *APISuite) TestListAliasedCollections() {
	s.login("haru", "haru123")

	resp, body := s.do(http.MethodGet, "/api/collections/students", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	records, _ := body["records"].([]any)
	s.Require().Len(records, 1, "teacher accounts are filtered out")
	first, _ := records[0].(map[string]any)
	s.Assert().Equal("haru", first["id"])

	resp, _ = s.do(http.MethodGet, "/api/collections/nonsense", nil)
	s.Assert().Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *APISuite) TestAddDuplicateStudent() {
	s.login("teacher@example.com", "sensei")

	resp, body := s.do(http.MethodPost, "/api/collections/students",
		map[string]any{"id": "haru", "name": "Another", "role": "student", "pass": "x"})
	s.Assert().Equal(http.StatusConflict, resp.StatusCode)

	errObj, _ := body["error"].(map[string]any)
	s.Require().NotNil(errObj)
	s.Assert().Equal("DUPLICATE_KEY", errObj["code"])
	s.Assert().Equal(store.DuplicateIDMessage, errObj["message"])
}

func (s *APISuite) TestCollectionCRUD() {
	s.login("teacher@example.com", "sensei")

	resp, body := s.do(http.MethodPost, "/api/collections/vocab",
		map[string]any{"word": "Dog", "meaning": "いぬ"})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	record, _ := body["record"].(map[string]any)
	s.Require().NotNil(record)
	id, _ := record["id"].(string)
	s.Require().NotEmpty(id)

	resp, _ = s.do(http.MethodPut, "/api/collections/vocab/"+id, map[string]any{"meaning": "犬"})
	s.Require().Equal(http.StatusNoContent, resp.StatusCode)

	resp, body = s.do(http.MethodGet, "/api/collections/vocab", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	records, _ := body["records"].([]any)
	s.Require().Len(records, 2)

	resp, _ = s.do(http.MethodDelete, "/api/collections/vocab/"+id, nil)
	s.Require().Equal(http.StatusNoContent, resp.StatusCode)

	_, body = s.do(http.MethodGet, "/api/collections/vocab", nil)
	records, _ = body["records"].([]any)
	s.Assert().Len(records, 1)
}

func (s *APISuite) TestAssignments() {
	s.login("haru", "haru123")

	resp, body := s.do(http.MethodGet, "/api/assignments", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	groups, _ := body["assignments"].([]any)
	s.Require().Len(groups, 1)
	first, _ := groups[0].(map[string]any)
	s.Assert().Equal("Unit 3", first["title"])
}

func (s *APISuite) TestQuizFlow() {
	s.login("haru", "haru123")

	resp, body := s.do(http.MethodPost, "/api/quiz/start",
		map[string]string{"title": "Unit 3", "date": "2026-08-01"})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Assert().Equal("in_progress", body["state"])
	s.Assert().Equal(float64(2), body["total"])

	// Q1: correct grammar answer.
	resp, _ = s.do(http.MethodPost, "/api/quiz/answer", map[string]string{"answer": "am"})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	resp, body = s.do(http.MethodPost, "/api/quiz/submit", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Assert().Equal("feedback", body["state"])
	s.Assert().Equal("correct", body["feedback"])
	s.Assert().Equal(float64(1), body["score"])

	resp, body = s.do(http.MethodPost, "/api/quiz/next", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Assert().Equal(float64(1), body["index"])

	// Q2: correct writing answer, normalized.
	_, _ = s.do(http.MethodPost, "/api/quiz/answer", map[string]string{"answer": "yes it is"})
	_, body = s.do(http.MethodPost, "/api/quiz/submit", nil)
	s.Assert().Equal("correct", body["feedback"])

	_, body = s.do(http.MethodPost, "/api/quiz/next", nil)
	s.Assert().Equal("complete", body["state"])
	s.Assert().Equal(float64(2), body["score"])

	// Every submission landed in the results log.
	_, body = s.do(http.MethodGet, "/api/collections/logs", nil)
	records, _ := body["records"].([]any)
	s.Require().Len(records, 2)
	for _, raw := range records {
		rec, _ := raw.(map[string]any)
		s.Assert().Equal("haru", rec["studentId"])
		s.Assert().Equal(true, rec["isCorrect"])
	}
}

func (s *APISuite) TestQuizSubmitOutsideInProgress() {
	s.login("haru", "haru123")

	resp, _ := s.do(http.MethodPost, "/api/quiz/submit", nil)
	s.Assert().Equal(http.StatusBadRequest, resp.StatusCode, "no active quiz")

	_, _ = s.do(http.MethodPost, "/api/quiz/start",
		map[string]string{"title": "Unit 3", "date": "2026-08-01"})
	_, _ = s.do(http.MethodPost, "/api/quiz/answer", map[string]string{"answer": "am"})
	resp, _ = s.do(http.MethodPost, "/api/quiz/submit", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	// A second submit in the feedback state is rejected.
	resp, _ = s.do(http.MethodPost, "/api/quiz/submit", nil)
	s.Assert().Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *APISuite) TestQuizStartUnknownAssignment() {
	s.login("haru", "haru123")

	resp, _ := s.do(http.MethodPost, "/api/quiz/start",
		map[string]string{"title": "Unit 99", "date": "2026-08-01"})
	s.Assert().Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *APISuite) TestQuizJump() {
	s.login("haru", "haru123")

	_, _ = s.do(http.MethodPost, "/api/quiz/start",
		map[string]string{"title": "Unit 3", "date": "2026-08-01"})

	_, body := s.do(http.MethodPost, "/api/quiz/jump", map[string]int{"index": 1})
	s.Assert().Equal(float64(1), body["index"])
	s.Assert().Equal("in_progress", body["state"])
}

func (s *APISuite) TestLogoutEndsQuiz() {
	s.login("haru", "haru123")
	_, _ = s.do(http.MethodPost, "/api/quiz/start",
		map[string]string{"title": "Unit 3", "date": "2026-08-01"})

	resp, _ := s.do(http.MethodPost, "/api/logout", nil)
	s.Require().Equal(http.StatusNoContent, resp.StatusCode)

	resp, _ = s.do(http.MethodGet, "/api/quiz/", nil)
	s.Assert().Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *APISuite) TestShuffle() {
	s.login("teacher@example.com", "sensei")

	resp, body := s.do(http.MethodPost, "/api/shuffle",
		map[string]string{"correctAnswer": "This is a pen"})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	options, _ := body["options"].([]any)
	s.Assert().Len(options, 4)
}

func (s *APISuite) TestBadJSONBody() {
	s.login("haru", "haru123")

	req, err := http.NewRequest(http.MethodPost, s.server.URL+"/api/quiz/start",
		bytes.NewBufferString("{broken"))
	s.Require().NoError(err)
	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Assert().Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *APISuite) TestUpdateMissingRecordIsNoOp() {
	s.login("teacher@example.com", "sensei")

	resp, _ := s.do(http.MethodPut, "/api/collections/vocab/missing",
		map[string]any{"word": "Ghost"})
	s.Assert().Equal(http.StatusNoContent, resp.StatusCode)

	_, body := s.do(http.MethodGet, "/api/collections/vocab", nil)
	records, _ := body["records"].([]any)
	s.Assert().Len(records, 1)
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}
