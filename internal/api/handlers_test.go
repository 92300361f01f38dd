package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"clipnotes/internal/mocks"
	"clipnotes/internal/model"
	"clipnotes/internal/pipeline"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

const testLink = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*gin.Engine, *mocks.MockSummarizationRepository, *mocks.MockRunner) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSummarizationRepository(ctrl)
	runner := mocks.NewMockRunner(ctrl)

	r := gin.New()
	RegisterRoutes(r, NewHandlers(repo, runner))
	return r, repo, runner
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func testRecord() *model.Summarization {
	return &model.Summarization{
		ID:         uuid.New(),
		Title:      "Go talk",
		Link:       testLink,
		StartAt:    10,
		EndAt:      25,
		Transcript: "hello world",
		Summary:    "- greeting",
	}
}

func TestCreateSummarization(t *testing.T) {
	r, repo, runner := newTestServer(t)
	rec := testRecord()

	runner.EXPECT().
		Run(gomock.Any(), pipeline.Input{Title: "Go talk", Link: testLink, StartAt: 10, EndAt: 25}).
		Return(rec, nil)
	repo.EXPECT().Create(gomock.Any(), rec).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/summarization", gin.H{
		"title":   "Go talk",
		"link":    testLink,
		"startAt": 10,
		"endAt":   25,
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body)
	}
}

func TestCreateSummarizationMissingField(t *testing.T) {
	r, _, _ := newTestServer(t)

	// No pipeline or repo expectations: binding rejects the body first.
	w := doJSON(t, r, http.MethodPost, "/summarization", gin.H{
		"title": "Go talk",
		"link":  testLink,
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body)
	}
}

func TestCreateSummarizationZeroStartAccepted(t *testing.T) {
	r, repo, runner := newTestServer(t)
	rec := testRecord()

	runner.EXPECT().
		Run(gomock.Any(), pipeline.Input{Title: "Go talk", Link: testLink, StartAt: 0, EndAt: 5}).
		Return(rec, nil)
	repo.EXPECT().Create(gomock.Any(), rec).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/summarization", gin.H{
		"title":   "Go talk",
		"link":    testLink,
		"startAt": 0,
		"endAt":   5,
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body)
	}
}

func TestCreateSummarizationValidationFailure(t *testing.T) {
	r, _, runner := newTestServer(t)

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, &pipeline.StageError{
		Stage: pipeline.StageValidating,
		Err:   &pipeline.ValidationError{Field: "endAt", Reason: "must be greater than startAt"},
	})

	w := doJSON(t, r, http.MethodPost, "/summarization", gin.H{
		"title":   "Go talk",
		"link":    testLink,
		"startAt": 25,
		"endAt":   10,
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body)
	}
}

func TestCreateSummarizationPipelineFailure(t *testing.T) {
	r, _, runner := newTestServer(t)

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, &pipeline.StageError{
		Stage: pipeline.StageTranscribing,
		Err:   fmt.Errorf("service timeout"),
	})

	w := doJSON(t, r, http.MethodPost, "/summarization", gin.H{
		"title":   "Go talk",
		"link":    testLink,
		"startAt": 10,
		"endAt":   25,
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500: %s", w.Code, w.Body)
	}
}

func TestCreateSummarizationStoreFailure(t *testing.T) {
	r, repo, runner := newTestServer(t)
	rec := testRecord()

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(rec, nil)
	repo.EXPECT().Create(gomock.Any(), rec).Return(fmt.Errorf("connection refused"))

	w := doJSON(t, r, http.MethodPost, "/summarization", gin.H{
		"title":   "Go talk",
		"link":    testLink,
		"startAt": 10,
		"endAt":   25,
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500: %s", w.Code, w.Body)
	}
}

func TestListSummarizations(t *testing.T) {
	r, repo, _ := newTestServer(t)
	rec := testRecord()

	repo.EXPECT().List(gomock.Any(), "").Return([]model.Summarization{*rec}, nil)

	w := doJSON(t, r, http.MethodGet, "/summarization", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body)
	}

	var got []model.Summarization
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != rec.ID || got[0].Transcript != "hello world" {
		t.Errorf("list = %+v, want the stored record", got)
	}
}

func TestListSummarizationsSearchFilter(t *testing.T) {
	r, repo, _ := newTestServer(t)

	repo.EXPECT().List(gomock.Any(), "go").Return(nil, nil)

	w := doJSON(t, r, http.MethodGet, "/summarization?search=go", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body)
	}
	// nil from the repository must serialize as [] not null
	if body := w.Body.String(); body == "null" || body == "null\n" {
		t.Errorf("empty list serialized as %q", body)
	}
}

func TestUpdateSummarization(t *testing.T) {
	r, repo, runner := newTestServer(t)
	rec := testRecord()
	id := uuid.New()

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(rec, nil)
	repo.EXPECT().Update(gomock.Any(), id, rec).Return(nil)

	w := doJSON(t, r, http.MethodPut, "/summarization/"+id.String(), gin.H{
		"title":   "Go talk",
		"link":    testLink,
		"startAt": 10,
		"endAt":   25,
	})

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204: %s", w.Code, w.Body)
	}
}

func TestUpdateSummarizationBadID(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPut, "/summarization/not-a-uuid", gin.H{
		"title":   "Go talk",
		"link":    testLink,
		"startAt": 10,
		"endAt":   25,
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body)
	}
}

func TestDeleteSummarization(t *testing.T) {
	r, repo, _ := newTestServer(t)
	id := uuid.New()

	repo.EXPECT().Delete(gomock.Any(), id).Return(nil)

	w := doJSON(t, r, http.MethodDelete, "/summarization/"+id.String(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body)
	}
}

func TestDeleteSummarizationBadID(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodDelete, "/summarization/123", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body)
	}
}
