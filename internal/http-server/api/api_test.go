package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"MentorMarket/impl/core"
	"MentorMarket/internal/config"
	repository "MentorMarket/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mentorRecord struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Expertise    interface{}   `json:"expertise"`
	Location     string        `json:"location"`
	Availability []interface{} `json:"availability"`
}

type registerResponse struct {
	Message string `json:"message"`
	mentorRecord
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	conf := &config.Config{}
	conf.Listen.Timeout = 5
	lg := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := core.New(lg)
	c.SetRepository(repository.NewMemoryStore())
	return NewRouter(conf, lg, c)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func register(t *testing.T, h http.Handler, body string) registerResponse {
	t.Helper()
	w := do(t, h, http.MethodPost, "/mentors", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp registerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestAdaScenario(t *testing.T) {
	h := newTestRouter(t)

	ada := register(t, h, `{"name":"Ada","expertise":"Systems","location":"Boston","availability":["Mon 9-10"]}`)
	require.NotEmpty(t, ada.ID)
	assert.Equal(t, "Mentor registered successfully!", ada.Message)
	assert.Equal(t, "Ada", ada.Name)
	assert.Equal(t, "Systems", ada.Expertise)
	assert.Equal(t, "Boston", ada.Location)
	assert.Equal(t, []interface{}{"Mon 9-10"}, ada.Availability)

	w := do(t, h, http.MethodGet, "/mentors/search?location=bos", "")
	require.Equal(t, http.StatusOK, w.Code)
	var found []mentorRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &found))
	assert.Contains(t, found, ada.mentorRecord)

	w = do(t, h, http.MethodGet, "/mentors/availability?id="+ada.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"availability":["Mon 9-10"]}`, w.Body.String())
}

func TestRegisterValidation(t *testing.T) {
	h := newTestRouter(t)

	for _, body := range []string{
		`{"expertise":"Systems","location":"Boston"}`,
		`{"name":"Ada","location":"Boston"}`,
		`{"name":"Ada","expertise":"Systems"}`,
		`{"name":"","expertise":"Systems","location":"Boston"}`,
		`{"name":"Ada","expertise":[],"location":"Boston"}`,
		`not json`,
	} {
		w := do(t, h, http.MethodPost, "/mentors", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		var resp errorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.NotEmpty(t, resp.Error)
	}

	w := do(t, h, http.MethodGet, "/mentors/search?location=boston", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestRegisterDefaultsAndDuplicates(t *testing.T) {
	h := newTestRouter(t)
	body := `{"name":"Ada","expertise":{"areas":["go","distributed"]},"location":"Boston"}`

	first := register(t, h, body)
	second := register(t, h, body)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotNil(t, first.Availability)
	assert.Empty(t, first.Availability)
	assert.Equal(t, map[string]interface{}{"areas": []interface{}{"go", "distributed"}}, first.Expertise)
}

func TestSearch(t *testing.T) {
	h := newTestRouter(t)
	a := register(t, h, `{"name":"A","expertise":"x","location":"Boston"}`)
	b := register(t, h, `{"name":"B","expertise":"x","location":"south BOSTON"}`)
	register(t, h, `{"name":"C","expertise":"x","location":"Austin"}`)

	for _, q := range []string{"bos", "BOSTON", "Ost"} {
		w := do(t, h, http.MethodGet, "/mentors/search?location="+url.QueryEscape(q), "")
		require.Equal(t, http.StatusOK, w.Code)
		var found []mentorRecord
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &found))
		assert.ElementsMatch(t, []mentorRecord{a.mentorRecord, b.mentorRecord}, found, q)
	}

	w := do(t, h, http.MethodGet, "/mentors/search?location=Denver", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	for _, target := range []string{"/mentors/search", "/mentors/search?location="} {
		w = do(t, h, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestAvailabilityErrors(t *testing.T) {
	h := newTestRouter(t)
	m := register(t, h, `{"name":"A","expertise":"x","location":"Boston"}`)

	w := do(t, h, http.MethodGet, "/mentors/availability?id="+m.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"availability":[]}`, w.Body.String())

	w = do(t, h, http.MethodGet, "/mentors/availability", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodGet, "/mentors/availability?id=xyz", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var malformed errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &malformed))

	w = do(t, h, http.MethodGet, "/mentors/availability?id=000000000000000000000000", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	var missing errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &missing))

	assert.NotEqual(t, malformed.Error, missing.Error)
}

func TestRoutingErrorsAndHealth(t *testing.T) {
	h := newTestRouter(t)

	w := do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = do(t, h, http.MethodGet, "/nowhere", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, h, http.MethodDelete, "/mentors/search", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
