package orchestrator

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(o *Orchestrator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/execute/:pid/:type", o.handleExecute)
	return router
}

func doExecute(router *gin.Engine, userID, pid, mode, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/execute/"+pid+"/"+mode, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleExecuteRun(t *testing.T) {
	cases := storedCases(2)
	f := newFixture(t, cases, nil, answersFor(cases))
	router := newTestRouter(f.orch)

	w := doExecute(router, "1", "1", "run", `{"source_code":"code","language":"Python"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OK   bool `json:"ok"`
		Data struct {
			Status    string            `json:"status"`
			TestCases []json.RawMessage `json:"testCases"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "Accepted", resp.Data.Status)
	assert.Len(t, resp.Data.TestCases, 2)
}

func TestHandleExecuteErrors(t *testing.T) {
	cases := storedCases(1)
	f := newFixture(t, cases, nil, answersFor(cases))
	router := newTestRouter(f.orch)

	var handlertests = []struct {
		name   string
		userID string
		pid    string
		mode   string
		body   string
		code   int
	}{
		{"missing user header", "", "1", "run", `{"source_code":"c","language":"Python"}`, http.StatusBadRequest},
		{"bad problem id", "1", "abc", "run", `{"source_code":"c","language":"Python"}`, http.StatusBadRequest},
		{"invalid execution type", "1", "1", "debug", `{"source_code":"c","language":"Python"}`, http.StatusBadRequest},
		{"missing source code", "1", "1", "run", `{"language":"Python"}`, http.StatusBadRequest},
		{"unknown language", "1", "1", "run", `{"source_code":"c","language":"Cobol"}`, http.StatusBadRequest},
		{"unknown problem", "1", "42", "run", `{"source_code":"c","language":"Python"}`, http.StatusNotFound},
	}
	for _, tt := range handlertests {
		t.Run(tt.name, func(t *testing.T) {
			w := doExecute(router, tt.userID, tt.pid, tt.mode, tt.body)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestHandleExecuteForbidden(t *testing.T) {
	cases := storedCases(1)
	f := newFixture(t, cases, nil, answersFor(cases))
	router := newTestRouter(f.orch)

	// User 2 exists but has no verified email.
	require.NoError(t, f.db.Exec(
		"INSERT INTO users (email, is_email_verified) VALUES (?, ?)", "x@example.com", false).Error)

	w := doExecute(router, "2", "1", "submit", `{"source_code":"c","language":"Python"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
