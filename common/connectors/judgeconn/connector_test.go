package judgeconn

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srujandivakar/DCode/common/config"
)

func TestSubmitBatchWire(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/submissions/batch", r.URL.Path)
		assert.Equal(t, "false", r.URL.Query().Get("base64_encoded"))
		assert.Equal(t, "false", r.URL.Query().Get("wait"))
		assert.Equal(t, "secret", r.Header.Get("X-Auth-Token"))

		var body struct {
			Submissions []Job `json:"submissions"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Submissions, 2)
		assert.Equal(t, "print(1)", body.Submissions[0].SourceCode)
		assert.Equal(t, 71, body.Submissions[0].LanguageID)
		assert.Equal(t, "in-1", body.Submissions[1].Stdin)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]string{{"token": "aa"}, {"token": "bb"}})
	}))
	defer server.Close()

	c := NewConnector(config.JudgeConfig{Address: server.URL, AuthToken: "secret"})
	tokens, err := c.SubmitBatch(context.Background(), []Job{
		{SourceCode: "print(1)", LanguageID: 71, Stdin: "in-0"},
		{SourceCode: "print(1)", LanguageID: 71, Stdin: "in-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, []Token{"aa", "bb"}, tokens)
}

func TestPollOnceWire(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/submissions/batch", r.URL.Path)
		assert.Equal(t, "aa,bb", r.URL.Query().Get("tokens"))
		assert.Equal(t, pollFields, r.URL.Query().Get("fields"))

		w.Header().Set("Content-Type", "application/json")
		// Response order deliberately differs from request order.
		w.Write([]byte(`{"submissions":[
			{"token":"bb","stdout":"2\n","status":{"id":3,"description":"Accepted"},"time":"0.02","memory":512},
			{"token":"aa","status":{"id":2,"description":"Processing"}}
		]}`))
	}))
	defer server.Close()

	c := NewConnector(config.JudgeConfig{Address: server.URL})
	statuses, err := c.PollOnce(context.Background(), []Token{"aa", "bb"})
	require.NoError(t, err)
	require.Len(t, statuses, 2)

	assert.Equal(t, 2, statuses["aa"].Status.ID)
	assert.Nil(t, statuses["aa"].Stdout)

	bb := statuses["bb"]
	assert.Equal(t, 3, bb.Status.ID)
	require.NotNil(t, bb.Stdout)
	assert.Equal(t, "2\n", *bb.Stdout)
	require.NotNil(t, bb.Time)
	assert.Equal(t, "0.02", *bb.Time)
	require.NotNil(t, bb.Memory)
	assert.Equal(t, 512, *bb.Memory)
}

func TestJudgeTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "queue is full", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := NewConnector(config.JudgeConfig{Address: server.URL})
	_, err := c.SubmitBatch(context.Background(), []Job{{SourceCode: "x", LanguageID: 71}})
	require.Error(t, err)
}
