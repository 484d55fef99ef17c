package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ratel-online/deal/record"
	"github.com/ratel-online/deal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type response struct {
	Message    string          `json:"message"`
	StatusCode int             `json:"status_code"`
	Data       json.RawMessage `json:"data"`
}

func get(t *testing.T, router *gin.Engine, path string) (int, response) {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	var body response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder.Code, body
}

func TestRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	results := record.NewMemory()
	require.NoError(t, results.Record(context.Background(), record.Result{GameID: "g1", Winner: "alice", Players: []string{"alice", "bob"}, Rounds: 9}))
	router := service.NewRouter(results)

	t.Run("health", func(t *testing.T) {
		code, body := get(t, router, "/health")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, http.StatusOK, body.StatusCode)
	})

	t.Run("rooms", func(t *testing.T) {
		code, body := get(t, router, "/rooms")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "ok", body.Message)
	})

	t.Run("unknown_room", func(t *testing.T) {
		code, _ := get(t, router, "/rooms/987654")
		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("bad_room_id", func(t *testing.T) {
		code, _ := get(t, router, "/rooms/abc")
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("stats", func(t *testing.T) {
		code, body := get(t, router, "/stats/alice")
		require.Equal(t, http.StatusOK, code)
		var stats record.Stats
		require.NoError(t, json.Unmarshal(body.Data, &stats))
		assert.Equal(t, record.Stats{Name: "alice", Played: 1, Won: 1}, stats)
	})

	t.Run("results", func(t *testing.T) {
		code, body := get(t, router, "/results?limit=5")
		require.Equal(t, http.StatusOK, code)
		var list []record.Result
		require.NoError(t, json.Unmarshal(body.Data, &list))
		require.Len(t, list, 1)
		assert.Equal(t, "g1", list[0].GameID)
	})

	t.Run("bad_limit", func(t *testing.T) {
		code, _ := get(t, router, "/results?limit=none")
		assert.Equal(t, http.StatusBadRequest, code)
	})
}
