package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nofs/internal/ai"
	"nofs/internal/config"
	"nofs/internal/game"
	"nofs/internal/task"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Default()
	cfg.MaxGames = 3
	app, err := NewApp(cfg, zerolog.Nop())
	require.NoError(t, err)
	return app
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeGame(t *testing.T, rec *httptest.ResponseRecorder) gameResponse {
	t.Helper()
	var resp gameResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func createGame(t *testing.T, h http.Handler, body map[string]any) gameResponse {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/api/games", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decodeGame(t, rec)
	require.NotEmpty(t, resp.ID)
	return resp
}

func TestCreateGame(t *testing.T) {
	h := newTestApp(t).Handler()
	resp := createGame(t, h, map[string]any{"mode": "week", "conditions": []string{"adhd"}})

	assert.Equal(t, game.ModeWeek, resp.State.Mode)
	assert.Equal(t, []string{"adhd"}, resp.State.Conditions)
	assert.Equal(t, 7, resp.State.DayLimit)
	assert.Len(t, resp.State.Hand, 6)
	assert.Len(t, resp.State.CurrentTasks, 2)
	assert.Equal(t, task.Morning, resp.State.Timeslot)
}

func TestCreateGame_Rejections(t *testing.T) {
	h := newTestApp(t).Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/games", map[string]any{"mode": "month"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/games", map[string]any{"mode": "day", "conditions": []string{"bogus"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/games", bytes.NewBufferString("{nope"))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateGame_CapsLiveGames(t *testing.T) {
	h := newTestApp(t).Handler()
	for i := 0; i < 3; i++ {
		createGame(t, h, map[string]any{"mode": "day"})
	}
	rec := doJSON(t, h, http.MethodPost, "/api/games", map[string]any{"mode": "day"})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestGetAndDeleteGame(t *testing.T) {
	h := newTestApp(t).Handler()
	created := createGame(t, h, map[string]any{"mode": "day"})

	rec := doJSON(t, h, http.MethodGet, "/api/games/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.ID, decodeGame(t, rec).ID)

	rec = doJSON(t, h, http.MethodDelete, "/api/games/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/games/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestActions_SelectAndEndTurn(t *testing.T) {
	h := newTestApp(t).Handler()
	created := createGame(t, h, map[string]any{"mode": "week", "seed": 5})

	rec := doJSON(t, h, http.MethodPost, "/api/games/"+created.ID+"/actions",
		map[string]any{"action": "selectCard", "index": 0})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int{0}, decodeGame(t, rec).State.SelectedCards)

	rec = doJSON(t, h, http.MethodPost, "/api/games/"+created.ID+"/actions",
		map[string]any{"action": "clearSelections"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeGame(t, rec).State.SelectedCards)

	rec = doJSON(t, h, http.MethodPost, "/api/games/"+created.ID+"/actions",
		map[string]any{"action": "endTurn"})
	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeGame(t, rec).State
	assert.Equal(t, 2, state.Turn)
	assert.Equal(t, 2, state.Stress, "two unresolved tasks linger")
}

func TestActions_EngineRejectionIsStill200(t *testing.T) {
	h := newTestApp(t).Handler()
	created := createGame(t, h, map[string]any{"mode": "day", "seed": 1})

	// An in-game rule rejection is reported through the message, not an
	// HTTP error.
	rec := doJSON(t, h, http.MethodPost, "/api/games/"+created.ID+"/actions",
		map[string]any{"action": "attemptTask"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Select a task first.", decodeGame(t, rec).State.Message)
}

func TestActions_Rejections(t *testing.T) {
	h := newTestApp(t).Handler()
	created := createGame(t, h, map[string]any{"mode": "day"})

	rec := doJSON(t, h, http.MethodPost, "/api/games/"+created.ID+"/actions",
		map[string]any{"action": "levitate"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/games/"+created.ID+"/actions",
		map[string]any{"action": "selectCard"})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "selectCard without index")

	rec = doJSON(t, h, http.MethodPost, "/api/games/no-such-id/actions",
		map[string]any{"action": "endTurn"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTaskCost(t *testing.T) {
	h := newTestApp(t).Handler()
	created := createGame(t, h, map[string]any{
		"mode": "week", "conditions": []string{"depression"}, "seed": 4,
	})

	rec := doJSON(t, h, http.MethodGet, "/api/games/"+created.ID+"/cost/0", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp costResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.TaskIndex)
	assert.Equal(t, created.State.CurrentTasks[0].Name, resp.Name)
	assert.Equal(t, created.State.CurrentTasks[0].Cost, resp.Base)
	assert.Equal(t, created.State.ModifiedCosts[0], resp.Modified)
}

func TestTaskCost_Rejections(t *testing.T) {
	h := newTestApp(t).Handler()
	created := createGame(t, h, map[string]any{"mode": "day"})

	rec := doJSON(t, h, http.MethodGet, "/api/games/"+created.ID+"/cost/9", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/games/"+created.ID+"/cost/first", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/games/no-such-id/cost/0", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAIStep(t *testing.T) {
	h := newTestApp(t).Handler()
	created := createGame(t, h, map[string]any{"mode": "week", "seed": 9})

	rec := doJSON(t, h, http.MethodPost, "/api/games/"+created.ID+"/ai-step",
		map[string]any{"strategy": "balanced"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ID    string        `json:"id"`
		Move  ai.Move       `json:"move"`
		State game.Snapshot `json:"state"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, created.ID, resp.ID)
	assert.NotEmpty(t, resp.Move.Action)

	rec = doJSON(t, h, http.MethodPost, "/api/games/"+created.ID+"/ai-step",
		map[string]any{"strategy": "yolo"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStaticEndpoints(t *testing.T) {
	h := newTestApp(t).Handler()

	rec := doJSON(t, h, http.MethodGet, "/api/catalog", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var tasks []task.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	assert.Len(t, tasks, 30)

	rec = doJSON(t, h, http.MethodGet, "/api/conditions", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/strategies", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var names []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &names))
	assert.Contains(t, names, "balanced")

	rec = doJSON(t, h, http.MethodGet, "/api/routes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var routes []RouteDoc
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &routes))
	assert.NotEmpty(t, routes)
}

func TestRouteRegistry_DocumentsEveryRoute(t *testing.T) {
	h := newTestApp(t).Handler()
	rec := doJSON(t, h, http.MethodGet, "/api/routes", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var routes []RouteDoc
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &routes))

	methods := map[string]string{}
	for _, rt := range routes {
		methods[rt.Pattern] = rt.Method
	}
	assert.Equal(t, "POST", methods["/api/games"])
	assert.Equal(t, "GET", methods["/api/games/{id}/cost/{task}"])
	assert.Equal(t, "POST", methods["/api/games/{id}/actions"])
	assert.Equal(t, "GET", methods["/api/routes"])
}

func TestSeededGamesAreReproducible(t *testing.T) {
	h := newTestApp(t).Handler()
	a := createGame(t, h, map[string]any{"mode": "week", "seed": 123})
	b := createGame(t, h, map[string]any{"mode": "week", "seed": 123})
	assert.Equal(t, a.State.Hand, b.State.Hand)
	assert.Equal(t, a.State.CurrentTasks, b.State.CurrentTasks)
}

func TestRequestIDHeader(t *testing.T) {
	h := newTestApp(t).Handler()
	rec := doJSON(t, h, http.MethodGet, "/api/strategies", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"), "middleware stamps every response")
}
