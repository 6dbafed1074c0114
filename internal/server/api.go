package server

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"nofs/internal/ai"
	"nofs/internal/condition"
	"nofs/internal/config"
	"nofs/internal/game"
	"nofs/internal/httpmw"
	"nofs/internal/task"
)

// App holds every live game behind one mutex. The engine assumes a
// single in-flight action per game, so all handlers serialize through
// it.
type App struct {
	mu       sync.Mutex
	games    map[string]*game.Game
	catalog  *task.Catalog
	condInfo map[condition.Condition]condition.Info
	maxGames int
	log      zerolog.Logger
}

func NewApp(cfg config.Config, log zerolog.Logger) (*App, error) {
	var (
		catalog *task.Catalog
		err     error
	)
	if cfg.CatalogPath != "" {
		catalog, err = task.LoadCatalog(cfg.CatalogPath)
	} else {
		catalog, err = task.DefaultCatalog()
	}
	if err != nil {
		return nil, err
	}

	condInfo, err := condition.LoadInfo()
	if err != nil {
		return nil, err
	}

	return &App{
		games:    map[string]*game.Game{},
		catalog:  catalog,
		condInfo: condInfo,
		maxGames: cfg.MaxGames,
		log:      log,
	}, nil
}

// Handler assembles the API behind the middleware chain.
func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()
	rr := &RouteRegistry{}
	a.register(mux, rr)
	return httpmw.Chain(mux,
		httpmw.WithRequestID,
		httpmw.WithRecover(a.log),
		httpmw.WithAccessLog(a.log),
	)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

type gameResponse struct {
	ID    string        `json:"id"`
	State game.Snapshot `json:"state"`
}

type costResponse struct {
	TaskIndex int       `json:"task_index"`
	Name      string    `json:"name"`
	Base      task.Cost `json:"base"`
	Modified  task.Cost `json:"modified"`
}

func (a *App) register(mux *http.ServeMux, rr *RouteRegistry) {
	rr.Register(mux, "POST /api/games", "Create a game", `{"mode":"week","conditions":["adhd"]}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Mode       string   `json:"mode"`
			Conditions []string `json:"conditions"`
			Seed       *int64   `json:"seed,omitempty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		mode, err := game.ParseMode(body.Mode)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		conds, err := condition.ParseSet(body.Conditions)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		opts := []game.Option{game.WithCatalog(a.catalog)}
		if body.Seed != nil {
			opts = append(opts, game.WithRand(rand.New(rand.NewSource(*body.Seed))))
		}

		a.mu.Lock()
		defer a.mu.Unlock()
		if len(a.games) >= a.maxGames {
			writeError(w, http.StatusTooManyRequests, "too many live games")
			return
		}
		g, err := game.New(mode, conds, opts...)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		id := uuid.NewString()
		a.games[id] = g
		a.log.Info().Str("game_id", id).Str("mode", string(mode)).Strs("conditions", body.Conditions).Msg("game created")
		writeJSON(w, gameResponse{ID: id, State: g.Snapshot()})
	})

	rr.Register(mux, "GET /api/games/{id}", "Get game state", "", func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		defer a.mu.Unlock()
		g, ok := a.games[r.PathValue("id")]
		if !ok {
			writeError(w, http.StatusNotFound, "game not found")
			return
		}
		writeJSON(w, gameResponse{ID: r.PathValue("id"), State: g.Snapshot()})
	})

	rr.Register(mux, "GET /api/games/{id}/cost/{task}", "Modified cost for a current task", "", func(w http.ResponseWriter, r *http.Request) {
		idx, err := strconv.Atoi(r.PathValue("task"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "task index must be an integer")
			return
		}

		a.mu.Lock()
		defer a.mu.Unlock()
		g, ok := a.games[r.PathValue("id")]
		if !ok {
			writeError(w, http.StatusNotFound, "game not found")
			return
		}
		tasks := g.CurrentTasks()
		if idx < 0 || idx >= len(tasks) {
			writeError(w, http.StatusNotFound, "no task at that position")
			return
		}
		writeJSON(w, costResponse{
			TaskIndex: idx,
			Name:      tasks[idx].Name,
			Base:      tasks[idx].Cost,
			Modified:  g.ModifiedCost(tasks[idx]),
		})
	})

	rr.Register(mux, "DELETE /api/games/{id}", "Abandon a game", "", func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		defer a.mu.Unlock()
		if _, ok := a.games[r.PathValue("id")]; !ok {
			writeError(w, http.StatusNotFound, "game not found")
			return
		}
		delete(a.games, r.PathValue("id"))
		writeJSON(w, map[string]bool{"deleted": true})
	})

	rr.Register(mux, "POST /api/games/{id}/actions", "Apply one action", `{"action":"selectCard","index":0}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Action string `json:"action"`
			Index  *int   `json:"index,omitempty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		a.mu.Lock()
		defer a.mu.Unlock()
		g, ok := a.games[r.PathValue("id")]
		if !ok {
			writeError(w, http.StatusNotFound, "game not found")
			return
		}

		switch body.Action {
		case "selectCard", "selectTask":
			if body.Index == nil {
				writeError(w, http.StatusBadRequest, body.Action+" needs an index")
				return
			}
			if body.Action == "selectCard" {
				g.SelectCard(*body.Index)
			} else {
				g.SelectTask(*body.Index)
			}
		case "attemptTask":
			g.AttemptTask()
		case "skipTask":
			g.SkipTask()
		case "useHyperfocus":
			g.UseHyperfocus()
		case "discardToDraw":
			g.DiscardToDraw()
		case "spendToRemoveStress":
			g.SpendToRemoveStress()
		case "endTurn":
			g.EndTurn()
		case "clearSelections":
			g.ClearSelections()
		default:
			writeError(w, http.StatusBadRequest, "unknown action: "+body.Action)
			return
		}
		writeJSON(w, gameResponse{ID: r.PathValue("id"), State: g.Snapshot()})
	})

	rr.Register(mux, "POST /api/games/{id}/ai-step", "Let a strategy play one move", `{"strategy":"balanced"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Strategy string `json:"strategy"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		strategy, err := ai.ByName(body.Strategy)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		a.mu.Lock()
		defer a.mu.Unlock()
		g, ok := a.games[r.PathValue("id")]
		if !ok {
			writeError(w, http.StatusNotFound, "game not found")
			return
		}
		move := strategy(g)
		ai.Apply(g, move)
		writeJSON(w, struct {
			ID    string        `json:"id"`
			Move  ai.Move       `json:"move"`
			State game.Snapshot `json:"state"`
		}{r.PathValue("id"), move, g.Snapshot()})
	})

	rr.Register(mux, "GET /api/catalog", "List the task catalog", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, a.catalog.Tasks)
	})

	rr.Register(mux, "GET /api/conditions", "List condition display text", "", func(w http.ResponseWriter, r *http.Request) {
		var out []condition.Info
		for _, c := range condition.All() {
			if info, ok := a.condInfo[c]; ok {
				out = append(out, info)
			}
		}
		writeJSON(w, out)
	})

	rr.Register(mux, "GET /api/strategies", "List AI strategies", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, ai.Names())
	})

	rr.Register(mux, "GET /api/routes", "List API routes", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, rr.List())
	})
}
