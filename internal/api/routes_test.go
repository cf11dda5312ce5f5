package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/playpool/eightball/internal/config"
	"github.com/playpool/eightball/internal/game"
	"github.com/playpool/eightball/internal/session"
)

func setupRouter(t *testing.T) (*gin.Engine, *session.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{Environment: "development", TickRate: 60, MaxSessions: 2, WSSendBuffer: 8}
	ctx, cancel := context.WithCancel(context.Background())
	mgr := session.NewManager(ctx, cfg)
	t.Cleanup(func() {
		mgr.StopAll()
		cancel()
	})

	router := gin.New()
	SetupRoutes(router, mgr, cfg)
	return router, mgr
}

func do(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func createSession(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := do(router, http.MethodPost, "/api/v1/sessions")
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.ID == "" {
		t.Fatalf("create response %s: %v", w.Body.String(), err)
	}
	return resp.ID
}

func TestHealth(t *testing.T) {
	router, _ := setupRouter(t)
	w := do(router, http.MethodGet, "/api/v1/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestSessionLifecycle(t *testing.T) {
	router, mgr := setupRouter(t)
	id := createSession(t, router)

	w := do(router, http.MethodGet, "/api/v1/sessions/"+id)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	var snap game.Snapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatal(err)
	}
	if snap.Mode != game.ModeEightBall || len(snap.Pockets) != 6 {
		t.Errorf("mode=%s pockets=%d", snap.Mode, len(snap.Pockets))
	}

	w = do(router, http.MethodGet, "/api/v1/sessions")
	var list struct {
		Sessions []struct {
			ID string `json:"id"`
		} `json:"sessions"`
	}
	json.Unmarshal(w.Body.Bytes(), &list)
	if len(list.Sessions) != 1 || list.Sessions[0].ID != id {
		t.Errorf("list = %s", w.Body.String())
	}

	if w := do(router, http.MethodDelete, "/api/v1/sessions/"+id); w.Code != http.StatusNoContent {
		t.Errorf("delete status = %d", w.Code)
	}
	if mgr.Count() != 0 {
		t.Errorf("session not removed")
	}
	if w := do(router, http.MethodGet, "/api/v1/sessions/"+id); w.Code != http.StatusNotFound {
		t.Errorf("get after delete = %d", w.Code)
	}
	if w := do(router, http.MethodDelete, "/api/v1/sessions/"+id); w.Code != http.StatusNotFound {
		t.Errorf("second delete = %d", w.Code)
	}
}

func TestSessionLimit(t *testing.T) {
	router, _ := setupRouter(t)
	createSession(t, router)
	createSession(t, router)
	if w := do(router, http.MethodPost, "/api/v1/sessions"); w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

func TestScenarios(t *testing.T) {
	router, _ := setupRouter(t)

	w := do(router, http.MethodGet, "/api/v1/scenarios")
	var body struct {
		Scenarios []string `json:"scenarios"`
	}
	json.Unmarshal(w.Body.Bytes(), &body)
	if len(body.Scenarios) != len(game.ScenarioNames()) {
		t.Errorf("scenarios = %v", body.Scenarios)
	}

	id := createSession(t, router)
	if w := do(router, http.MethodPost, "/api/v1/sessions/"+id+"/scenario/walls"); w.Code != http.StatusAccepted {
		t.Errorf("load status = %d body=%s", w.Code, w.Body.String())
	}
	if w := do(router, http.MethodPost, "/api/v1/sessions/"+id+"/scenario/bogus"); w.Code != http.StatusNotFound {
		t.Errorf("unknown scenario status = %d", w.Code)
	}
	if w := do(router, http.MethodPost, "/api/v1/sessions/nope/scenario/walls"); w.Code != http.StatusNotFound {
		t.Errorf("unknown session status = %d", w.Code)
	}
}

func TestWebSocketUnknownSession(t *testing.T) {
	router, _ := setupRouter(t)
	if w := do(router, http.MethodGet, "/api/v1/sessions/nope/ws"); w.Code != http.StatusNotFound {
		t.Errorf("status = %d", w.Code)
	}
}
