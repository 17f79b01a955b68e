package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pettabl/internal/platform/dateutil"
	"pettabl/internal/router"
)

func TestHTTP_EndToEnd_CareSessionFlow(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	ownerID := "owner-1"
	agentID := "agent-1"

	today := time.Now()
	yesterday := dateutil.DateKey(today.AddDate(0, 0, -1))
	tomorrow := dateutil.DateKey(today.AddDate(0, 0, 1))
	todayKey := dateutil.DateKey(today)

	// 1) Owner crea mascota
	petID := createPet(t, ts.URL, ownerID, map[string]any{
		"name":    "Milo",
		"species": "dog",
		"breed":   "mixed",
	})

	// 2) Owner configura horario: 2 slots
	{
		st, body := doReq(t, ts.URL, "PUT", "/pets/"+petID+"/schedule", ownerID, map[string]any{
			"slots": []map[string]any{
				{"activity_type": "feed", "time_period": "morning"},
				{"activity_type": "walk", "time_period": "evening"},
			},
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 put schedule, got %d body=%s", st, string(body))
		}
	}

	// 3) Owner crea sesión que cubre ayer..mañana (hoy está dentro)
	sessionID := createSession(t, ts.URL, ownerID, petID, yesterday, tomorrow)

	// 4) Agente NO puede ver el dashboard aún
	{
		st, _ := doReq(t, ts.URL, "GET", "/sessions/"+sessionID+"/dashboard", agentID, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 before assignment, got %d", st)
		}
	}

	// 5) Owner invita al agente
	assignmentID := inviteAgent(t, ts.URL, ownerID, sessionID, agentID)

	// 6) Agente ve su invitación
	{
		st, body := doReq(t, ts.URL, "GET", "/me/assignments", agentID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing my assignments, got %d body=%s", st, string(body))
		}
	}

	// 7) Agente acepta
	{
		st, body := doReq(t, ts.URL, "POST", "/agents/"+assignmentID+"/accept", agentID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 accept assignment, got %d body=%s", st, string(body))
		}
	}

	// 8) Agente ya puede ver la sesión y el dashboard
	{
		st, body := doReq(t, ts.URL, "GET", "/sessions/"+sessionID, agentID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get session by agent, got %d body=%s", st, string(body))
		}
		var resp struct {
			Status string `json:"status"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Status != "active" {
			t.Fatalf("expected active session (today in range), got %s", resp.Status)
		}
	}

	// 9) Dashboard inicial: hoy sin registros => none, 0/2
	{
		dash := getDashboard(t, ts.URL, agentID, sessionID)
		if dash.SlotCount != 2 {
			t.Fatalf("expected slot_count 2, got %d", dash.SlotCount)
		}
		if dash.Today.Count != 0 || dash.Today.Percent != 0 {
			t.Fatalf("expected 0 progress, got %+v", dash.Today)
		}
		if got := dayStatusOf(dash, todayKey); got != "none" {
			t.Fatalf("expected today none, got %s", got)
		}
		if got := dayStatusOf(dash, tomorrow); got != "future" {
			t.Fatalf("expected tomorrow future, got %s", got)
		}
	}

	// 10) Agente registra feed/morning hoy => partial, 1/2, 50%
	activityID := logActivity(t, ts.URL, agentID, sessionID, "feed", "morning", todayKey)
	{
		dash := getDashboard(t, ts.URL, agentID, sessionID)
		if dash.Today.Count != 1 || dash.Today.Percent != 50 {
			t.Fatalf("expected 1/2 (50%%), got %+v", dash.Today)
		}
		if got := dayStatusOf(dash, todayKey); got != "partial" {
			t.Fatalf("expected today partial, got %s", got)
		}
	}

	// 11) Registra walk/evening => complete, 2/2, 100%
	logActivity(t, ts.URL, agentID, sessionID, "walk", "evening", todayKey)
	{
		dash := getDashboard(t, ts.URL, agentID, sessionID)
		if dash.Today.Count != 2 || dash.Today.Percent != 100 {
			t.Fatalf("expected 2/2 (100%%), got %+v", dash.Today)
		}
		if got := dayStatusOf(dash, todayKey); got != "complete" {
			t.Fatalf("expected today complete, got %s", got)
		}
		for _, s := range dash.TodaySlots {
			if !s.Completed {
				t.Fatalf("expected all today slots completed, got %+v", dash.TodaySlots)
			}
		}
	}

	// 12) Desmarcar el feed => vuelve a partial
	{
		st, body := doReq(t, ts.URL, "DELETE", "/sessions/"+sessionID+"/activities/"+activityID, agentID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 unmark, got %d body=%s", st, string(body))
		}
		dash := getDashboard(t, ts.URL, agentID, sessionID)
		if got := dayStatusOf(dash, todayKey); got != "partial" {
			t.Fatalf("expected today partial after unmark, got %s", got)
		}
	}

	// 13) Owner revoca => agente pierde acceso al dashboard
	{
		st, body := doReq(t, ts.URL, "POST", "/agents/"+assignmentID+"/revoke", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 revoke, got %d body=%s", st, string(body))
		}
		st, _ = doReq(t, ts.URL, "GET", "/sessions/"+sessionID+"/dashboard", agentID, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 after revoke, got %d", st)
		}
	}

	// 14) El owner nunca pierde acceso
	{
		st, _ := doReq(t, ts.URL, "GET", "/sessions/"+sessionID+"/dashboard", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 dashboard for owner, got %d", st)
		}
	}
}

func TestHTTP_CreateSession_RejectsInvertedRange(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	ownerID := "owner-1"
	petID := createPet(t, ts.URL, ownerID, map[string]any{"name": "Milo", "species": "dog"})

	st, _ := doReq(t, ts.URL, "POST", "/pets/"+petID+"/sessions", ownerID, map[string]any{
		"start_date": "2024-06-15",
		"end_date":   "2024-06-10",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for inverted range, got %d", st)
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	res, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("health request: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 health, got %d", res.StatusCode)
	}
}

// -------------------------
// Helpers
// -------------------------

type dashboard struct {
	SlotCount int `json:"slot_count"`
	Today     struct {
		Count   int `json:"count"`
		Total   int `json:"total"`
		Percent int `json:"percent"`
	} `json:"today_progress"`
	Days []struct {
		Date   string `json:"date"`
		Status string `json:"status"`
	} `json:"days"`
	TodaySlots []struct {
		Activity  string `json:"activity_type"`
		Period    string `json:"time_period"`
		Completed bool   `json:"completed"`
	} `json:"today_slots"`
}

func getDashboard(t *testing.T, baseURL, userID, sessionID string) dashboard {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", "/sessions/"+sessionID+"/dashboard", userID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 dashboard, got %d body=%s", st, string(body))
	}
	var dash dashboard
	if err := json.Unmarshal(body, &dash); err != nil {
		t.Fatalf("dashboard unmarshal: %v body=%s", err, string(body))
	}
	return dash
}

func dayStatusOf(dash dashboard, date string) string {
	for _, d := range dash.Days {
		if d.Date == date {
			return d.Status
		}
	}
	return ""
}

func createPet(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create pet: missing id body=%s", string(body))
	}
	return resp.ID
}

func createSession(t *testing.T, baseURL, ownerID, petID, start, end string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets/"+petID+"/sessions", ownerID, map[string]any{
		"start_date": start,
		"end_date":   end,
		"notes":      "fin de semana",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create session, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create session: missing id body=%s", string(body))
	}
	return resp.ID
}

func inviteAgent(t *testing.T, baseURL, ownerID, sessionID, agentID string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/sessions/"+sessionID+"/agents", ownerID, map[string]any{
		"agent_user_id": agentID,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 invite agent, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("invite agent: missing id body=%s", string(body))
	}
	return resp.ID
}

func logActivity(t *testing.T, baseURL, userID, sessionID, activity, period, date string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/sessions/"+sessionID+"/activities", userID, map[string]any{
		"activity_type": activity,
		"time_period":   period,
		"date":          date,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 log activity, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("log activity: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
