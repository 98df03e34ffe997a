package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"birrieria-admin/internal/router"
)

func TestHTTP_EndToEnd_AdminFlow(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	adminID := "admin-1"
	cocineraID := "cocinera-1"
	meseroID := "mesero-1"

	// 1) Primer perfil se registra sin admin (bootstrap)
	{
		st, body := doReq(t, ts.URL, "POST", "/api/v1/users", adminID, map[string]any{
			"id":           adminID,
			"email":        "olivia@birrieria.mx",
			"display_name": "Olivia",
			"role":         "admin",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 bootstrap admin, got %d body=%s", st, string(body))
		}
	}

	// 2) Admin registra empleados
	createUser(t, ts.URL, adminID, map[string]any{
		"id":           cocineraID,
		"email":        "ana@birrieria.mx",
		"display_name": "Ana Ruiz",
		"role":         "cocinero",
		"branch":       "Las Quintas",
		"phone_number": "6623581262",
	})
	createUser(t, ts.URL, adminID, map[string]any{
		"id":           meseroID,
		"email":        "pedro@birrieria.mx",
		"display_name": "Pedro Soto",
		"role":         "mesero",
		"branch":       "San Pedro",
	})

	// 3) Un no-admin ya no puede registrar perfiles
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/v1/users", cocineraID, map[string]any{
			"email":        "otro@birrieria.mx",
			"display_name": "Otro",
			"role":         "user",
		})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 creating user as non-admin, got %d", st)
		}
	}

	// 4) Siembra de feriados: 7 la primera vez, 0 al repetir
	{
		st, body := doReq(t, ts.URL, "POST", "/api/v1/events/holidays/seed?year=2025", adminID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 seeding holidays, got %d body=%s", st, string(body))
		}
		var resp struct {
			Created int `json:"created"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Created != 7 {
			t.Fatalf("expected 7 holidays created, got %d", resp.Created)
		}

		st, body = doReq(t, ts.URL, "POST", "/api/v1/events/holidays/seed?year=2025", adminID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 reseeding, got %d body=%s", st, string(body))
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Created != 0 {
			t.Fatalf("expected reseed to create 0, got %d", resp.Created)
		}
	}

	// 5) Admin crea minuta => agenda reunión de seguimiento
	{
		st, body := doReq(t, ts.URL, "POST", "/api/v1/minutas", adminID, map[string]any{
			"supervisor":        "Olivia",
			"branch":            "Las Quintas",
			"role":              "cocinero",
			"what_happened":     "Revisión de cocina",
			"expectations":      "Mejorar tiempos de salida",
			"next_meeting_date": "2025-03-17T09:30:00-07:00",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create minuta, got %d body=%s", st, string(body))
		}
		var resp struct {
			EventID string `json:"event_id"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.EventID == "" {
			t.Fatalf("create minuta: missing event_id body=%s", string(body))
		}
	}

	// 6) La cocinera de Las Quintas ve el seguimiento; el mesero de San Pedro no
	if got := countEvents(t, ts.URL, cocineraID, 2025); got != 8 {
		t.Fatalf("expected cocinera to see 8 events, got %d", got)
	}
	if got := countEvents(t, ts.URL, meseroID, 2025); got != 7 {
		t.Fatalf("expected mesero to see 7 events, got %d", got)
	}

	// 7) Un no-admin no puede crear minutas
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/v1/minutas", cocineraID, map[string]any{
			"supervisor":        "Ana",
			"branch":            "Las Quintas",
			"role":              "cocinero",
			"what_happened":     "x",
			"expectations":      "y",
			"next_meeting_date": "2025-04-01T09:00:00-07:00",
		})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 create minuta as non-admin, got %d", st)
		}
	}
}

func TestHTTP_EndToEnd_Documents(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	userID := "user-1"
	record := map[string]any{
		"employeeName":    "Ana Ruiz López",
		"position":        "COCINERA",
		"finiquitoAmount": "850",
		"finiquitoDate":   "2025-03-05T07:00:00Z",
	}

	// Generación: descarga con nombre de archivo
	{
		res := doRaw(t, ts.URL, "POST", "/api/v1/documents/finiquito/generate", userID, record)
		defer res.Body.Close()
		if res.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(res.Body)
			t.Fatalf("expected 200 generating finiquito, got %d body=%s", res.StatusCode, string(body))
		}
		cd := res.Header.Get("Content-Disposition")
		if !strings.Contains(cd, "Carta_Finiquito_Ana_Ruiz_López") {
			t.Fatalf("unexpected Content-Disposition: %q", cd)
		}
	}

	// Campos requeridos faltantes => 422 con lista de campos
	{
		st, body := doReq(t, ts.URL, "POST", "/api/v1/documents/finiquito/generate", userID, map[string]any{
			"employeeName": "Ana Ruiz López",
		})
		if st != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 for missing fields, got %d body=%s", st, string(body))
		}
		var resp struct {
			Fields []string `json:"fields"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.Fields) == 0 {
			t.Fatalf("expected missing field list, body=%s", string(body))
		}
	}

	// Tipo desconocido => 404
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/v1/documents/poliza/generate", userID, record)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for unknown type, got %d", st)
		}
	}

	// Borrador: guardar y recuperar
	{
		st, body := doReq(t, ts.URL, "POST", "/api/v1/documents/finiquito/drafts", userID, map[string]any{
			"employeeName": "Ana Ruiz López",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 saving draft, got %d body=%s", st, string(body))
		}
		var resp struct {
			ID string `json:"id"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.ID == "" {
			t.Fatalf("save draft: missing id body=%s", string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/api/v1/documents/finiquito/drafts/"+resp.ID, userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 fetching draft, got %d body=%s", st, string(body))
		}
	}

	// Borradores requieren identidad
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/v1/documents/finiquito/drafts", "", map[string]any{})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 saving draft without identity, got %d", st)
		}
	}
}

func createUser(t *testing.T, baseURL, adminID string, payload map[string]any) {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/v1/users", adminID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create user, got %d body=%s", st, string(body))
	}
}

func countEvents(t *testing.T, baseURL, userID string, year int) int {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", fmt.Sprintf("/api/v1/events?year=%d", year), userID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 listing events, got %d body=%s", st, string(body))
	}
	var resp []json.RawMessage
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode events: %v body=%s", err, string(body))
	}
	return len(resp)
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	res := doRaw(t, baseURL, method, path, debugUserID, body)
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

func doRaw(t *testing.T, baseURL, method, path, debugUserID string, body any) *http.Response {
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
	return res
}
