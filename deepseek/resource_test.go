package deepseek

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSendRequestHeaders(t *testing.T) {
	var gotAuth, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(completionBody))
	}))
	defer srv.Close()

	resource := NewResource(srv.URL, "sk-secret", nil)
	if _, err := resource.SendRequest(context.Background(), RequestPayload{Messages: []Message{}}); err != nil {
		t.Fatalf("SendRequest() error = %v", err)
	}

	if gotAuth != "Bearer sk-secret" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer sk-secret")
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want %q", gotContentType, "application/json")
	}
}

func TestSendRequestHTTPError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error": {"message": "invalid api key"}}`},
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{"error": {"message": "rate limit"}}`},
		{name: "server error", status: http.StatusInternalServerError, body: "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			resource := NewResource(srv.URL, "sk-secret", nil)
			_, err := resource.SendRequest(context.Background(), RequestPayload{Messages: []Message{}})
			if err == nil {
				t.Fatal("SendRequest() error = nil, want HTTP failure")
			}
			if !strings.Contains(err.Error(), fmt.Sprintf("HTTP %d", tt.status)) {
				t.Errorf("error %q does not carry the status code", err)
			}
			if !strings.Contains(err.Error(), tt.body) {
				t.Errorf("error %q does not carry the response body", err)
			}
		})
	}
}

func TestSendRequestRetainsRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionBody))
	}))
	defer srv.Close()

	resource := NewResource(srv.URL, "sk-secret", nil)
	result, err := resource.SendRequest(context.Background(), RequestPayload{Messages: []Message{}})
	if err != nil {
		t.Fatalf("SendRequest() error = %v", err)
	}

	if string(result.Raw) != completionBody {
		t.Errorf("result.Raw = %q, want the unparsed response body", result.Raw)
	}
}

func TestListModels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != modelsPath {
			t.Errorf("path = %s, want %s", r.URL.Path, modelsPath)
		}
		w.Write([]byte(`{
			"object": "list",
			"data": [
				{"id": "deepseek-chat", "object": "model", "owned_by": "deepseek"},
				{"id": "deepseek-reasoner", "object": "model", "owned_by": "deepseek"}
			]
		}`))
	}))
	defer srv.Close()

	resource := NewResource(srv.URL, "sk-secret", nil)
	models, err := resource.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels() error = %v", err)
	}

	if len(models) != 2 {
		t.Fatalf("got %d models, want 2", len(models))
	}
	if models[0].ID != ModelChat {
		t.Errorf("models[0].ID = %q, want %q", models[0].ID, ModelChat)
	}
	if models[1].OwnedBy != "deepseek" {
		t.Errorf("models[1].OwnedBy = %q, want %q", models[1].OwnedBy, "deepseek")
	}
}

func TestGetBalance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != balancePath {
			t.Errorf("path = %s, want %s", r.URL.Path, balancePath)
		}
		w.Write([]byte(`{
			"is_available": true,
			"balance_infos": [
				{"currency": "USD", "total_balance": "12.50", "granted_balance": "2.50", "topped_up_balance": "10.00"}
			]
		}`))
	}))
	defer srv.Close()

	resource := NewResource(srv.URL, "sk-secret", nil)
	balance, err := resource.GetBalance(context.Background())
	if err != nil {
		t.Fatalf("GetBalance() error = %v", err)
	}

	if !balance.IsAvailable {
		t.Error("balance.IsAvailable = false, want true")
	}
	if len(balance.BalanceInfos) != 1 || balance.BalanceInfos[0].TotalBalance != "12.50" {
		t.Errorf("balance.BalanceInfos = %+v, want one USD entry of 12.50", balance.BalanceInfos)
	}
}
