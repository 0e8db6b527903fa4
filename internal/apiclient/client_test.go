package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Werneck0live/gestao-terceirizados/internal/models"
)

func TestClient_ListAndCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/funcoes":
			_, _ = io.WriteString(w, `[{"id":"f1","nome":"Porteiro","descricao":"x","cbo":"5174-10","created_at":"2025-03-10T12:00:00Z"}]`)
		case r.Method == http.MethodPost && r.URL.Path == "/api/funcoes":
			if r.Header.Get("Content-Type") != "application/json" {
				t.Errorf("content-type = %q", r.Header.Get("Content-Type"))
			}
			var in map[string]any
			_ = json.NewDecoder(r.Body).Decode(&in)
			in["id"] = "f2"
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(in)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c, err := New(srv.URL+"/", time.Second)
	if err != nil {
		t.Fatal(err)
	}

	var list []models.Funcao
	if err := c.List(context.Background(), models.KindFuncao, &list); err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Nome != "Porteiro" || list[0].ID != "f1" {
		t.Fatalf("list = %#v", list)
	}

	var created models.Funcao
	err = c.Create(context.Background(), models.KindFuncao, map[string]any{"nome": "Ronda", "descricao": "d", "cbo": "1"}, &created)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "f2" || created.Nome != "Ronda" {
		t.Fatalf("created = %#v", created)
	}
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"error":"cnpj is required"}`)
	}))
	defer srv.Close()

	c, _ := New(srv.URL, time.Second)
	err := c.Create(context.Background(), models.KindEmpresa, map[string]string{}, nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v; want *APIError", err)
	}
	if apiErr.Status != http.StatusUnprocessableEntity || apiErr.Detail != "cnpj is required" {
		t.Fatalf("apiErr = %#v", apiErr)
	}
}

// resposta com formato errado vira erro de decode, não registro vazio
func TestClient_ShapeMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"not":"a list"}`)
	}))
	defer srv.Close()

	c, _ := New(srv.URL, time.Second)
	var list []models.Empresa
	if err := c.List(context.Background(), models.KindEmpresa, &list); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestNew_MissingBase(t *testing.T) {
	if _, err := New("  ", 0); !errors.Is(err, ErrMissingBaseURL) {
		t.Fatalf("err = %v", err)
	}
}
