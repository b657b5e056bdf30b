package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed rapidapidata
var rapidapidata embed.FS

type FakeRapidAPIServer struct {
	s *httptest.Server
}

func NewFakeRapidAPIServer() *FakeRapidAPIServer {
	r := chi.NewRouter()
	r.Get("/games", gamesHandler)

	return &FakeRapidAPIServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeRapidAPIServer) Close() {
	f.s.Close()
}

func (f *FakeRapidAPIServer) URL() string {
	return f.s.URL
}

func gamesHandler(w http.ResponseWriter, r *http.Request) {
	league := r.URL.Query().Get("league")
	season := r.URL.Query().Get("season")

	if league == "1" && season == "2025" {
		serveFile(w, "games_2025.json")
	} else {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"response":[]}`))
	}
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := rapidapidata.ReadFile(fmt.Sprintf("rapidapidata/%s", name))
	if err != nil {
		log.Printf("error reading rapidapidata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
