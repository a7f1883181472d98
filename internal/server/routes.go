package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"spades-game/internal/database"
)

// ResultStore is the read side of the result history.
type ResultStore interface {
	GetAll() ([]database.GameResult, error)
	GetByID(id string) (database.GameResult, error)
	GetByPlayer(playerName string) ([]database.GameResult, error)
}

// NewMux serves /ws for spectators and, when store is set, the results API.
func NewMux(hub *Hub, store ResultStore) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ServeWs(hub, w, r)
	})
	if store != nil {
		HandleRoutes(mux, store)
	}
	return mux
}

func HandleRoutes(mux *http.ServeMux, store ResultStore) {
	mux.HandleFunc("GET /api/results/player/{name}", func(w http.ResponseWriter, r *http.Request) {
		GetResultsByPlayerHandler(store, w, r)
	})
	log.Println("Registered route: /api/results/player/{name}")

	mux.HandleFunc("GET /api/results/{id}", func(w http.ResponseWriter, r *http.Request) {
		GetResultHandler(store, w, r)
	})
	log.Println("Registered route: /api/results/{id}")

	mux.HandleFunc("GET /api/results", func(w http.ResponseWriter, r *http.Request) {
		GetResultsHandler(store, w, r)
	})
	log.Println("Registered route: /api/results")
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func GetResultsByPlayerHandler(store ResultStore, w http.ResponseWriter, r *http.Request) {
	player := r.PathValue("name")
	if player == "" {
		http.Error(w, "Player name is required", http.StatusBadRequest)
		return
	}

	results, err := store.GetByPlayer(player)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "No results found for player", http.StatusNotFound)
			return
		}
		log.Printf("Error fetching results for %s: %v", player, err)
		http.Error(w, "Failed to fetch results", http.StatusInternalServerError)
		return
	}
	writeJSON(w, results)
}

func GetResultHandler(store ResultStore, w http.ResponseWriter, r *http.Request) {
	result, err := store.GetByID(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Result not found", http.StatusNotFound)
			return
		}
		log.Printf("Error fetching result %s: %v", r.PathValue("id"), err)
		http.Error(w, "Failed to fetch result", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result)
}

func GetResultsHandler(store ResultStore, w http.ResponseWriter, r *http.Request) {
	results, err := store.GetAll()
	if err != nil {
		log.Printf("Error fetching results: %v", err)
		http.Error(w, "Failed to fetch results", http.StatusInternalServerError)
		return
	}
	if results == nil {
		results = []database.GameResult{}
	}
	writeJSON(w, results)
}
