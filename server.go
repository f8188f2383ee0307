package railbot

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mumbailocal/railbot/config"
)

var server *http.Server

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
}

type healthResponse struct {
	Status       string `json:"status"`
	ScheduleRows int    `json:"schedule_rows"`
	Sessions     int    `json:"sessions"`
}

func handleChat(r *Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if req.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "POST required"})
			return
		}
		var in chatRequest
		if err := json.NewDecoder(req.Body).Decode(&in); err != nil || in.Message == "" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "message is required"})
			return
		}
		reply, sid := r.Respond(in.Message, in.SessionID)
		_ = json.NewEncoder(w).Encode(chatResponse{SessionID: sid, Reply: reply})
	}
}

func handleHealth(r *Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		rows := 0
		if r.Schedule != nil {
			rows = r.Schedule.Len()
		}
		_ = json.NewEncoder(w).Encode(healthResponse{
			Status:       "ok",
			ScheduleRows: rows,
			Sessions:     r.Sessions.Len(),
		})
	}
}

func StartServer(r *Responder) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", handleHealth(r))
	mux.HandleFunc("/api/chat", handleChat(r))

	addr := fmt.Sprintf(":%d", config.Config.Server.Port)
	server = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", addr)
}

func HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("server shutdown error: %v", err)
		} else {
			log.Printf("server shut down successfully")
		}
	}
}
