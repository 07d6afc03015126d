package api

import (
	"log"
	"net/http"

	"chmura-plikow/internal/websocket"
)

// ServeWsHandler upgrades the connection and attaches it to the hub. The
// session token comes in the "token" query parameter since browsers cannot
// set headers on websocket handshakes.
func (s *Server) ServeWsHandler(w http.ResponseWriter, r *http.Request) {
	tokenString := r.URL.Query().Get("token")
	if tokenString == "" {
		log.Println("WS connection attempt without token")
		http.Error(w, "Token required", http.StatusUnauthorized)
		return
	}

	userID, err := s.auth.Validate(r.Context(), tokenString)
	if err != nil {
		log.Printf("WS connection attempt with invalid token: %v", err)
		http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
		return
	}

	conn, err := websocket.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}

	client := websocket.NewClient(s.wsHub, conn, userID)
	s.wsHub.Register <- client

	go client.ReadPump()
	go client.WritePump()
}
