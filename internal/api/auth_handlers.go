package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

type RegisterRequest struct {
	Login    string `json:"login" example:"jkowalski"`
	Password string `json:"password" example:"Haslo1234"`
}

type LoginRequest struct {
	Login    string `json:"login" example:"jkowalski"`
	Password string `json:"password" example:"Haslo1234"`
}

type UserResponse struct {
	ID    string `json:"id" example:"kK9xRr2tYwq4mN7pLs3vBd1c"`
	Login string `json:"login" example:"jkowalski"`
}

type TokenResponse struct {
	Token     string    `json:"token" example:"V1StGXR8_Z5jdHi6B-myT78q_Z5j"`
	ExpiresAt time.Time `json:"expires_at"`
}

// @Summary      Registers a new user
// @Description  Creates a user account together with its root folder. The login must be at least 4 alphanumeric characters, the password at least 8 with a lowercase letter, an uppercase letter and a digit.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        registerRequest   body      RegisterRequest  true  "New account credentials"
// @Success      201               {object}  UserResponse
// @Failure      400               {string}  string "Invalid request body or credentials"
// @Failure      409               {string}  string "Login already taken"
// @Failure      500               {string}  string "Internal Server Error"
// @Router       /auth/register [post]
func (s *Server) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := s.auth.Register(r.Context(), req.Login, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	s.recordEvent(r.Context(), user.ID, "user_registered", map[string]string{"login": user.Login})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(UserResponse{ID: user.ID, Login: user.Login})
}

// @Summary      Logs a user in
// @Description  Authenticates the credentials and returns a session token valid for 48 hours.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        loginRequest   body      LoginRequest  true  "Login Credentials"
// @Success      200            {object}  TokenResponse
// @Failure      400            {string}  string "Invalid request body"
// @Failure      401            {string}  string "Invalid login or password"
// @Failure      500            {string}  string "Internal Server Error"
// @Router       /auth/login [post]
func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	session, err := s.auth.Authenticate(r.Context(), req.Login, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(TokenResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	})
}

// @Summary      Logs a user out
// @Description  Invalidates the session token carried in the Authorization header. Logging out an unknown token still succeeds.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      204  {string}  string "No Content"
// @Failure      401  {string}  string "Authorization header required"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /auth/logout [post]
func (s *Server) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	// Logout nie przechodzi przez AuthMiddleware: wygasly token tez ma sie
	// dac wylogowac.
	authHeader := r.Header.Get("Authorization")
	headerParts := strings.Split(authHeader, " ")
	if len(headerParts) != 2 || headerParts[0] != "Bearer" {
		http.Error(w, "Authorization header required", http.StatusUnauthorized)
		return
	}

	if err := s.auth.Logout(r.Context(), headerParts[1]); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
