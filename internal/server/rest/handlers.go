package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/queueflex/auth-service/internal/common"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

type signupResponse struct {
	UserID  int64  `json:"user_id"`
	Message string `json:"message"`
	IsAdmin bool   `json:"is_admin"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"user_id"`
	Admin  bool   `json:"admin"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *RESTServer) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Signup handles POST /signup. The response never contains the password
// hash or a token: registration does not log the user in.
func (s *RESTServer) Signup(w http.ResponseWriter, r *http.Request) {

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
		return
	}

	user, err := s.users.Signup(r.Context(), req.Name, req.Email, req.Password, req.IsAdmin)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Email and password required"})
		case errors.Is(err, common.ErrEmailExists):
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Email already registered"})
		default:
			s.logger.Error(r.Context(), "signup failed", "error", err.Error())
			writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
		}
		return
	}

	s.logger.Info(r.Context(), "user registered", "user_id", user.ID)

	writeJSON(w, http.StatusOK, signupResponse{
		UserID:  user.ID,
		Message: "User registered successfully",
		IsAdmin: user.IsAdmin,
	})
}

// Login handles POST /login. Unknown email and wrong password keep their
// distinct status codes (404/403) for compatibility with existing clients.
func (s *RESTServer) Login(w http.ResponseWriter, r *http.Request) {

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
		return
	}

	token, user, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			writeJSON(w, http.StatusNotFound, messageResponse{Message: "User not found"})
		case errors.Is(err, common.ErrIncorrectPassword):
			writeJSON(w, http.StatusForbidden, messageResponse{Message: "Incorrect password"})
		default:
			s.logger.Error(r.Context(), "login failed", "error", err.Error())
			writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
		}
		return
	}

	s.logger.Info(r.Context(), "login succeeded", "user_id", user.ID, "admin", user.IsAdmin)

	writeJSON(w, http.StatusOK, loginResponse{
		Token:  token,
		UserID: user.ID,
		Admin:  user.IsAdmin,
	})
}
