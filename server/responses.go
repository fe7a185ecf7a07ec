package server

import (
	"encoding/json"
	"net/http"

	"github.com/prachw/go-pos-gateway/session"
)

const contentTypeJSON = "application/json; charset=utf-8"

// Boundary messages. Deliberately generic: no raw error detail, no echo
// of caller input.
const (
	msgLoginSuccessful     = "Login successful"
	msgLogoutSuccessful    = "Logout successful"
	msgMissingCredentials  = "Username and Password are required"
	msgInvalidCredentials  = "Invalid username or password"
	msgUnauthorized        = "Unauthorized"
	msgInternalServerError = "Internal server error"
	msgBadGateway          = "Bad gateway"
)

type messageResponse struct {
	Message string `json:"message"`
}

type loginUser struct {
	Username string `json:"username"`
}

type loginResponse struct {
	Message string    `json:"message"`
	User    loginUser `json:"user"`
}

type protectedResponse struct {
	User  session.Payload `json:"user"`
	Token string          `json:"token"`
}

type healthResponse struct {
	Status string `json:"status"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}
