package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"tracker/src/schemas"
	"tracker/src/utils"

	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) PostToken(w http.ResponseWriter, r *http.Request) {
	var creds schemas.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return
	}

	user, err := h.UserRepo.GetByName(creds.Username)
	if err != nil {
		h.HandleErrors(w, utils.Unauthorized("invalid credentials"))
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		h.HandleErrors(w, utils.Unauthorized("invalid credentials"))
		return
	}

	_, tokenString, err := h.TokenAuth.Encode(map[string]interface{}{
		"sub":  fmt.Sprint(user.ID),
		"name": user.Name,
		"exp":  time.Now().Add(h.TokenTTL).Unix(),
	})
	if err != nil {
		h.HandleErrors(w, utils.InternalServerError("failed to issue token"))
		return
	}

	h.respond(w, r, &schemas.TokenResponse{
		Token:     tokenString,
		ExpiresIn: int(h.TokenTTL.Seconds()),
	}, http.StatusOK)
}
