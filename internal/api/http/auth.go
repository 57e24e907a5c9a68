// internal/api/http/auth.go
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lexcard/lexcard-client/internal/account"
	"github.com/lexcard/lexcard-client/internal/storage"
)

func LoginHandler(svc *account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email      string `json:"email"`
			Password   string `json:"password"`
			RememberMe bool   `json:"rememberMe"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		u, err := svc.Login(r.Context(), prefsFrom(r), req.Email, req.Password, req.RememberMe)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(u)
	}
}

func RegisterHandler(svc *account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			DisplayName string `json:"displayName"`
			Email       string `json:"email"`
			Password    string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		u, err := svc.Register(r.Context(), prefsFrom(r), req.DisplayName, req.Email, req.Password)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(u)
	}
}

func LogoutHandler(svc *account.Service, sessions *storage.Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Logout(r.Context(), prefsFrom(r)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		sessions.End(sessionID(r.Context()))
		w.WriteHeader(http.StatusNoContent)
	}
}

func ProfileHandler(svc *account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.Profile(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(u)
	}
}

// SessionHandler reports whether the stored token still opens the
// backend. The SPA calls it on boot to decide login vs dashboard.
func SessionHandler(svc *account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.VerifySession(r.Context(), prefsFrom(r))
		if errors.Is(err, account.ErrNotLoggedIn) {
			_ = json.NewEncoder(w).Encode(map[string]bool{"active": false})
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]bool{"active": true})
	}
}

func ResetPasswordHandler(svc *account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email string `json:"email"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if err := svc.ResetPassword(r.Context(), req.Email); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ChangePasswordHandler(svc *account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Token       string `json:"token,omitempty"`
			NewPassword string `json:"newPassword"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		var err error
		if req.Token != "" {
			// password-reset flow, token from the emailed link
			err = svc.ChangePasswordWithToken(r.Context(), req.Token, req.NewPassword)
		} else {
			err = svc.ChangePassword(r.Context(), req.NewPassword)
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func VerifyEmailHandler(svc *account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Token string `json:"token"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if err := svc.VerifyEmail(r.Context(), req.Token); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
