package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/quill-api/internal/api/shared"
	"github.com/phrazzld/quill-api/internal/domain"
	"github.com/phrazzld/quill-api/internal/platform/logger"
	"github.com/phrazzld/quill-api/internal/service/auth"
	"github.com/phrazzld/quill-api/internal/store"
)

// AuthHandler handles signup and signin.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	logger           *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		logger:           logger.With(slog.String("component", "auth_handler")),
	}
}

// Signup registers a user and returns a token for it.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req SignupRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := domain.NewUser(req.Username, req.Password)
	if err != nil {
		shared.RespondWithMessageAndLog(w, r, StatusInvalidInput, MsgInvalidInput, err)
		return
	}

	if err := h.userStore.Create(r.Context(), user); err != nil {
		opts := []shared.ResponseOption{}
		if errors.Is(err, store.ErrUsernameExists) {
			opts = append(opts, shared.WithElevatedLogLevel())
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusForbidden, MsgSignupFailed, err, opts...)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusForbidden, MsgSignupFailed, err)
		return
	}

	log.Info("user signed up", slog.String("user_id", user.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{Msg: MsgSignupSuccess, JWT: token})
}

// Signin checks credentials and returns a fresh token.
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req SigninRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.userStore.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithMessageAndLog(w, r, http.StatusForbidden, MsgUserNotFound, err)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusForbidden, MsgSigninFailed, err)
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		// Indistinguishable from an unknown username.
		shared.RespondWithMessageAndLog(w, r, http.StatusForbidden, MsgUserNotFound, err,
			shared.WithElevatedLogLevel())
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusForbidden, MsgSigninFailed, err)
		return
	}

	log.Debug("user signed in", slog.String("user_id", user.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{Msg: MsgSigninSuccess, JWT: token})
}
