package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/quill-api/internal/api/middleware"
	"github.com/phrazzld/quill-api/internal/api/shared"
	"github.com/phrazzld/quill-api/internal/domain"
)

// decodeAndValidate decodes the body into req and validates it. On failure it
// writes the 411 response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		shared.RespondWithMessageAndLog(w, r, StatusInvalidInput, MsgInvalidInput, err)
		return false
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithMessageAndLog(w, r, StatusInvalidInput, MsgInvalidInput, err)
		return false
	}
	return true
}

// requireUserID reads the caller set by the auth middleware. A missing caller
// means the route was mounted without the middleware; it is answered like any
// other authentication failure.
func requireUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithMessageAndLog(w, r, http.StatusForbidden, middleware.NotAuthenticatedMessage,
			domain.ErrUnauthorized)
		return uuid.Nil, false
	}
	return userID, true
}

// getPathUUID extracts and parses a UUID path parameter.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}
