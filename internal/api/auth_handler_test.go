package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/quill-api/internal/domain"
	"github.com/phrazzld/quill-api/internal/mocks"
	"github.com/phrazzld/quill-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestSignup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		body           string
		setupStore     func(*mocks.MockUserStore)
		tokenErr       error
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			body: `{"username":"a","password":"p"}`,
			setupStore: func(s *mocks.MockUserStore) {
				s.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
					return u.Username == "a" && u.Password == "p"
				})).Return(nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"msg":"You are register successfully !!","jwt":"signed-token"}`,
		},
		{
			name:           "missing password",
			body:           `{"username":"a"}`,
			expectedStatus: StatusInvalidInput,
			expectedBody:   `{"msg":"Inputs are not correct!"}`,
		},
		{
			name:           "empty username",
			body:           `{"username":"","password":"p"}`,
			expectedStatus: StatusInvalidInput,
			expectedBody:   `{"msg":"Inputs are not correct!"}`,
		},
		{
			name:           "password too long",
			body:           `{"username":"a","password":"` + strings.Repeat("x", 73) + `"}`,
			expectedStatus: StatusInvalidInput,
			expectedBody:   `{"msg":"Inputs are not correct!"}`,
		},
		{
			// 41 runes, 82 bytes.
			name:           "multibyte password over 72 bytes",
			body:           `{"username":"a","password":"` + strings.Repeat("é", 41) + `"}`,
			expectedStatus: StatusInvalidInput,
			expectedBody:   `{"msg":"Inputs are not correct!"}`,
		},
		{
			name:           "wrong type",
			body:           `{"username":1,"password":"p"}`,
			expectedStatus: StatusInvalidInput,
			expectedBody:   `{"msg":"Inputs are not correct!"}`,
		},
		{
			name:           "empty body",
			body:           ``,
			expectedStatus: StatusInvalidInput,
			expectedBody:   `{"msg":"Inputs are not correct!"}`,
		},
		{
			name: "duplicate username",
			body: `{"username":"a","password":"p"}`,
			setupStore: func(s *mocks.MockUserStore) {
				s.On("Create", mock.Anything, mock.Anything).Return(store.ErrUsernameExists).Once()
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"error":"Error while signing up!!"}`,
		},
		{
			name: "store failure",
			body: `{"username":"a","password":"p"}`,
			setupStore: func(s *mocks.MockUserStore) {
				s.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"error":"Error while signing up!!"}`,
		},
		{
			name: "token failure",
			body: `{"username":"a","password":"p"}`,
			setupStore: func(s *mocks.MockUserStore) {
				s.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
			},
			tokenErr:       errors.New("sign failed"),
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"error":"Error while signing up!!"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			users := new(mocks.MockUserStore)
			if tc.setupStore != nil {
				tc.setupStore(users)
			}
			jwtService := &mocks.MockJWTService{Token: "signed-token", Err: tc.tokenErr}
			h := NewAuthHandler(users, jwtService, &mocks.MockPasswordVerifier{}, nil)

			w := postJSON(t, h.Signup, tc.body)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
			users.AssertExpectations(t)
			if tc.setupStore == nil {
				users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestSignup_TokenCarriesNewUserID(t *testing.T) {
	t.Parallel()

	var created uuid.UUID
	users := new(mocks.MockUserStore)
	users.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*domain.User).ID
	}).Return(nil).Once()

	var tokenFor uuid.UUID
	jwtService := &mocks.MockJWTService{
		GenerateTokenFn: func(ctx context.Context, userID uuid.UUID) (string, error) {
			tokenFor = userID
			return "t", nil
		},
	}

	h := NewAuthHandler(users, jwtService, &mocks.MockPasswordVerifier{}, nil)
	w := postJSON(t, h.Signup, `{"username":"a","password":"p"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEqual(t, uuid.Nil, created)
	assert.Equal(t, created, tokenFor)
}

func TestSignin(t *testing.T) {
	t.Parallel()

	stored := &domain.User{ID: uuid.New(), Username: "a", HashedPassword: "$2a$10$hash"}

	tests := []struct {
		name           string
		body           string
		setupStore     func(*mocks.MockUserStore)
		passwordOK     bool
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			body: `{"username":"a","password":"p"}`,
			setupStore: func(s *mocks.MockUserStore) {
				s.On("GetByUsername", mock.Anything, "a").Return(stored, nil).Once()
			},
			passwordOK:     true,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"msg":"You are successfully log in !!","jwt":"signed-token"}`,
		},
		{
			name: "unknown user",
			body: `{"username":"nobody","password":"p"}`,
			setupStore: func(s *mocks.MockUserStore) {
				s.On("GetByUsername", mock.Anything, "nobody").Return(nil, store.ErrUserNotFound).Once()
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"msg":"User doesn't exist !!"}`,
		},
		{
			name: "wrong password",
			body: `{"username":"a","password":"wrong"}`,
			setupStore: func(s *mocks.MockUserStore) {
				s.On("GetByUsername", mock.Anything, "a").Return(stored, nil).Once()
			},
			passwordOK:     false,
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"msg":"User doesn't exist !!"}`,
		},
		{
			name: "store failure",
			body: `{"username":"a","password":"p"}`,
			setupStore: func(s *mocks.MockUserStore) {
				s.On("GetByUsername", mock.Anything, "a").Return(nil, errors.New("db down")).Once()
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"error":"Error while signin !!"}`,
		},
		{
			name:           "invalid body",
			body:           `{"username":"a"}`,
			expectedStatus: StatusInvalidInput,
			expectedBody:   `{"msg":"Inputs are not correct!"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			users := new(mocks.MockUserStore)
			if tc.setupStore != nil {
				tc.setupStore(users)
			}
			h := NewAuthHandler(users, &mocks.MockJWTService{Token: "signed-token"},
				&mocks.MockPasswordVerifier{ShouldSucceed: tc.passwordOK}, nil)

			w := postJSON(t, h.Signin, tc.body)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
			users.AssertExpectations(t)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tc.expectedStatus != http.StatusOK {
				assert.NotContains(t, body, "jwt")
			}
		})
	}
}

func TestSignin_ComparesAgainstStoredHash(t *testing.T) {
	t.Parallel()

	stored := &domain.User{ID: uuid.New(), Username: "a", HashedPassword: "$2a$10$stored"}
	users := new(mocks.MockUserStore)
	users.On("GetByUsername", mock.Anything, "a").Return(stored, nil).Once()
	verifier := &mocks.MockPasswordVerifier{ShouldSucceed: true}

	h := NewAuthHandler(users, &mocks.MockJWTService{Token: "t"}, verifier, nil)
	postJSON(t, h.Signin, `{"username":"a","password":"secret-pw"}`)

	calls := verifier.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "$2a$10$stored", calls[0].HashedPassword)
	assert.Equal(t, "secret-pw", calls[0].Password)
}
