package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  *string `json:"name"  validate:"required"`
	Limit int     `json:"limit" validate:"gte=0"`
}

var errOddLimit = errors.New("limit must not be odd")

type checkedRequest struct {
	Limit int `json:"limit" validate:"gte=0"`
}

func (c checkedRequest) Validate() error {
	if c.Limit%2 == 1 {
		return errOddLimit
	}
	return nil
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "valid", body: `{"name":"a","limit":1}`},
		{name: "empty body", body: ``, wantErr: ErrEmptyBody},
		{name: "wrong type", body: `{"name":5}`},
		{name: "not json", body: `name=a`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var v sampleRequest
			err := DecodeJSON(req, &v)

			switch {
			case tt.name == "valid":
				require.NoError(t, err)
				require.NotNil(t, v.Name)
				assert.Equal(t, "a", *v.Name)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateRequest(t *testing.T) {
	empty := ""

	assert.NoError(t, ValidateRequest(&sampleRequest{Name: &empty}), "present but empty passes required")
	assert.Error(t, ValidateRequest(&sampleRequest{}), "absent fails required")
	assert.Error(t, ValidateRequest(&sampleRequest{Name: &empty, Limit: -1}))

	assert.NoError(t, ValidateRequest(&checkedRequest{Limit: 2}))
	assert.ErrorIs(t, ValidateRequest(&checkedRequest{Limit: 3}), errOddLimit)
	assert.Error(t, ValidateRequest(&checkedRequest{Limit: -2}), "tags run before Validate")
}
