package validator_test

import (
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atlas/shared/failure"
	"atlas/shared/validator"
)

type loginBody struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestValidate(t *testing.T) {
	t.Run("valid body passes", func(t *testing.T) {
		body := strings.NewReader(`{"email":"admin@example.com","password":"longenough"}`)

		req := loginBody{}
		err := validator.Validate(body, &req)

		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", req.Email)
	})

	t.Run("malformed JSON is a bad request", func(t *testing.T) {
		body := strings.NewReader(`{"email":`)

		req := loginBody{}
		err := validator.Validate(body, &req)

		var f *failure.Failure
		require.ErrorAs(t, err, &f)
		assert.Equal(t, http.StatusBadRequest, f.Code)
	})

	t.Run("failed rules are a bad request", func(t *testing.T) {
		body := strings.NewReader(`{"email":"not-an-email","password":"short"}`)

		req := loginBody{}
		err := validator.Validate(body, &req)

		var f *failure.Failure
		require.ErrorAs(t, err, &f)
		assert.Equal(t, http.StatusBadRequest, f.Code)
	})
}

func TestMimetypesValidation(t *testing.T) {
	type uploadBody struct {
		Image multipart.FileHeader `validate:"mimetypes=image/png image/jpeg"`
	}

	fileHeader := func(contentType string) multipart.FileHeader {
		header := textproto.MIMEHeader{}
		header.Set("Content-Type", contentType)

		return multipart.FileHeader{Filename: "photo", Header: header}
	}

	t.Run("allowed content type passes", func(t *testing.T) {
		req := uploadBody{Image: fileHeader("image/png")}

		assert.NoError(t, validator.ValidateStruct(&req))
	})

	t.Run("disallowed content type rejected", func(t *testing.T) {
		req := uploadBody{Image: fileHeader("application/pdf")}

		assert.Error(t, validator.ValidateStruct(&req))
	})
}

func TestSlugValidation(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("desert-safari-3", "slug"))
	assert.Error(t, validator.ValidateVar("Desert Safari!", "slug"))
}
