package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-be/internal/models"
)

func bindBody(t *testing.T, body string, dest interface{}) []models.ValidationIssue {
	t.Helper()
	gin.SetMode(gin.TestMode)
	UseJSONFieldNames()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return bindJSON(c, dest)
}

func TestBindJSON(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		dest     interface{}
		wantPath string
		wantMsg  string
	}{
		{
			name:     "invalid email",
			body:     `{"email":"nope","password":"secret1"}`,
			dest:     &models.RegisterRequest{},
			wantPath: "email",
			wantMsg:  "Invalid email",
		},
		{
			name:     "short password",
			body:     `{"email":"a@x.com","password":"123"}`,
			dest:     &models.RegisterRequest{},
			wantPath: "password",
			wantMsg:  "password must be at least 6 characters",
		},
		{
			name:     "missing image url uses json name",
			body:     `{"title":"Notebook","description":"A fine notebook","price":10}`,
			dest:     &models.CreateProductRequest{},
			wantPath: "imageUrl",
			wantMsg:  "imageUrl is required",
		},
		{
			name:     "negative price on update",
			body:     `{"price":-1}`,
			dest:     &models.UpdateProductRequest{},
			wantPath: "price",
			wantMsg:  "price must be greater than zero",
		},
		{
			name:     "wrong type",
			body:     `{"email":"a@x.com","password":123456}`,
			dest:     &models.LoginRequest{},
			wantPath: "password",
			wantMsg:  "password must be a string",
		},
		{
			name:    "empty body",
			body:    ``,
			dest:    &models.LoginRequest{},
			wantMsg: "Request body is required",
		},
		{
			name:    "malformed json",
			body:    `{"email":`,
			dest:    &models.LoginRequest{},
			wantMsg: "Malformed JSON body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := bindBody(t, tt.body, tt.dest)

			require.NotEmpty(t, issues)
			assert.Equal(t, tt.wantPath, issues[0].Path)
			assert.Equal(t, tt.wantMsg, issues[0].Message)
		})
	}
}

func TestBindJSON_PartialUpdateAccepted(t *testing.T) {
	var req models.UpdateProductRequest

	issues := bindBody(t, `{"isFeatured":true}`, &req)

	assert.Empty(t, issues)
	require.NotNil(t, req.IsFeatured)
	assert.True(t, *req.IsFeatured)
	assert.Nil(t, req.Title)
}
