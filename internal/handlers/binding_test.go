package handlers

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/frequencia-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindNestedOrFlat(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		body        string
		expected    services.LotacaoRequest
		expectError bool
	}{
		{
			name:     "wrapped in resource key",
			body:     `{"lotacao": {"nome": "Almoxarifado", "orgao_id": 3}}`,
			expected: services.LotacaoRequest{Nome: "Almoxarifado", OrgaoID: 3},
		},
		{
			name:     "flat body",
			body:     `{"nome": "Protocolo", "orgao_id": 2}`,
			expected: services.LotacaoRequest{Nome: "Protocolo", OrgaoID: 2},
		},
		{
			name:     "other keys fall back to flat",
			body:     `{"outro": 1, "nome": "Gabinete", "orgao_id": 1}`,
			expected: services.LotacaoRequest{Nome: "Gabinete", OrgaoID: 1},
		},
		{
			name:        "wrong type",
			body:        `{"nome": "X", "orgao_id": "um"}`,
			expectError: true,
		},
		{
			name:        "wrapped with wrong type",
			body:        `{"lotacao": {"nome": "X", "orgao_id": "um"}}`,
			expectError: true,
		},
		{
			name:        "wrapped value is not an object",
			body:        `{"lotacao": "texto"}`,
			expectError: true,
		},
		{
			name:        "empty body",
			body:        ``,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("POST", "/", bytes.NewBufferString(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var result services.LotacaoRequest
			err := BindNestedOrFlat(c, "lotacao", &result)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)

			rest, _ := io.ReadAll(c.Request.Body)
			assert.Equal(t, tt.body, string(rest), "body is restored")
		})
	}
}
