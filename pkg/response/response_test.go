package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCode(t *testing.T) {
	assert.Equal(t, "4040000114", FormatCode(404, "00001", "14"))
	assert.Equal(t, "2000000100", FormatCode(200, "00001", "00"))
	assert.Equal(t, "2010000101", FormatCode(201, "00001", "01"))
	assert.Equal(t, "50000001X5", FormatCode(500, "00001", "X5"))
	// HTTP status is always zero-padded to 3 digits
	assert.Equal(t, "0990000100", FormatCode(99, "00001", "00"))
}

func TestWriterApproved(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	NewWriter("00001").Approved(c, map[string]string{"k": "v"})

	assert.Equal(t, http.StatusOK, rec.Code)

	var body APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2000000100", body.ResponseCode)
	assert.Equal(t, "Approved", body.ResponseDesc)
	assert.NotNil(t, body.Data)
}

func TestWriterErrorCasesOmitData(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		write      func(w *Writer, c *gin.Context)
		wantStatus int
		wantCode   string
		wantDesc   string
	}{
		{"not found", func(w *Writer, c *gin.Context) { w.DataNotFound(c) }, 404, "4040000114", "Data tidak ditemukan"},
		{"conflict", func(w *Writer, c *gin.Context) { w.Conflict(c) }, 409, "4090000115", "Data sudah ada"},
		{"route not found", func(w *Writer, c *gin.Context) { w.RouteNotFound(c) }, 404, "4040000144", "There is No Resource Path"},
		{"method not allowed", func(w *Writer, c *gin.Context) { w.MethodNotAllowed(c) }, 405, "4050000145", "Method Not Allowed"},
		{"internal error", func(w *Writer, c *gin.Context) { w.InternalError(c) }, 500, "50000001X5", "Service Internal Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			tt.write(NewWriter("00001"), c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body["responseCode"])
			assert.Equal(t, tt.wantDesc, body["responseDesc"])
			// data is omitted when nil
			_, hasData := body["data"]
			assert.False(t, hasData)
		})
	}
}

func TestWriterBadRequestCarriesDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	NewWriter("00001").BadRequest(c, "NIK harus 16 digit")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "4000000140", body.ResponseCode)
	assert.Equal(t, "Permintaan tidak valid", body.ResponseDesc)
	assert.Equal(t, "NIK harus 16 digit", body.Data)
}
