package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "authhub/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mw := NewRequestIDMiddleware(logger)

	tests := []struct {
		name     string
		header   string
		expectID func(t *testing.T, id string)
	}{
		{
			name:   "reuses client id",
			header: "client-id",
			expectID: func(t *testing.T, id string) {
				assert.Equal(t, "client-id", id)
			},
		},
		{
			name:   "generates id when missing",
			header: "",
			expectID: func(t *testing.T, id string) {
				assert.Len(t, id, 36)
			},
		},
		{
			name:   "replaces oversized id",
			header: strings.Repeat("a", maxRequestIDLength+1),
			expectID: func(t *testing.T, id string) {
				assert.Len(t, id, 36)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			var ctxLogger *slog.Logger
			err := mw.Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				ctxLogger = deliverycontext.GetLogger(c.Request().Context())

				return c.NoContent(http.StatusNoContent)
			})(c)
			require.NoError(t, err)

			tt.expectID(t, ctxID)
			assert.Equal(t, ctxID, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.NotNil(t, ctxLogger)
		})
	}
}
