package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluemoonhaven/bakery-storefront/internal/api/middleware"
)

func TestSessionMiddleware(t *testing.T) {

	t.Run("Existing Session Header Is Carried Through", func(t *testing.T) {
		// Arrange
		sessionID := uuid.NewString()

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, sessionID, middleware.SessionFromContext(r.Context()))
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/api/v1/carts", nil)
		req.Header.Set("X-Session-ID", sessionID)
		recorder := httptest.NewRecorder()

		// Act
		middleware.Session(next).ServeHTTP(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, sessionID, recorder.Header().Get("X-Session-ID"))
	})

	t.Run("Missing Session Header Mints A Fresh ID", func(t *testing.T) {
		// Arrange
		var seen string

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = middleware.SessionFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/api/v1/carts", nil)
		recorder := httptest.NewRecorder()

		// Act
		middleware.Session(next).ServeHTTP(recorder, req)

		// Assert
		require.NotEmpty(t, seen)
		_, err := uuid.Parse(seen)
		assert.NoError(t, err, "minted session ID should be a UUID")
		assert.Equal(t, seen, recorder.Header().Get("X-Session-ID"), "minted ID should be echoed to the client")
	})

	t.Run("Absent Context Yields Empty Session", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)

		assert.Empty(t, middleware.SessionFromContext(req.Context()))
	})
}

func TestLoggingMiddleware(t *testing.T) {

	t.Run("Correlation ID Is Generated And Echoed", func(t *testing.T) {
		// Arrange
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NotNil(t, middleware.LoggerFromContext(r.Context()))
			w.WriteHeader(http.StatusCreated)
		})

		req := httptest.NewRequest("POST", "/api/v1/orders", nil)
		recorder := httptest.NewRecorder()

		// Act
		middleware.Logging(next).ServeHTTP(recorder, req)

		// Assert
		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
	})

	t.Run("Caller Supplied Request ID Is Kept", func(t *testing.T) {
		// Arrange
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/api/v1/products", nil)
		req.Header.Set("X-Request-ID", "req-123")
		recorder := httptest.NewRecorder()

		// Act
		middleware.Logging(next).ServeHTTP(recorder, req)

		// Assert
		assert.Equal(t, "req-123", recorder.Header().Get("X-Request-ID"))
	})
}
