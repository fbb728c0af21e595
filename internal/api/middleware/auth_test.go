package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/securecargo/website-api/internal/core/domain"
)

type stubVerifier struct {
	userID string
	err    error
}

func (v *stubVerifier) Verify(token string) (string, error) {
	if v.err != nil {
		return "", v.err
	}
	return v.userID, nil
}

func runAuth(t *testing.T, verifier TokenVerifier, header string) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/verify", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(verifier)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return rec, c, handler(c)
}

func TestAuth_ValidTokenSetsUserID(t *testing.T) {
	rec, c, err := runAuth(t, &stubVerifier{userID: "u42"}, "Bearer good-token")
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got, _ := c.Get("user_id").(string); got != "u42" {
		t.Fatalf("expected user_id u42 in context, got %q", got)
	}
}

func TestAuth_CaseInsensitiveScheme(t *testing.T) {
	_, c, err := runAuth(t, &stubVerifier{userID: "u42"}, "bearer good-token")
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if got, _ := c.Get("user_id").(string); got != "u42" {
		t.Fatalf("lowercase scheme should be accepted, got %q", got)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, _, err := runAuth(t, &stubVerifier{userID: "u42"}, "")
	assertUnauthorized(t, err)
}

func TestAuth_MalformedHeader(t *testing.T) {
	for _, header := range []string{"good-token", "Basic abc123", "Bearer"} {
		_, _, err := runAuth(t, &stubVerifier{userID: "u42"}, header)
		assertUnauthorized(t, err)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	_, _, err := runAuth(t, &stubVerifier{err: domain.ErrInvalidToken}, "Bearer bad-token")
	assertUnauthorized(t, err)
}

func assertUnauthorized(t *testing.T, err error) {
	t.Helper()
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", httpErr.Code)
	}
}
