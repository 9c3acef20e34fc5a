package public

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/favorite-plug/api/internal/service"

	"github.com/gin-gonic/gin"
)

func decodeEnvelope(t *testing.T, body []byte) (int, string) {
	t.Helper()
	var resp struct {
		StatusCode int    `json:"status_code"`
		Msg        string `json:"msg"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal envelope failed: %v", err)
	}
	return resp.StatusCode, resp.Msg
}

func TestRespondOrderPlaceErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "empty cart", err: service.ErrCartEmpty, wantCode: 400, wantMsg: "cart is empty"},
		{name: "vanished product", err: service.ErrProductNotFound, wantCode: 400, wantMsg: "a cart product no longer exists"},
		{name: "field error", err: service.NewFieldError("contact_phone", "contact phone is required"), wantCode: 400, wantMsg: "contact phone is required"},
		{name: "unexpected", err: errors.New("disk on fire"), wantCode: 500, wantMsg: "failed to place order"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("POST", "/api/orders", nil)

			respondOrderPlaceError(c, tc.err)

			if w.Code != 200 {
				t.Fatalf("http status want 200 got %d", w.Code)
			}
			code, msg := decodeEnvelope(t, w.Body.Bytes())
			if code != tc.wantCode {
				t.Fatalf("status_code want %d got %d", tc.wantCode, code)
			}
			if msg != tc.wantMsg {
				t.Fatalf("msg want %q got %q", tc.wantMsg, msg)
			}
		})
	}
}

func TestRespondWishlistErrorConflict(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/wishlist", nil)

	respondWishlistError(c, service.ErrWishlistDuplicate)

	code, msg := decodeEnvelope(t, w.Body.Bytes())
	if code != 409 {
		t.Fatalf("status_code want 409 got %d", code)
	}
	if msg != "product is already in the wishlist" {
		t.Fatalf("unexpected msg %q", msg)
	}
}

func TestRespondAuthErrorRateLimited(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/auth/send-verify-code", nil)

	respondAuthError(c, service.ErrVerifyCodeTooFrequent)

	code, _ := decodeEnvelope(t, w.Body.Bytes())
	if code != 429 {
		t.Fatalf("status_code want 429 got %d", code)
	}
}
