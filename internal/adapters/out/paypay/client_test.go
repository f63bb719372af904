package paypay

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		BaseURL:       server.URL,
		APIKey:        "key",
		APISecret:     "secret",
		MerchantID:    "merchant-1",
		PublicBaseURL: "https://shop.example.com/",
	}, zap.NewNop())
	require.NoError(t, err)

	client.now = func() time.Time { return fixedNow }
	client.nonce = func() string { return "abcd1234" }
	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func qrRequest() ports.QRCodeRequest {
	return ports.QRCodeRequest{
		MerchantPaymentID: "M1",
		Items: []ports.QRCodeItem{
			{ProductID: 1, Name: "tea", Quantity: 2, UnitPrice: kernel.Yen(500)},
			{ProductID: 7, Name: "cup", Quantity: 1, UnitPrice: kernel.Yen(1200)},
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "valid",
			config:  Config{APIKey: "k", APISecret: "s", MerchantID: "m", PublicBaseURL: "https://x"},
			wantErr: nil,
		},
		{
			name:    "missing api key",
			config:  Config{APISecret: "s", MerchantID: "m", PublicBaseURL: "https://x"},
			wantErr: ErrMissingAPIKey,
		},
		{
			name:    "missing api secret",
			config:  Config{APIKey: "k", MerchantID: "m", PublicBaseURL: "https://x"},
			wantErr: ErrMissingAPISecret,
		},
		{
			name:    "missing merchant",
			config:  Config{APIKey: "k", APISecret: "s", PublicBaseURL: "https://x"},
			wantErr: ErrMissingMerchantID,
		},
		{
			name:    "missing public base url",
			config:  Config{APIKey: "k", APISecret: "s", MerchantID: "m"},
			wantErr: ErrMissingPublicBaseURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateQRCode_Success(t *testing.T) {
	var got createCodeRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/codes", r.URL.Path)
		assert.Equal(t, "merchant-1", r.Header.Get("X-ASSUME-MERCHANT"))
		assert.Equal(t, contentTypeJSON, r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		want := authorization("key", "secret", http.MethodPost, "/v2/codes", contentTypeJSON, body,
			"abcd1234", fixedNow.Unix())
		assert.Equal(t, want, r.Header.Get("Authorization"))
		require.NoError(t, json.Unmarshal(body, &got))

		writeJSON(t, w, http.StatusCreated, map[string]any{
			"resultInfo": map[string]any{"code": "SUCCESS"},
			"data": map[string]any{
				"codeId":   "04-abc",
				"url":      "https://qr.paypay.ne.jp/abc",
				"deeplink": "paypay://payment?link_key=abc",
			},
		})
	})

	code, err := client.CreateQRCode(context.Background(), qrRequest())

	require.NoError(t, err)
	assert.Equal(t, "https://qr.paypay.ne.jp/abc", code.URL)
	assert.Equal(t, "04-abc", code.CodeID)

	assert.Equal(t, "M1", got.MerchantPaymentID)
	assert.Equal(t, "ORDER_QR", got.CodeType)
	assert.Equal(t, "WEB_LINK", got.RedirectType)
	assert.Equal(t, "https://shop.example.com/api/v1/payments/callback?merchantPaymentId=M1", got.RedirectURL)
	assert.Equal(t, moneyAmount{Amount: 2200, Currency: "JPY"}, got.Amount)
	assert.Equal(t, fixedNow.Unix(), got.RequestedAt)
	require.Len(t, got.OrderItems, 2)
	assert.Equal(t, orderItem{
		Name:      "tea",
		ProductID: "1",
		Quantity:  2,
		UnitPrice: moneyAmount{Amount: 500, Currency: "JPY"},
	}, got.OrderItems[0])
}

func TestCreateQRCode_ResultCodeNotSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]any{
			"resultInfo": map[string]any{"code": "DUPLICATE_DYNAMIC_QR_REQUEST", "message": "dup"},
		})
	})

	_, err := client.CreateQRCode(context.Background(), qrRequest())

	require.ErrorIs(t, err, errs.ErrGateway)
	var gwErr *errs.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, http.StatusBadRequest, gwErr.StatusCode)
	assert.Equal(t, "DUPLICATE_DYNAMIC_QR_REQUEST", gwErr.Code)
}

func TestCreateQRCode_MissingURLIsGatewayError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusCreated, map[string]any{
			"resultInfo": map[string]any{"code": "SUCCESS"},
			"data":       map[string]any{"codeId": "04-abc"},
		})
	})

	_, err := client.CreateQRCode(context.Background(), qrRequest())

	var gwErr *errs.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "EMPTY_URL", gwErr.Code)
}

func TestCreateQRCode_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client, err := NewClient(Config{
		BaseURL: baseURL, APIKey: "k", APISecret: "s", MerchantID: "m", PublicBaseURL: "https://x",
	}, zap.NewNop())
	require.NoError(t, err)

	_, err = client.CreateQRCode(context.Background(), qrRequest())

	require.ErrorIs(t, err, errs.ErrGateway)
	var gwErr *errs.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.NotNil(t, gwErr.Cause)
}

func TestCreateQRCode_RejectsEmptyItems(t *testing.T) {
	client := newTestClient(t, func(http.ResponseWriter, *http.Request) {
		t.Fatal("no request expected")
	})

	_, err := client.CreateQRCode(context.Background(), ports.QRCodeRequest{MerchantPaymentID: "M1"})

	require.ErrorIs(t, err, errs.ErrGateway)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetPaymentDetails_Completed(t *testing.T) {
	accepted := fixedNow.Add(time.Minute).Unix()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v2/codes/payments/M1", r.URL.Path)
		assert.Empty(t, r.Header.Get("Content-Type"))
		want := authorization("key", "secret", http.MethodGet, "/v2/codes/payments/M1", "", nil,
			"abcd1234", fixedNow.Unix())
		assert.Equal(t, want, r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusOK, map[string]any{
			"resultInfo": map[string]any{"code": "SUCCESS"},
			"data": map[string]any{
				"merchantPaymentId": "M1",
				"status":            "COMPLETED",
				"amount":            map[string]any{"amount": 2200, "currency": "JPY"},
				"requestedAt":       fixedNow.Unix(),
				"acceptedAt":        accepted,
			},
		})
	})

	details, err := client.GetPaymentDetails(context.Background(), "M1")

	require.NoError(t, err)
	require.NotNil(t, details)
	assert.Equal(t, "COMPLETED", details.Status)
	assert.Equal(t, int64(2200), details.Amount.Amount())
	assert.Equal(t, fixedNow, details.RequestedAt)
	require.NotNil(t, details.AcceptedAt)
	assert.Equal(t, accepted, details.AcceptedAt.Unix())
}

func TestGetPaymentDetails_UnknownPaymentIsNil(t *testing.T) {
	tests := []struct {
		name   string
		status int
		code   string
	}{
		{name: "http 404", status: http.StatusNotFound, code: "RESOURCE_NOT_FOUND"},
		{name: "result code", status: http.StatusBadRequest, code: "DYNAMIC_QR_PAYMENT_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(t, w, tt.status, map[string]any{"resultInfo": map[string]any{"code": tt.code}})
			})

			details, err := client.GetPaymentDetails(context.Background(), "M1")

			require.NoError(t, err)
			assert.Nil(t, details)
		})
	}
}

func TestGetPaymentDetails_ServerErrorIsGatewayError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	details, err := client.GetPaymentDetails(context.Background(), "M1")

	assert.Nil(t, details)
	var gwErr *errs.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, http.StatusInternalServerError, gwErr.StatusCode)
}

func TestAuthorization_Format(t *testing.T) {
	header := authorization("key", "secret", http.MethodGet, "/v2/codes/payments/M1", "", nil, "n0nce", 1700000000)

	assert.Regexp(t, `^hmac OPA-Auth:key:[A-Za-z0-9+/=]+:n0nce:1700000000:empty$`, header)
}
