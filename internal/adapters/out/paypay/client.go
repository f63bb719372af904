package paypay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

const contentTypeJSON = "application/json;charset=UTF-8"

var _ ports.PaymentGateway = (*Client)(nil)

type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *zap.Logger

	now   func() time.Time
	nonce func() string
}

func NewClient(cfg Config, log *zap.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log.Named("paypay"),
		now:        time.Now,
		nonce: func() string {
			return uuid.NewString()[:8]
		},
	}, nil
}

// CreateQRCode registers a dynamic QR code for the order. The buyer is sent
// back to the storefront callback with the merchant payment id after paying.
func (c *Client) CreateQRCode(ctx context.Context, req ports.QRCodeRequest) (ports.QRCode, error) {
	const op = "createQRCode"

	body, err := c.buildCreateCodeRequest(req)
	if err != nil {
		return ports.QRCode{}, errs.NewGatewayErrorWithCause(op, err)
	}

	var resp envelope[codeData]
	status, err := c.do(ctx, op, req.MerchantPaymentID, http.MethodPost, createCodePath, body, &resp)
	if err != nil {
		return ports.QRCode{}, err
	}

	if status >= http.StatusBadRequest || resp.ResultInfo.Code != resultSuccess {
		return ports.QRCode{}, errs.NewGatewayError(op, status, resp.ResultInfo.Code)
	}
	if resp.Data == nil || resp.Data.URL == "" {
		return ports.QRCode{}, errs.NewGatewayError(op, status, resultEmptyURL)
	}

	return ports.QRCode{
		CodeID:   resp.Data.CodeID,
		URL:      resp.Data.URL,
		DeepLink: resp.Data.DeepLink,
	}, nil
}

// GetPaymentDetails returns (nil, nil) for a merchant payment id PayPay has
// never seen, which is the case for every order whose QR code was not created.
func (c *Client) GetPaymentDetails(ctx context.Context, merchantPaymentID string) (*ports.PaymentDetails, error) {
	const op = "getPaymentDetails"

	if merchantPaymentID == "" {
		return nil, errs.NewGatewayErrorWithCause(op, errs.NewValueIsRequiredError("merchantPaymentId"))
	}

	var resp envelope[paymentData]
	path := paymentDetailsPath + url.PathEscape(merchantPaymentID)
	status, err := c.do(ctx, op, merchantPaymentID, http.MethodGet, path, nil, &resp)
	if err != nil {
		return nil, err
	}

	if status == http.StatusNotFound || resp.ResultInfo.Code == resultPaymentNotFound {
		return nil, nil
	}
	if status >= http.StatusBadRequest || resp.ResultInfo.Code != resultSuccess {
		return nil, errs.NewGatewayError(op, status, resp.ResultInfo.Code)
	}
	if resp.Data == nil {
		return nil, errs.NewGatewayError(op, status, "EMPTY_DATA")
	}

	return toPaymentDetails(*resp.Data)
}

func (c *Client) buildCreateCodeRequest(req ports.QRCodeRequest) (*createCodeRequest, error) {
	if req.MerchantPaymentID == "" {
		return nil, errs.NewValueIsRequiredError("merchantPaymentId")
	}
	if len(req.Items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	total := kernel.Yen(0)
	items := make([]orderItem, 0, len(req.Items))
	for _, it := range req.Items {
		subtotal, err := it.UnitPrice.Times(it.Quantity)
		if err != nil {
			return nil, err
		}
		if total, err = total.Add(subtotal); err != nil {
			return nil, err
		}
		items = append(items, orderItem{
			Name:      it.Name,
			ProductID: strconv.FormatInt(it.ProductID, 10),
			Quantity:  it.Quantity,
			UnitPrice: moneyAmount{Amount: it.UnitPrice.Amount(), Currency: c.cfg.Currency},
		})
	}

	redirect := c.cfg.PublicBaseURL + CallbackPath + "?" +
		url.Values{"merchantPaymentId": {req.MerchantPaymentID}}.Encode()

	return &createCodeRequest{
		MerchantPaymentID: req.MerchantPaymentID,
		Amount:            moneyAmount{Amount: total.Amount(), Currency: c.cfg.Currency},
		CodeType:          codeTypeOrderQR,
		OrderItems:        items,
		RedirectURL:       redirect,
		RedirectType:      redirectTypeWebLink,
		RequestedAt:       c.now().Unix(),
	}, nil
}

// do sends one signed request and decodes the JSON envelope into out. Only
// transport and decoding failures are returned as errors; the caller judges
// the status code and result code.
func (c *Client) do(
	ctx context.Context,
	op, merchantPaymentID, method, path string,
	payload any,
	out any,
) (int, error) {
	var body []byte
	if payload != nil {
		var err error
		if body, err = json.Marshal(payload); err != nil {
			return 0, errs.NewGatewayErrorWithCause(op, fmt.Errorf("marshal request: %w", err))
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, errs.NewGatewayErrorWithCause(op, err)
	}
	contentType := ""
	if len(body) > 0 {
		contentType = contentTypeJSON
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-ASSUME-MERCHANT", c.cfg.MerchantID)
	req.Header.Set("Authorization",
		authorization(c.cfg.APIKey, c.cfg.APISecret, method, path, contentType, body, c.nonce(), c.now().Unix()))

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("paypay request failed",
			zap.String("operation", op),
			zap.String("merchant_payment_id", merchantPaymentID),
			zap.String("path", path),
			zap.Error(err))
		return 0, errs.NewGatewayErrorWithCause(op, err)
	}
	defer resp.Body.Close()

	c.log.Info("paypay request",
		zap.String("operation", op),
		zap.String("merchant_payment_id", merchantPaymentID),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(started)))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, errs.NewGatewayErrorWithCause(op, fmt.Errorf("read response: %w", err))
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil && resp.StatusCode < http.StatusBadRequest {
			return resp.StatusCode, errs.NewGatewayErrorWithCause(op, fmt.Errorf("decode response: %w", err))
		}
	}
	return resp.StatusCode, nil
}

func toPaymentDetails(d paymentData) (*ports.PaymentDetails, error) {
	currency := d.Amount.Currency
	if currency == "" {
		currency = kernel.DefaultCurrency
	}
	amount, err := kernel.NewMoney(d.Amount.Amount, currency)
	if err != nil {
		return nil, errs.NewGatewayErrorWithCause("getPaymentDetails", err)
	}

	details := &ports.PaymentDetails{
		Status:      d.Status,
		Amount:      amount,
		RequestedAt: time.Unix(d.RequestedAt, 0).UTC(),
	}
	if d.AcceptedAt > 0 {
		at := time.Unix(d.AcceptedAt, 0).UTC()
		details.AcceptedAt = &at
	}
	return details, nil
}
