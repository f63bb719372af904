package paypay

const (
	codeTypeOrderQR    = "ORDER_QR"
	redirectTypeWebLink = "WEB_LINK"

	resultSuccess         = "SUCCESS"
	resultPaymentNotFound = "DYNAMIC_QR_PAYMENT_NOT_FOUND"
	resultEmptyURL        = "EMPTY_URL"

	createCodePath     = "/v2/codes"
	paymentDetailsPath = "/v2/codes/payments/"
)

type moneyAmount struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type orderItem struct {
	Name      string      `json:"name"`
	ProductID string      `json:"productId"`
	Quantity  int         `json:"quantity"`
	UnitPrice moneyAmount `json:"unitPrice"`
}

type createCodeRequest struct {
	MerchantPaymentID string      `json:"merchantPaymentId"`
	Amount            moneyAmount `json:"amount"`
	CodeType          string      `json:"codeType"`
	OrderItems        []orderItem `json:"orderItems"`
	RedirectURL       string      `json:"redirectUrl"`
	RedirectType      string      `json:"redirectType"`
	RequestedAt       int64       `json:"requestedAt"`
}

type resultInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	CodeID  string `json:"codeId"`
}

type envelope[T any] struct {
	ResultInfo resultInfo `json:"resultInfo"`
	Data       *T         `json:"data"`
}

type codeData struct {
	CodeID            string `json:"codeId"`
	URL               string `json:"url"`
	DeepLink          string `json:"deeplink"`
	MerchantPaymentID string `json:"merchantPaymentId"`
}

type paymentData struct {
	MerchantPaymentID string      `json:"merchantPaymentId"`
	Status            string      `json:"status"`
	Amount            moneyAmount `json:"amount"`
	RequestedAt       int64       `json:"requestedAt"`
	AcceptedAt        int64       `json:"acceptedAt"`
}
