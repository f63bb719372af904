package paypay

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
	"strings"
)

const emptyPayload = "empty"

// authorization builds the OPA-Auth header value. The signed string is
// path, method, nonce, epoch, content type and payload hash joined by newlines.
// Requests without a body use "empty" for both content type and hash.
func authorization(apiKey, apiSecret, method, path, contentType string, body []byte, nonce string, epoch int64) string {
	hash := emptyPayload
	if len(body) == 0 {
		contentType = emptyPayload
	} else {
		h := md5.New()
		h.Write([]byte(contentType))
		h.Write(body)
		hash = base64.StdEncoding.EncodeToString(h.Sum(nil))
	}

	ts := strconv.FormatInt(epoch, 10)
	signed := strings.Join([]string{path, method, nonce, ts, contentType, hash}, "\n")

	mac := hmac.New(sha256.New, []byte(apiSecret))
	mac.Write([]byte(signed))
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return "hmac OPA-Auth:" + strings.Join([]string{apiKey, signature, nonce, ts, hash}, ":")
}
