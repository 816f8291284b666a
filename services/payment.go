package services

import (
	"fmt"
	"html/template"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"babyshop/models"

	"github.com/google/uuid"
)

const (
	ResponseCodeSuccess             = "000"
	ResponseCodeInsufficientBalance = "199"
	ResponseCodeTimeout             = "210"
)

// GatewayConfig carries the merchant credentials for the hosted redirect
// payment page. Sandbox mode never leaves the process: responses are
// synthesized from magic phone-number suffixes.
type GatewayConfig struct {
	MerchantID    string
	Password      string
	IntegritySalt string
	GatewayURL    string
	ReturnURL     string
	CancelURL     string
	Sandbox       bool
}

type PaymentGateway struct {
	cfg GatewayConfig
}

func NewPaymentGateway(cfg GatewayConfig) *PaymentGateway {
	return &PaymentGateway{cfg: cfg}
}

// PaymentResult is the parsed outcome of a gateway callback.
type PaymentResult struct {
	TxnRefNo      string  `json:"txnRefNo"`
	Amount        float64 `json:"amount"`
	ResponseCode  string  `json:"responseCode"`
	BillReference string  `json:"billReference"`
	Success       bool    `json:"success"`
	Message       string  `json:"message"`
}

// BuildRedirectFields assembles the hidden-form field set for the hosted
// payment page. Amount is sent in the lowest denomination.
func (g *PaymentGateway) BuildRedirectFields(order models.Order, now time.Time) map[string]string {
	txnRef := "T" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:16]

	fields := map[string]string{
		"pp_Version":       "1.1",
		"pp_TxnType":       "MWALLET",
		"pp_MerchantID":    g.cfg.MerchantID,
		"pp_Password":      g.cfg.Password,
		"pp_TxnRefNo":      txnRef,
		"pp_Amount":        strconv.FormatInt(int64(order.Total*100), 10),
		"pp_TxnCurrency":   "PKR",
		"pp_TxnDateTime":   now.Format("20060102150405"),
		"pp_BillReference": order.OrderNumber,
		"pp_Description":   fmt.Sprintf("BabyShop order %s", order.OrderNumber),
		"pp_ReturnURL":     g.cfg.ReturnURL,
	}
	fields["pp_SecureHash"] = secureHash(fields, g.cfg.IntegritySalt)
	return fields
}

// secureHash is a placeholder rolling checksum, NOT a real HMAC. The source
// system ships the same simulation and callers must not treat this value as
// security. Kept deterministic over the sorted field set.
func secureHash(fields map[string]string, salt string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == "pp_SecureHash" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(salt)
	for _, k := range keys {
		sb.WriteByte('&')
		sb.WriteString(fields[k])
	}

	var hash uint32
	for _, b := range []byte(sb.String()) {
		hash = hash*31 + uint32(b)
	}
	return fmt.Sprintf("%08X", hash)
}

var redirectFormTmpl = template.Must(template.New("redirect").Parse(`<!DOCTYPE html>
<html>
<body onload="document.forms[0].submit()">
<form method="post" action="{{.Action}}">
{{- range $name, $value := .Fields}}
<input type="hidden" name="{{$name}}" value="{{$value}}">
{{- end}}
<noscript><button type="submit">Continue to payment</button></noscript>
</form>
</body>
</html>
`))

// RedirectFormHTML renders the auto-submitting form that forwards the buyer
// to the hosted payment page.
func (g *PaymentGateway) RedirectFormHTML(fields map[string]string) (string, error) {
	var sb strings.Builder
	err := redirectFormTmpl.Execute(&sb, struct {
		Action string
		Fields map[string]string
	}{Action: g.cfg.GatewayURL, Fields: fields})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}

// SimulateSandboxResponse synthesizes the gateway callback locally. Magic
// phone suffixes drive the outcome: "1111" fails with insufficient balance,
// "2222" times out, anything else succeeds.
func (g *PaymentGateway) SimulateSandboxResponse(phone string, fields map[string]string) PaymentResult {
	amount, _ := strconv.ParseFloat(fields["pp_Amount"], 64)

	result := PaymentResult{
		TxnRefNo:      fields["pp_TxnRefNo"],
		Amount:        amount / 100,
		BillReference: fields["pp_BillReference"],
	}

	switch {
	case strings.HasSuffix(phone, "1111"):
		result.ResponseCode = ResponseCodeInsufficientBalance
		result.Message = "Insufficient balance in wallet"
	case strings.HasSuffix(phone, "2222"):
		result.ResponseCode = ResponseCodeTimeout
		result.Message = "Transaction timed out, please try again"
	default:
		result.ResponseCode = ResponseCodeSuccess
		result.Success = true
		result.Message = "Payment successful"
	}
	return result
}

// ParseCallback reads the gateway return parameters into a result. Response
// code "000" is the only success code.
func ParseCallback(query url.Values) PaymentResult {
	amount, _ := strconv.ParseFloat(query.Get("pp_Amount"), 64)
	code := query.Get("pp_ResponseCode")

	result := PaymentResult{
		TxnRefNo:      query.Get("pp_TxnRefNo"),
		Amount:        amount / 100,
		ResponseCode:  code,
		BillReference: query.Get("pp_BillReference"),
		Success:       code == ResponseCodeSuccess,
	}

	if result.Success {
		result.Message = "Payment successful"
	} else {
		result.Message = "Payment failed, please try again"
	}
	return result
}
