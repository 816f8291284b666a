package services

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"babyshop/models"
)

func testGateway() *PaymentGateway {
	return NewPaymentGateway(GatewayConfig{
		MerchantID:    "MC-TEST",
		Password:      "secret",
		IntegritySalt: "salt",
		GatewayURL:    "https://sandbox.example.com/pay",
		ReturnURL:     "http://localhost:8080/api/payment/return",
		CancelURL:     "http://localhost:8080/api/payment/cancel",
		Sandbox:       true,
	})
}

func testOrder() models.Order {
	return models.Order{
		OrderNumber: "BS-20260314150926-AB12CD",
		Total:       3465,
	}
}

func TestBuildRedirectFields(t *testing.T) {
	g := testGateway()
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	fields := g.BuildRedirectFields(testOrder(), now)

	for _, key := range []string{
		"pp_Version", "pp_TxnType", "pp_MerchantID", "pp_Password",
		"pp_TxnRefNo", "pp_Amount", "pp_TxnDateTime", "pp_BillReference",
		"pp_Description", "pp_ReturnURL", "pp_SecureHash",
	} {
		if fields[key] == "" {
			t.Errorf("missing field %s", key)
		}
	}

	if fields["pp_Amount"] != "346500" {
		t.Errorf("expected amount in lowest denomination 346500, got %s", fields["pp_Amount"])
	}
	if fields["pp_BillReference"] != "BS-20260314150926-AB12CD" {
		t.Errorf("bill reference should carry the order number, got %s", fields["pp_BillReference"])
	}
	if fields["pp_TxnDateTime"] != "20260314150926" {
		t.Errorf("unexpected txn datetime %s", fields["pp_TxnDateTime"])
	}
	if !strings.HasPrefix(fields["pp_TxnRefNo"], "T") {
		t.Errorf("unexpected txn ref %s", fields["pp_TxnRefNo"])
	}
}

func TestSecureHashDeterministic(t *testing.T) {
	fields := map[string]string{
		"pp_MerchantID": "MC-TEST",
		"pp_Amount":     "100000",
		"pp_TxnRefNo":   "T123",
	}

	h1 := secureHash(fields, "salt")
	h2 := secureHash(fields, "salt")
	if h1 != h2 {
		t.Fatalf("hash not deterministic: %s vs %s", h1, h2)
	}
	if len(h1) != 8 {
		t.Fatalf("expected 8 hex chars, got %q", h1)
	}

	if secureHash(fields, "other-salt") == h1 {
		t.Fatal("salt should change the hash")
	}

	fields["pp_Amount"] = "100001"
	if secureHash(fields, "salt") == h1 {
		t.Fatal("field change should change the hash")
	}
}

func TestRedirectFormHTML(t *testing.T) {
	g := testGateway()
	fields := g.BuildRedirectFields(testOrder(), time.Now())

	html, err := g.RedirectFormHTML(fields)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.Contains(html, `action="https://sandbox.example.com/pay"`) {
		t.Error("form action missing")
	}
	if !strings.Contains(html, "document.forms[0].submit()") {
		t.Error("auto-submit missing")
	}
	if !strings.Contains(html, `name="pp_SecureHash"`) {
		t.Error("secure hash input missing")
	}
}

func TestSimulateSandboxResponse(t *testing.T) {
	g := testGateway()
	fields := g.BuildRedirectFields(testOrder(), time.Now())

	t.Run("suffix 1111 -> insufficient balance", func(t *testing.T) {
		result := g.SimulateSandboxResponse("03001231111", fields)
		if result.Success {
			t.Fatal("expected failure")
		}
		if result.ResponseCode != ResponseCodeInsufficientBalance {
			t.Fatalf("expected code %s, got %s", ResponseCodeInsufficientBalance, result.ResponseCode)
		}
	})

	t.Run("suffix 2222 -> timeout", func(t *testing.T) {
		result := g.SimulateSandboxResponse("03001232222", fields)
		if result.Success || result.ResponseCode != ResponseCodeTimeout {
			t.Fatalf("expected timeout, got %+v", result)
		}
	})

	t.Run("other number -> success", func(t *testing.T) {
		result := g.SimulateSandboxResponse("03001234567", fields)
		if !result.Success || result.ResponseCode != ResponseCodeSuccess {
			t.Fatalf("expected success, got %+v", result)
		}
		if result.Amount != 3465 {
			t.Fatalf("expected amount 3465, got %v", result.Amount)
		}
		if result.BillReference != "BS-20260314150926-AB12CD" {
			t.Fatalf("unexpected bill reference %s", result.BillReference)
		}
	})
}

func TestParseCallback(t *testing.T) {
	t.Run("success response", func(t *testing.T) {
		query := url.Values{}
		query.Set("pp_TxnRefNo", "T42")
		query.Set("pp_Amount", "250000")
		query.Set("pp_ResponseCode", "000")
		query.Set("pp_BillReference", "BS-1")

		result := ParseCallback(query)
		if !result.Success {
			t.Fatal("expected success")
		}
		if result.TxnRefNo != "T42" || result.Amount != 2500 || result.BillReference != "BS-1" {
			t.Fatalf("unexpected result %+v", result)
		}
	})

	t.Run("failure response", func(t *testing.T) {
		query := url.Values{}
		query.Set("pp_TxnRefNo", "T43")
		query.Set("pp_Amount", "250000")
		query.Set("pp_ResponseCode", "199")

		result := ParseCallback(query)
		if result.Success {
			t.Fatal("expected failure")
		}
		if result.ResponseCode != "199" {
			t.Fatalf("unexpected code %s", result.ResponseCode)
		}
	})
}
