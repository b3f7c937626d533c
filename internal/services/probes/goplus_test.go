package probes

import (
	"encoding/json"
	"testing"
)

func TestGoPlusPayloadDecode(t *testing.T) {
	payload := `{
		"code": 1,
		"message": "OK",
		"result": {
			"0xdac17f958d2ee523a2206206994597c13d831ec7": {
				"owner_address": "0xc6cde7c39eb2f0f0095f41570af89efc2c1ea828",
				"is_open_source": "1",
				"is_honeypot": "0",
				"cannot_sell_all": "0",
				"owner_change_balance": "1",
				"hidden_owner": "0",
				"buy_tax": "0",
				"sell_tax": "0.05",
				"holder_count": "5538384",
				"holders": [
					{"address": "0x47ac0fb4f2d84898e4d9e7b4dab3c24507a6d503", "percent": "0.09", "is_locked": 0}
				],
				"lp_holders": [
					{"address": "0x000000000000000000000000000000000000dead", "percent": "0.6", "is_locked": 0},
					{"address": "0x663a5c229c09b049e36dcc11a9b0d4a8eb9db214", "percent": "0.3", "is_locked": 1}
				]
			}
		}
	}`

	var resp goPlusResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	token, ok := resp.Result["0xdac17f958d2ee523a2206206994597c13d831ec7"]
	if !ok {
		t.Fatal("token entry missing")
	}
	if !gpBool(token.OwnerChangeBalance) {
		t.Fatal("expected owner_change_balance true")
	}
	if gpBool(token.IsHoneypot) {
		t.Fatal("expected is_honeypot false")
	}
	tax, ok := gpFloat(token.SellTax)
	if !ok || tax != 0.05 {
		t.Fatalf("expected sell tax 0.05, got %v ok=%v", tax, ok)
	}
	if len(token.LPHolders) != 2 || token.LPHolders[1].IsLocked != 1 {
		t.Fatalf("lp holders decoded wrong: %+v", token.LPHolders)
	}
}

func TestGpFloatRejectsGarbage(t *testing.T) {
	if _, ok := gpFloat(""); ok {
		t.Fatal("empty string must not parse")
	}
	if _, ok := gpFloat("n/a"); ok {
		t.Fatal("non-numeric string must not parse")
	}
	if v, ok := gpFloat("1.5"); !ok || v != 1.5 {
		t.Fatalf("expected 1.5, got %v ok=%v", v, ok)
	}
}
