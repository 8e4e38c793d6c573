// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package model

import (
	"encoding/json"
	"testing"
)

func TestDecimalText_AcceptsStringNumberAndNull(t *testing.T) {
	var got struct {
		A DecimalText `json:"a"`
		B DecimalText `json:"b"`
		C DecimalText `json:"c"`
		D DecimalText `json:"d"`
	}
	body := `{"a":"92.30","b":0.923000,"c":null}`
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.A != "92.30" {
		t.Fatalf("string form lost: %q", got.A)
	}
	if got.B != "0.923000" {
		t.Fatalf("number form must keep its text, got %q", got.B)
	}
	if got.C != "" || got.D != "" {
		t.Fatalf("null and missing must be empty, got %q %q", got.C, got.D)
	}
}

func TestDecimalText_RejectsGarbage(t *testing.T) {
	var d DecimalText
	if err := json.Unmarshal([]byte(`true`), &d); err == nil {
		t.Fatalf("expected error for boolean input")
	}
}

func TestCreateRateRequest_NilRateIsNull(t *testing.T) {
	data, err := json.Marshal(CreateRateRequest{BaseCode: "USD", TargetCode: "EUR"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"baseCode":"USD","targetCode":"EUR","rate":null}` {
		t.Fatalf("unexpected body: %s", data)
	}

	n := json.Number("0.92")
	data, _ = json.Marshal(CreateRateRequest{BaseCode: "USD", TargetCode: "EUR", Rate: &n})
	if string(data) != `{"baseCode":"USD","targetCode":"EUR","rate":0.92}` {
		t.Fatalf("rate must be sent as a number: %s", data)
	}
}
