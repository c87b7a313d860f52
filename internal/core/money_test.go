package core

import (
	"encoding/json"
	"testing"
)

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{"150.00", 15000, true},
		{"-1", 0, false},
		{"+1", 0, false},
		{"0", 0, false},
		{"0.00", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestMoneyString(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{15000, "150.00"},
		{123, "1.23"},
		{5, "0.05"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).String(); got != tc.want {
			t.Fatalf("cents %d: expected %q, got %q", tc.cents, tc.want, got)
		}
	}
}

func TestMoneyJSONAcceptsBothShapes(t *testing.T) {
	// Decimal string, as written by this codec
	var m Money
	if err := json.Unmarshal([]byte(`"150.00"`), &m); err != nil {
		t.Fatalf("string form: %v", err)
	}
	if m.Cents != 15000 {
		t.Fatalf("string form: expected 15000, got %d", m.Cents)
	}

	// Bare number, as written by the original browser snapshots
	if err := json.Unmarshal([]byte(`150`), &m); err != nil {
		t.Fatalf("number form: %v", err)
	}
	if m.Cents != 15000 {
		t.Fatalf("number form: expected 15000, got %d", m.Cents)
	}

	if err := json.Unmarshal([]byte(`99.9`), &m); err != nil {
		t.Fatalf("fractional number form: %v", err)
	}
	if m.Cents != 9990 {
		t.Fatalf("fractional number form: expected 9990, got %d", m.Cents)
	}

	out, err := json.Marshal(Money{Cents: 15000})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"150.00"` {
		t.Fatalf("marshal: expected %q, got %q", `"150.00"`, string(out))
	}
}
