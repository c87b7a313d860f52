package core

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2024-03-15", true},
		{"2024-12-01", true},
		{"15/03/2024", false},
		{"2024-13-01", false},
		{"not-a-date", false},
		{"", false},
	}
	for _, tc := range cases {
		d, err := ParseDate(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("%q expected ok, got %v", tc.in, err)
			}
			if d.String() != tc.in {
				t.Fatalf("%q round-trip gave %q", tc.in, d.String())
			}
		} else if err == nil {
			t.Fatalf("%q expected error", tc.in)
		}
	}
}

func TestDateComparisons(t *testing.T) {
	a := NewDate(2024, 3, 15)
	b := NewDate(2024, 3, 15)
	c := NewDate(2024, 3, 16)
	d := NewDate(2024, 4, 15)

	if !a.SameDay(b) {
		t.Fatal("same dates should compare SameDay")
	}
	if a.SameDay(c) {
		t.Fatal("different days should not compare SameDay")
	}
	if !a.SameMonth(c) {
		t.Fatal("same month should compare SameMonth")
	}
	if a.SameMonth(d) {
		t.Fatal("different months should not compare SameMonth")
	}
}

func TestDateOfNormalizesTimeOfDay(t *testing.T) {
	instant := time.Date(2024, 3, 15, 23, 59, 58, 0, time.Local)
	d := DateOf(instant)
	if d.Year() != 2024 || int(d.Month()) != 3 || d.Day() != 15 {
		t.Fatalf("expected 2024-03-15, got %s", d.String())
	}
	if !d.SameDay(NewDate(2024, 3, 15)) {
		t.Fatal("normalized date should equal plain calendar date")
	}
}

func TestParseSource(t *testing.T) {
	for _, src := range Sources() {
		parsed, err := ParseSource(string(src))
		if err != nil {
			t.Fatalf("valid tag %q rejected: %v", src, err)
		}
		if parsed != src {
			t.Fatalf("tag %q parsed as %q", src, parsed)
		}
	}

	for _, bad := range []string{"", "vendas", "Curso", "info produto"} {
		if _, err := ParseSource(bad); err == nil {
			t.Fatalf("tag %q expected error", bad)
		}
	}
}

func TestSourceTables(t *testing.T) {
	// Every tag in the closed set has a label and a color class.
	for _, src := range Sources() {
		if src.Label() == "" || src.Label() == string(src) {
			t.Fatalf("tag %q missing label", src)
		}
		if src.ColorClass() == "" {
			t.Fatalf("tag %q missing color class", src)
		}
	}
	// Unknown tags fall back instead of panicking.
	unknown := Source("desconhecido")
	if unknown.Label() != "desconhecido" {
		t.Fatalf("unknown label fallback gave %q", unknown.Label())
	}
	if unknown.ColorClass() != SourceOther.ColorClass() {
		t.Fatalf("unknown color fallback gave %q", unknown.ColorClass())
	}
}

func TestSaleValidate(t *testing.T) {
	good := Sale{
		ID:     "abc",
		Value:  Money{Cents: 100},
		Source: SourceCourse,
		Date:   NewDate(2024, 3, 15),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Sale{
		{ID: "", Value: Money{Cents: 100}, Source: SourceCourse, Date: NewDate(2024, 3, 15)},
		{ID: "a", Value: Money{Cents: 0}, Source: SourceCourse, Date: NewDate(2024, 3, 15)},
		{ID: "a", Value: Money{Cents: -5}, Source: SourceCourse, Date: NewDate(2024, 3, 15)},
		{ID: "a", Value: Money{Cents: 100}, Source: "mercado", Date: NewDate(2024, 3, 15)},
		{ID: "a", Value: Money{Cents: 100}, Source: SourceCourse, Date: Date{}},
	}
	for i, s := range bads {
		if err := s.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}
