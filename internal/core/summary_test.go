package core

import "testing"

func TestMonthBucketLabels(t *testing.T) {
	tests := []struct {
		bucket    MonthBucket
		label     string
		fullLabel string
	}{
		{MonthBucket{Year: 2024, Month: 1}, "jan", "janeiro de 2024"},
		{MonthBucket{Year: 2024, Month: 3}, "mar", "março de 2024"},
		{MonthBucket{Year: 2023, Month: 12}, "dez", "dezembro de 2023"},
		{MonthBucket{Year: 2024, Month: 0}, "", ""},
		{MonthBucket{Year: 2024, Month: 13}, "", ""},
	}
	for _, tt := range tests {
		if got := tt.bucket.Label(); got != tt.label {
			t.Errorf("Label(%d) = %q, want %q", tt.bucket.Month, got, tt.label)
		}
		if got := tt.bucket.FullLabel(); got != tt.fullLabel {
			t.Errorf("FullLabel(%d) = %q, want %q", tt.bucket.Month, got, tt.fullLabel)
		}
	}
}
