package http

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	defaultMonths = 3
	maxMonths     = 24
)

// parseMonths extracts the months window from the query string, defaulting
// to 3 and clamping to [1, 24].
func parseMonths(r *http.Request) int {
	months := defaultMonths
	if v := strings.TrimSpace(r.URL.Query().Get("months")); v != "" {
		if m, err := strconv.Atoi(v); err == nil {
			months = m
		}
	}
	if months < 1 {
		months = 1
	}
	if months > maxMonths {
		months = maxMonths
	}
	return months
}

// formatBRL formats cents as a Brazilian Real currency string
// (e.g. "R$ 1.234,56").
func formatBRL(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}
	reais := cents / 100
	rem := cents % 100

	digits := strconv.FormatInt(reais, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	s := fmt.Sprintf("R$ %s,%02d", b.String(), rem)
	if neg {
		return "-" + s
	}
	return s
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}
