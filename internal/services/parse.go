package services

import (
	"strconv"
	"strings"
)

func trimmed(s string) string { return strings.TrimSpace(s) }

func parsePrice(s string) (float64, error) {
	return strconv.ParseFloat(trimmed(s), 64)
}
