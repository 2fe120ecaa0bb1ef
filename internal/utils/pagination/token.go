package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const dateFormat = "2006-01-02"

// EncodeToken creates a base64 encoded cursor from the last row's effective date and ID.
// Listings order by (effective_date DESC, id DESC), so the pair is unique and stable.
func EncodeToken(effectiveDate time.Time, id string) string {
	tokenStr := fmt.Sprintf("%s|%s", effectiveDate.Format(dateFormat), id)
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses the base64 encoded token back into effective date and ID.
func DecodeToken(token string) (time.Time, string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (split)")
	}

	effectiveDate, err := time.Parse(dateFormat, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}

	return effectiveDate, parts[1], nil
}

// After reports whether a row sorts after the cursor in (date DESC, id DESC) order.
func After(effectiveDate time.Time, id string, cursorDate time.Time, cursorID string) bool {
	if !effectiveDate.Equal(cursorDate) {
		return effectiveDate.Before(cursorDate)
	}
	return id < cursorID
}
