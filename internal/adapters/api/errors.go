package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/bnema/snapfeed-cli/internal/domain"
)

// errorBody is the union of the error shapes the backend emits:
// {"error": "..."}, {"detail": "..."}, or a DRF field map.
type errorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

func newNetworkError(method, path string, err error) error {
	return &domain.NetworkError{Op: fmt.Sprintf("%s %s", method, path), Err: err}
}

// decodeAPIError maps a non-2xx response onto the domain taxonomy.
func decodeAPIError(status int, data []byte) error {
	message := extractMessage(data)

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &domain.AuthorizationError{Status: status, Message: message}
	case status == http.StatusConflict || (status == http.StatusBadRequest && message != ""):
		if reason, ok := classifyConflict(message); ok {
			return &domain.ConflictError{Reason: reason, Message: message}
		}
		return &domain.ValidationError{Message: message}
	case status == http.StatusBadRequest:
		if fields := extractFieldErrors(data); len(fields) > 0 {
			return &domain.ValidationError{Fields: fields}
		}
		return &domain.ValidationError{Message: "bad request"}
	default:
		if message == "" {
			message = http.StatusText(status)
		}
		return fmt.Errorf("server returned %d: %s", status, message)
	}
}

func extractMessage(data []byte) string {
	var body errorBody
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	if body.Error != "" {
		return body.Error
	}
	return body.Detail
}

func extractFieldErrors(data []byte) map[string][]string {
	var fields map[string][]string
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	return fields
}

// classifyConflict recognizes the business conflicts the relationship
// cache knows how to converge. Matching is by message substring because
// the backend distinguishes them only in prose.
func classifyConflict(message string) (domain.ConflictReason, bool) {
	lowered := strings.ToLower(message)
	switch {
	case strings.Contains(lowered, "yourself") || strings.Contains(lowered, "follow self"):
		return domain.ConflictSelfFollow, true
	case strings.Contains(lowered, "already following"):
		return domain.ConflictAlreadyFollowing, true
	case strings.Contains(lowered, "already sent") || strings.Contains(lowered, "already requested"):
		return domain.ConflictAlreadyRequested, true
	case strings.Contains(lowered, "not following") || strings.Contains(lowered, "no follow"):
		return domain.ConflictNotFollowing, true
	default:
		return domain.ConflictUnknown, false
	}
}
