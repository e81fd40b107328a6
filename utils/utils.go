package utils

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"adwhey-portal/constants"
	"adwhey-portal/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// SessionIdentity is the caller identity decoded from the session token.
type SessionIdentity struct {
	UUID  string
	Email string
	Role  string
}

// IdentityFromContext reads the verified claims the auth middleware
// attached to the request.
func IdentityFromContext(c *fiber.Ctx) (*SessionIdentity, error) {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid user claims")
	}

	uuid, _ := claims["uuid"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if uuid == "" || email == "" {
		return nil, fmt.Errorf("session identity missing from token")
	}

	return &SessionIdentity{UUID: uuid, Email: email, Role: role}, nil
}

// ComposeMobile attaches the country's dial code to the local number:
// ("IN", "9876543210") -> "+91 9876543210". The stored mobile always
// carries its dial code prefix.
func ComposeMobile(country, localNumber string) (string, error) {
	entry, ok := constants.Countries[strings.ToUpper(country)]
	if !ok {
		return "", fmt.Errorf("country %q is not supported", country)
	}
	return entry.DialCode + " " + strings.TrimSpace(localNumber), nil
}

// Request-body fields that must never reach the request log.
var redactedFields = []string{"password", "new_password", "confirm_new_password", "otp", "code"}

// sanitizeRequestBody strips credential material from a JSON body before
// it is logged. Non-JSON bodies are passed through unchanged.
func sanitizeRequestBody(body []byte) string {
	var fields map[string]interface{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return string(body)
	}

	changed := false
	for _, key := range redactedFields {
		if _, ok := fields[key]; ok {
			fields[key] = "[REDACTED]"
			changed = true
		}
	}
	if !changed {
		return string(body)
	}

	if b, err := json.Marshal(fields); err == nil {
		return string(b)
	}
	return "[UNLOGGABLE_REQUEST_BODY]"
}

// CreateSanitizedLogEntry deep-copies the request/response snapshot for the
// async logger, with credentials redacted from the request body.
func CreateSanitizedLogEntry(c *fiber.Ctx) types.LogEntry {
	method := string([]byte(c.Method()))
	url := string([]byte(c.OriginalURL()))
	requestBody := sanitizeRequestBody(c.Body())
	responseBody := string(append([]byte(nil), c.Response().Body()...))

	requestHeaders := make([]byte, len(c.Request().Header.Header()))
	copy(requestHeaders, c.Request().Header.Header())

	responseHeaders := make([]byte, len(c.Response().Header.Header()))
	copy(responseHeaders, c.Response().Header.Header())

	return types.LogEntry{
		Method:          method,
		URL:             url,
		RequestBody:     requestBody,
		ResponseBody:    responseBody,
		RequestHeaders:  string(requestHeaders),
		ResponseHeaders: string(responseHeaders),
		StatusCode:      c.Response().StatusCode(),
		CreatedAt:       time.Now(),
	}
}
