package impl

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Candidate paths, first present non-empty value wins.
var (
	resourceIDPaths = []string{"id", "order_id", "subscription_id", "resource_id", "data.id"}
	statusPaths     = []string{"status", "new_status", "order_status", "data.status"}
	emailPaths      = []string{"billing.email", "customer_email", "email", "customer.email", "data.billing.email"}
)

// webhookFields is what ingestion needs out of a shop payload.
type webhookFields struct {
	ResourceID string
	Status     string
	Email      string
}

// isPing matches the empty body, the form encoded "webhook_id=<n>" ping and a
// JSON object that carries nothing but webhook_id.
func isPing(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.HasPrefix(trimmed, []byte("webhook_id=")) {
		return true
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return false
	}
	_, ok := obj["webhook_id"]

	return ok && len(obj) == 1
}

// parsePayload decodes a JSON object, keeping numbers as literals.
func parsePayload(body []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, errNotAnObject
	}

	return payload, nil
}

func extractFields(payload map[string]any) webhookFields {
	return webhookFields{
		ResourceID: firstPresent(payload, resourceIDPaths),
		Status:     strings.ToLower(firstPresent(payload, statusPaths)),
		Email:      firstPresent(payload, emailPaths),
	}
}

func firstPresent(payload map[string]any, paths []string) string {
	for _, path := range paths {
		if v := scalarString(lookup(payload, path)); v != "" {
			return v
		}
	}

	return ""
}

// lookup walks a dotted path through nested objects.
func lookup(payload map[string]any, path string) any {
	var current any = payload
	for _, segment := range strings.Split(path, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		if current, ok = obj[segment]; !ok {
			return nil
		}
	}

	return current
}

// scalarString renders strings and numbers. Numbers never use exponent notation.
func scalarString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return strconv.FormatInt(i, 10)
		}
		if f, err := val.Float64(); err == nil {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}

		return val.String()
	default:
		return ""
	}
}
