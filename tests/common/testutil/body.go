//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Edit rewrites one field of a JSON request body before it is sent.
type Edit func(body map[string]any)

// Drop removes key, as a client that omits the field would.
func Drop(key string) Edit {
	return func(body map[string]any) { delete(body, key) }
}

func Set(key string, value any) Edit {
	return func(body map[string]any) { body[key] = value }
}

// Body round-trips a request DTO through JSON so tests can send shapes the DTO itself cannot express.
func Body(t *testing.T, dto any, edits ...Edit) map[string]any {
	t.Helper()

	raw, err := json.Marshal(dto)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	for _, edit := range edits {
		edit(body)
	}
	return body
}
