//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a request payload decoded into a generic JSON object.
type Mutation func(m map[string]any)

// DtoMap decodes v into a JSON object so tests can send payloads the DTO types cannot express.
func DtoMap(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))

	for _, f := range muts {
		f(m)
	}
	return m
}

// Field sets the value at a dotted path such as "venue.latitude",
// creating intermediate objects. A nil value removes the key.
func Field(path string, value any) Mutation {
	return func(m map[string]any) {
		keys := strings.Split(path, ".")
		for _, k := range keys[:len(keys)-1] {
			next, ok := m[k].(map[string]any)
			if !ok {
				next = map[string]any{}
				m[k] = next
			}
			m = next
		}

		last := keys[len(keys)-1]
		if value == nil {
			delete(m, last)
			return
		}
		m[last] = value
	}
}

// Chain applies several mutations in order.
func Chain(muts ...Mutation) Mutation {
	return func(m map[string]any) {
		for _, f := range muts {
			f(m)
		}
	}
}
