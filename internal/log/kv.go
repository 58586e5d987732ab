package log

import "sort"

// KV is a map of key-value pairs attached to a single log entry.
type KV map[string]any

// kvToArgs flattens the given KV maps into the alternating key, value
// slice that slog expects. Keys inside each map are emitted in sorted
// order so log output is deterministic.
func kvToArgs(keyVals ...KV) []any {
	args := []any{}

	for _, kv := range keyVals {
		keys := make([]string, 0, len(kv))
		for key := range kv {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			args = append(args, key, kv[key])
		}
	}

	return args
}

// kvToArgsNs is like kvToArgs but prepends the given namespace as the
// first key-value pair under the "ns" key.
func kvToArgsNs(namespace string, keyVals ...KV) []any {
	return append([]any{"ns", namespace}, kvToArgs(keyVals...)...)
}
