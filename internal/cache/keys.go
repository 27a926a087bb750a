package cache

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Separator joins the segments of every cache key
const Separator = ":"

// Key joins parts into a cache key: Key("properties", "42", "images")
// returns "properties:42:images".
func Key(parts ...string) string {
	return strings.Join(parts, Separator)
}

// EntityKey builds the canonical key for a single entity of a resource,
// e.g. EntityKey("guests", "42") returns "guests:42".
func EntityKey(resource, id string) string {
	return resource + Separator + id
}

// ListKey builds the key for a filtered listing. The filter is
// serialized to JSON, which is deterministic for struct values, so
// equal filters always produce the same key.
func ListKey(resource string, filter interface{}) string {
	return ListPrefix(resource) + encodeFilter(filter)
}

// ListPrefix returns the prefix shared by every list key of a resource,
// suitable for DeletePattern.
func ListPrefix(resource string) string {
	return resource + Separator + "list" + Separator
}

// StatsKey builds the key for aggregate statistics of a resource
func StatsKey(resource string) string {
	return resource + Separator + "stats"
}

func encodeFilter(filter interface{}) string {
	if filter == nil {
		return "{}"
	}
	data, err := json.Marshal(filter)
	if err != nil {
		// Filters are plain structs; Marshal only fails on exotic types.
		return fmt.Sprintf("%+v", filter)
	}
	return string(data)
}
