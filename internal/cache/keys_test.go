package cache

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type listingFilter struct {
	City     string `json:"city"`
	Guests   int    `json:"guests"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}

func TestKeyJoinsParts(t *testing.T) {
	assert.Equal(t, "properties:42:images", Key("properties", "42", "images"))
}

func TestEntityKey(t *testing.T) {
	assert.Equal(t, "guests:42", EntityKey("guests", "42"))
	assert.Equal(t, "hosts:7f1c", EntityKey("hosts", "7f1c"))
}

func TestStatsKey(t *testing.T) {
	assert.Equal(t, "bookings:stats", StatsKey("bookings"))
}

func TestListKeyIsDeterministic(t *testing.T) {
	a := ListKey("properties", listingFilter{City: "Lisbon", Guests: 2, Page: 1, PageSize: 20})
	b := ListKey("properties", listingFilter{City: "Lisbon", Guests: 2, Page: 1, PageSize: 20})
	assert.Equal(t, a, b, "equal filters must map to the same key")

	c := ListKey("properties", listingFilter{City: "Lisbon", Guests: 2, Page: 2, PageSize: 20})
	assert.NotEqual(t, a, c, "different filters must map to different keys")
}

func TestListKeyNilFilter(t *testing.T) {
	assert.Equal(t, "properties:list:{}", ListKey("properties", nil))
}

func TestListKeySharesListPrefix(t *testing.T) {
	key := ListKey("properties", listingFilter{City: "Porto"})
	assert.True(t, strings.HasPrefix(key, ListPrefix("properties")))
	assert.Equal(t, "properties:list:", ListPrefix("properties"))
}
