package cache

import "fmt"

// Cache key builders. Keeping them in one place makes invalidation patterns
// greppable.

const keyPrefix = "eventuraa"

func VenueKey(venueID string) string {
	return fmt.Sprintf("%s:venue:%s", keyPrefix, venueID)
}

func VenueListKey(page, limit int, search, approval string) string {
	return fmt.Sprintf("%s:venues:p%d:l%d:s%s:a%s", keyPrefix, page, limit, search, approval)
}

func VenueListPattern() string {
	return keyPrefix + ":venues:*"
}

func EventKey(eventID string) string {
	return fmt.Sprintf("%s:event:%s", keyPrefix, eventID)
}

func EventListPattern() string {
	return keyPrefix + ":events:*"
}

func EventListKey(page, limit int, status string) string {
	return fmt.Sprintf("%s:events:p%d:l%d:st%s", keyPrefix, page, limit, status)
}
