package repository

import "fmt"

// KeyPrefix namespaces rating keys in a shared Redis.
const KeyPrefix = "parentsguide:rating:"

// ResultKey is the cache key of a content id.
func ResultKey(contentID string) string {
	return fmt.Sprintf("%s%s", KeyPrefix, contentID)
}
