package cache

import "fmt"

// GenerateKeyWithParams creates a cache key from a prefix and parameters.
// Used to key memoized quote results by contract parameters.
func GenerateKeyWithParams(prefix string, params ...interface{}) string {
	key := prefix
	for _, param := range params {
		key = fmt.Sprintf("%s:%v", key, param)
	}
	return key
}
