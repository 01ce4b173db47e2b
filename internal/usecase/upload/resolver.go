package upload

// ProxyBasePath is where the image proxy endpoint is mounted. Keys
// resolve to same-origin URLs under it because the blob store rejects
// anonymous reads and cannot be linked to directly.
const ProxyBasePath = "/v1/images/"

// ResolveURL maps a stored object key to a browser-fetchable URL.
// An empty key resolves to "".
func ResolveURL(key string) string {
	if key == "" {
		return ""
	}

	return ProxyBasePath + key
}
