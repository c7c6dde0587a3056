package getter

// SourceURL constructs a go-getter URL for a catalog file inside a repository.
//
// The double-slash separates the repository from the file path, which is
// native go-getter syntax. For example:
//
//	SourceURL("github.com/acme/mirrors", "npm/registries.json", "v1.2.0")
//	→ "github.com/acme/mirrors//npm/registries.json?ref=v1.2.0"
func SourceURL(baseURL, subpath, ref string) string {
	url := baseURL

	if subpath != "" {
		url += "//" + subpath
	}

	if ref != "" {
		url += "?ref=" + ref
	}

	return url
}
