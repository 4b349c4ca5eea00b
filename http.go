package rweb

import (
	"net/url"
	"slices"
	"strings"

	"github.com/rohanthewiz/rweb-i18n/consts"
)

// isValidRequestMethod returns true if the given string is a valid HTTP request method.
func isValidRequestMethod(method string) bool {
	return slices.Contains(consts.Methods, method)
}

// parseURL parses a URL and returns the scheme, host, path and query.
// The URL is expected to be in the format "scheme://host/path?query",
// or just "/path?query" as found in a request line.
// The path is percent-decoded, so /produ%C3%A7%C3%B5es matches /produções.
// A path with a malformed escape is kept as sent. The query stays raw.
func parseURL(rawURL string, keepTrailingSlashes bool) (scheme string, host string, path string, query string) {
	schemeEndPos := strings.Index(rawURL, consts.SchemeDelimiter)
	if schemeEndPos != -1 {
		scheme = rawURL[:schemeEndPos]
		rawURL = rawURL[schemeEndPos+len(consts.SchemeDelimiter):]

		// After a scheme everything up to the first slash is the host
		pathStartPos := strings.IndexByte(rawURL, consts.RuneFwdSlash)
		if pathStartPos == -1 {
			pathStartPos = len(rawURL)
		}
		host = rawURL[:pathStartPos]
		rawURL = rawURL[pathStartPos:]
	}

	queryPos := strings.IndexByte(rawURL, consts.RuneQuestion)
	if queryPos != -1 {
		path = rawURL[:queryPos]
		query = rawURL[queryPos+1:]
	} else {
		path = rawURL
	}

	if strings.IndexByte(path, consts.RunePercent) != -1 {
		if unescaped, err := url.PathUnescape(path); err == nil {
			path = unescaped
		}
	}

	if lnPath := len(path); lnPath == 0 {
		path = "/"
	} else if !keepTrailingSlashes && lnPath > 1 && path[lnPath-1] == consts.RuneFwdSlash {
		path = path[:lnPath-1]
	}

	if host == "" {
		host = consts.Localhost
	}

	return
}
