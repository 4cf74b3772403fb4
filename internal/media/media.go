// Package media converts uploaded binaries into referenceable URL strings.
package media

import (
	"encoding/base64"
	"net/http"
)

// DataURL encodes an uploaded binary as a data: URL, sniffing the content
// type from the payload.
func DataURL(data []byte) string {
	mime := http.DetectContentType(data)
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
