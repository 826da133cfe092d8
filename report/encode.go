package report

import (
	"bytes"
	"encoding/base64"

	"github.com/fogleman/gg"
)

// encodePNG renders the context as PNG and returns it base64 encoded
func encodePNG(dc *gg.Context) (string, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
