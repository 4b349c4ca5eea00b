package rweb

import (
	"encoding/json"

	"github.com/rohanthewiz/rweb-i18n/consts"
)

// HTML sends the body with the content type set to `text/html`.
func HTML(ctx Context, body string) error {
	ctx.Response().SetHeader(consts.HeaderContentType, consts.MIMEHTMLUTF8)
	return ctx.WriteString(body)
}

// JSON encodes the object in JSON format and sends it with the content type set to `application/json`.
func JSON(ctx Context, object any) error {
	ctx.Response().SetHeader(consts.HeaderContentType, consts.MIMEJSON)
	return json.NewEncoder(ctx.Response()).Encode(object)
}

// Text sends the body with the content type set to `text/plain`.
func Text(ctx Context, body string) error {
	ctx.Response().SetHeader(consts.HeaderContentType, consts.MIMETextPlainUTF8)
	return ctx.WriteString(body)
}
