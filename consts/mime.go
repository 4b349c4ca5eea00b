package consts

const (
	MIMETextPlain = "text/plain"
	MIMEJSON      = "application/json"
	MIMEHTML      = "text/html"
)

const (
	MIMETextPlainUTF8 = MIMETextPlain + "; charset=utf-8"
	MIMEHTMLUTF8      = MIMEHTML + "; charset=utf-8"
)
