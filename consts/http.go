package consts

const (
	MethodGet     = "GET"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodPatch   = "PATCH"
	MethodDelete  = "DELETE"
	MethodHead    = "HEAD"
	MethodOptions = "OPTIONS"
	MethodConnect = "CONNECT"
	MethodTrace   = "TRACE"
)

// Methods lists every verb a route without explicit methods is registered for.
var Methods = []string{
	MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete,
	MethodHead, MethodOptions, MethodConnect, MethodTrace,
}

const (
	HTTP1           = "HTTP/1.1"
	CRLF            = "\r\n"
	SchemeDelimiter = "://"
	Localhost       = "localhost"

	ProtocolTCP = "tcp"

	HTTPBadRequest = "HTTP/1.1 400 Bad Request\r\n\r\n"
	HTTPBadMethod  = "HTTP/1.1 405 Method Not Allowed\r\n\r\n"
)

const (
	StatusOK               = 200
	StatusFound            = 302
	StatusNotFound         = 404
	StatusMethodNotAllowed = 405
)

const (
	HeaderContentType      = "Content-Type"
	HeaderContentLength    = "Content-Length"
	HeaderTransferEncoding = "Transfer-Encoding"
	HeaderLocation         = "Location"
	HeaderContentLang      = "Content-Language"
	HeaderAcceptLang       = "Accept-Language"
	HeaderUserAgent        = "User-Agent"
)

const (
	RuneColon       = ':'
	RuneAsterisk    = '*'
	RuneFwdSlash    = '/'
	RuneQuestion    = '?'
	RuneNewLine     = '\n'
	RuneSingleSpace = ' '
	RuneOpenBrace   = '{'
	RuneCloseBrace  = '}'
	RuneHyphen      = '-'
	RunePercent     = '%'
)
