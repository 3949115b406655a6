package middlewares

import (
	"unicode/utf8"

	"github.com/labstack/echo/v4"
)

// ExtractToken parses an Authorization header value into a bare session
// token. Both "<scheme> <token>" and a bare token are accepted: any value
// whose seventh byte is a space is treated as scheme-prefixed (e.g. "Bearer")
// and stripped, the scheme name itself is not validated. Values shorter than
// 6 bytes or containing invalid UTF-8 yield no token.
func ExtractToken(src []byte) (string, bool) {
	if len(src) < 6 {
		return "", false
	}

	token := src
	if len(src) > 6 && src[6] == ' ' {
		token = src[7:]
	}

	if !utf8.Valid(token) {
		return "", false
	}
	return string(token), true
}

func sessionToken(c echo.Context) (string, bool) {
	authorization := c.Request().Header.Get(echo.HeaderAuthorization)
	if authorization == "" {
		return "", false
	}
	return ExtractToken([]byte(authorization))
}
