package shared

import (
	"net/url"

	"github.com/gofiber/fiber/v2/utils"
)

// Params is implemented by *fiber.Ctx and by *websocket.Conn.
type Params interface {
	Params(key string, defaultValue ...string) string
}

// PathParam returns the decoded path parameter. Route names are usually
// Japanese and arrive percent-encoded. The result is copied out of fasthttp's
// buffer so it can outlive the request.
func PathParam(c Params, key string) string {
	v := c.Params(key)
	if decoded, err := url.PathUnescape(v); err == nil {
		v = decoded
	}
	return utils.CopyString(v)
}
