package serve

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (api *serveAPI) ServeIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", api.artifact.HTML)
}
