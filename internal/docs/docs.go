// Package docs serves the OpenAPI document and a browsable Swagger UI.
package docs

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
	swgui "github.com/swaggest/swgui/v5cdn"
)

//go:embed openapi.yaml
var openapi []byte

func RegisterRoutes(router gin.IRouter) {
	ui := swgui.New("Daycare API", "/api/openapi.yaml", "/api")
	router.GET("/api", gin.WrapH(ui))
	router.GET("/api/openapi.yaml", serveSpec)
}

func serveSpec(c *gin.Context) {
	c.Data(http.StatusOK, "application/yaml", openapi)
}
