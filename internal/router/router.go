package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	BeginCheckout(c *ginext.Context)
	GetCheckout(c *ginext.Context)
	Pay(c *ginext.Context)
	CancelCheckout(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		api.POST("/checkout", h.BeginCheckout)
		api.GET("/checkout", h.GetCheckout)
		api.POST("/checkout/pay", h.Pay)
		api.POST("/checkout/cancel", h.CancelCheckout)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
