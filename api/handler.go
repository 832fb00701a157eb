package api

import (
	"net/http"

	"github.com/emicklei/go-restful"

	"github.com/clarel-c/go-mydex/exchange"
	"github.com/clarel-c/go-mydex/token"
)

// NewHandler creates the http handler of the exchange node.
func NewHandler(ex *exchange.Manager, tokens *token.Registry) http.Handler {
	hub := NewHub(ex, tokens)

	ws := new(restful.WebService)
	ws.Path("/mydex").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)
	ws.Route(ws.POST("/deposits").To(hub.Deposit))
	ws.Route(ws.POST("/withdrawals").To(hub.Withdraw))
	ws.Route(ws.POST("/orders").To(hub.MakeOrder))
	ws.Route(ws.GET("/orders/{id}").To(hub.GetOrder))
	ws.Route(ws.POST("/orders/{id}/cancel").To(hub.CancelOrder))
	ws.Route(ws.POST("/orders/{id}/fill").To(hub.FillOrder))
	ws.Route(ws.GET("/balances").To(hub.Balance))
	ws.Route(ws.GET("/events").To(hub.Events))

	container := restful.NewContainer()
	container.Add(ws)

	return container
}
