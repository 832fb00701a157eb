package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/emicklei/go-restful"
	"github.com/shopspring/decimal"
	"github.com/wunderlist/ttlcache"

	"github.com/clarel-c/go-mydex/exchange"
	"github.com/clarel-c/go-mydex/exchange/op"
	"github.com/clarel-c/go-mydex/log"
	"github.com/clarel-c/go-mydex/mydexpb"
	"github.com/clarel-c/go-mydex/order"
	"github.com/clarel-c/go-mydex/token"
)

// Hub serves the exchange operations over JSON.
type Hub struct {
	ex     *exchange.Manager
	tokens *token.Registry

	// TTL cache of token decimal precisions, metadata queries go to
	// the external contract and rarely change.
	decimals *ttlcache.Cache
}

func NewHub(ex *exchange.Manager, tokens *token.Registry) *Hub {
	return &Hub{
		ex:       ex,
		tokens:   tokens,
		decimals: ttlcache.NewCache(10 * time.Minute),
	}
}

// display renders the amount in display units of the token, an
// empty string when the precision cannot be resolved.
func (h *Hub) display(tokenID string, amount int64) string {
	dec, ok := h.decimals.Get(tokenID)
	if !ok {
		contract, err := h.tokens.Get(tokenID)
		if err != nil {
			return ""
		}
		d, err := contract.Decimals()
		if err != nil {
			return ""
		}
		dec = strconv.Itoa(int(d))
		h.decimals.Set(tokenID, dec)
	}
	d, err := strconv.Atoi(dec)
	if err != nil {
		return ""
	}
	return decimal.New(amount, -int32(d)).String()
}

func writeError(response *restful.Response, err error) {
	var code int
	switch err {
	case order.ErrOrderNotExist, token.ErrTokenNotExist:
		code = http.StatusNotFound
	case op.ErrNotAuthorized:
		code = http.StatusForbidden
	case op.ErrOrderFinalized:
		code = http.StatusConflict
	case op.ErrInsufficientBalance, op.ErrCreatorInsufficientBalance, exchange.ErrTokenTransferFailed:
		code = http.StatusUnprocessableEntity
	case op.ErrInvalidAmount, op.ErrInvalidToken, op.ErrInvalidAccountID:
		code = http.StatusBadRequest
	default:
		code = http.StatusInternalServerError
	}
	response.WriteHeaderAndEntity(code, ErrorResponse{Error: err.Error()})
}

// Deposit moves tokens into custody and credits the account.
func (h *Hub) Deposit(request *restful.Request, response *restful.Response) {
	req := new(TransferRequest)
	if err := request.ReadEntity(req); err != nil {
		response.WriteHeaderAndEntity(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.ex.Deposit(req.Token, req.AccountID, req.Amount); err != nil {
		writeError(response, err)
		return
	}

	balance, err := h.ex.Balance(req.Token, req.AccountID)
	if err != nil {
		writeError(response, err)
		return
	}

	response.WriteEntity(&TransferResponse{
		Token:     req.Token,
		AccountID: req.AccountID,
		Amount:    req.Amount,
		Balance:   balance,
		Display:   h.display(req.Token, balance),
	})
}

// Withdraw debits the account and pays the tokens back out.
func (h *Hub) Withdraw(request *restful.Request, response *restful.Response) {
	req := new(TransferRequest)
	if err := request.ReadEntity(req); err != nil {
		response.WriteHeaderAndEntity(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.ex.Withdraw(req.Token, req.AccountID, req.Amount); err != nil {
		writeError(response, err)
		return
	}

	balance, err := h.ex.Balance(req.Token, req.AccountID)
	if err != nil {
		writeError(response, err)
		return
	}

	response.WriteEntity(&TransferResponse{
		Token:     req.Token,
		AccountID: req.AccountID,
		Amount:    req.Amount,
		Balance:   balance,
		Display:   h.display(req.Token, balance),
	})
}

// MakeOrder creates a standing order and returns it with the
// assigned ID.
func (h *Hub) MakeOrder(request *restful.Request, response *restful.Response) {
	req := new(OrderRequest)
	if err := request.ReadEntity(req); err != nil {
		response.WriteHeaderAndEntity(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	orderID, err := h.ex.MakeOrder(req.Creator, req.BuyToken, req.BuyAmount, req.SellToken, req.SellAmount)
	if err != nil {
		writeError(response, err)
		return
	}

	ord, err := h.ex.GetOrder(orderID)
	if err != nil {
		writeError(response, err)
		return
	}

	response.WriteHeaderAndEntity(http.StatusCreated, h.orderResponse(ord))
}

// GetOrder returns the order with the given ID.
func (h *Hub) GetOrder(request *restful.Request, response *restful.Response) {
	orderID, err := strconv.ParseUint(request.PathParameter("id"), 10, 64)
	if err != nil {
		response.WriteHeaderAndEntity(http.StatusBadRequest, ErrorResponse{Error: "invalid order ID"})
		return
	}

	ord, err := h.ex.GetOrder(orderID)
	if err != nil {
		writeError(response, err)
		return
	}

	response.WriteEntity(h.orderResponse(ord))
}

// CancelOrder voids an open order of the caller.
func (h *Hub) CancelOrder(request *restful.Request, response *restful.Response) {
	orderID, err := strconv.ParseUint(request.PathParameter("id"), 10, 64)
	if err != nil {
		response.WriteHeaderAndEntity(http.StatusBadRequest, ErrorResponse{Error: "invalid order ID"})
		return
	}

	req := new(CancelRequest)
	if err := request.ReadEntity(req); err != nil {
		response.WriteHeaderAndEntity(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.ex.CancelOrder(req.Caller, orderID); err != nil {
		writeError(response, err)
		return
	}

	ord, err := h.ex.GetOrder(orderID)
	if err != nil {
		writeError(response, err)
		return
	}

	response.WriteEntity(h.orderResponse(ord))
}

// FillOrder settles an open order on behalf of the executor.
func (h *Hub) FillOrder(request *restful.Request, response *restful.Response) {
	orderID, err := strconv.ParseUint(request.PathParameter("id"), 10, 64)
	if err != nil {
		response.WriteHeaderAndEntity(http.StatusBadRequest, ErrorResponse{Error: "invalid order ID"})
		return
	}

	req := new(FillRequest)
	if err := request.ReadEntity(req); err != nil {
		response.WriteHeaderAndEntity(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.ex.FillOrder(req.Executor, orderID); err != nil {
		writeError(response, err)
		return
	}

	ord, err := h.ex.GetOrder(orderID)
	if err != nil {
		writeError(response, err)
		return
	}

	response.WriteEntity(h.orderResponse(ord))
}

// Balance returns the custody balance of an account in a token.
func (h *Hub) Balance(request *restful.Request, response *restful.Response) {
	tokenID := request.QueryParameter("token")
	accountID := request.QueryParameter("account")
	if tokenID == "" || accountID == "" {
		response.WriteHeaderAndEntity(http.StatusBadRequest, ErrorResponse{Error: "token and account are required"})
		return
	}

	balance, err := h.ex.Balance(tokenID, accountID)
	if err != nil {
		writeError(response, err)
		return
	}

	response.WriteEntity(&BalanceResponse{
		Token:     tokenID,
		AccountID: accountID,
		Amount:    balance,
		Display:   h.display(tokenID, balance),
	})
}

// Events replays a range of the event log, optionally restricted
// to a comma separated list of types.
func (h *Hub) Events(request *restful.Request, response *restful.Response) {
	var kinds []mydexpb.EventType
	if types := request.QueryParameter("types"); types != "" {
		for _, name := range strings.Split(types, ",") {
			t, ok := mydexpb.EventType_value[strings.ToUpper(strings.TrimSpace(name))]
			if !ok {
				response.WriteHeaderAndEntity(http.StatusBadRequest, ErrorResponse{Error: "unknown event type " + name})
				return
			}
			kinds = append(kinds, mydexpb.EventType(t))
		}
	}

	var fromSeq, toSeq uint64
	var err error
	if from := request.QueryParameter("from"); from != "" {
		if fromSeq, err = strconv.ParseUint(from, 10, 64); err != nil {
			response.WriteHeaderAndEntity(http.StatusBadRequest, ErrorResponse{Error: "invalid from sequence"})
			return
		}
	}
	if to := request.QueryParameter("to"); to != "" {
		if toSeq, err = strconv.ParseUint(to, 10, 64); err != nil {
			response.WriteHeaderAndEntity(http.StatusBadRequest, ErrorResponse{Error: "invalid to sequence"})
			return
		}
	}

	it := h.ex.Events(kinds, fromSeq, toSeq)

	events := []*EventResponse{}
	for {
		event, err := it.Next()
		if err != nil {
			log.Errorf("event log query failed: %v", err)
			writeError(response, err)
			return
		}
		if event == nil {
			break
		}
		events = append(events, h.eventResponse(event))
	}

	response.WriteEntity(events)
}

func (h *Hub) orderResponse(ord *mydexpb.Order) *OrderResponse {
	return &OrderResponse{
		OrderID:           ord.OrderID,
		Creator:           ord.Creator,
		BuyToken:          ord.BuyToken,
		BuyAmount:         ord.BuyAmount,
		BuyAmountDisplay:  h.display(ord.BuyToken, ord.BuyAmount),
		SellToken:         ord.SellToken,
		SellAmount:        ord.SellAmount,
		SellAmountDisplay: h.display(ord.SellToken, ord.SellAmount),
		Timestamp:         ord.Timestamp,
		Status:            ord.Status.String(),
	}
}

func (h *Hub) eventResponse(event *mydexpb.Event) *EventResponse {
	resp := &EventResponse{
		SeqNum:    event.SeqNum,
		Type:      event.Type.String(),
		Timestamp: event.Timestamp,
	}
	if event.Transfer != nil {
		resp.Transfer = &TransferEntry{
			Token:     event.Transfer.Token,
			AccountID: event.Transfer.AccountID,
			Amount:    event.Transfer.Amount,
			Balance:   event.Transfer.Balance,
		}
	}
	if event.Order != nil {
		resp.Order = h.orderResponse(event.Order)
	}
	if event.Trade != nil {
		resp.Trade = &TradeEntry{
			OrderID:    event.Trade.OrderID,
			Executor:   event.Trade.Executor,
			BuyToken:   event.Trade.BuyToken,
			BuyAmount:  event.Trade.BuyAmount,
			SellToken:  event.Trade.SellToken,
			SellAmount: event.Trade.SellAmount,
			Initiator:  event.Trade.Initiator,
			Fee:        event.Trade.Fee,
		}
	}
	return resp
}
