package api

// TransferRequest is the payload of deposit and withdrawal calls.
type TransferRequest struct {
	Token     string `json:"token"`
	AccountID string `json:"account_id"`
	Amount    int64  `json:"amount"`
}

// TransferResponse reports the resulting custody balance.
type TransferResponse struct {
	Token     string `json:"token"`
	AccountID string `json:"account_id"`
	Amount    int64  `json:"amount"`
	Balance   int64  `json:"balance"`
	Display   string `json:"display,omitempty"`
}

// OrderRequest is the payload for creating an order.
type OrderRequest struct {
	Creator    string `json:"creator"`
	BuyToken   string `json:"buy_token"`
	BuyAmount  int64  `json:"buy_amount"`
	SellToken  string `json:"sell_token"`
	SellAmount int64  `json:"sell_amount"`
}

// CancelRequest identifies the account cancelling its order.
type CancelRequest struct {
	Caller string `json:"caller"`
}

// FillRequest identifies the account filling an order.
type FillRequest struct {
	Executor string `json:"executor"`
}

// OrderResponse is the JSON rendering of an order record.
type OrderResponse struct {
	OrderID           uint64 `json:"order_id"`
	Creator           string `json:"creator"`
	BuyToken          string `json:"buy_token"`
	BuyAmount         int64  `json:"buy_amount"`
	BuyAmountDisplay  string `json:"buy_amount_display,omitempty"`
	SellToken         string `json:"sell_token"`
	SellAmount        int64  `json:"sell_amount"`
	SellAmountDisplay string `json:"sell_amount_display,omitempty"`
	Timestamp         int64  `json:"timestamp"`
	Status            string `json:"status"`
}

// BalanceResponse is the JSON rendering of a custody balance.
type BalanceResponse struct {
	Token     string `json:"token"`
	AccountID string `json:"account_id"`
	Amount    int64  `json:"amount"`
	Display   string `json:"display,omitempty"`
}

// EventResponse is the JSON rendering of one event log record.
type EventResponse struct {
	SeqNum    uint64         `json:"seq_num"`
	Type      string         `json:"type"`
	Timestamp int64          `json:"timestamp"`
	Transfer  *TransferEntry `json:"transfer,omitempty"`
	Order     *OrderResponse `json:"order,omitempty"`
	Trade     *TradeEntry    `json:"trade,omitempty"`
}

// TransferEntry is the payload of deposit and withdraw events.
type TransferEntry struct {
	Token     string `json:"token"`
	AccountID string `json:"account_id"`
	Amount    int64  `json:"amount"`
	Balance   int64  `json:"balance"`
}

// TradeEntry is the payload of trade events.
type TradeEntry struct {
	OrderID    uint64 `json:"order_id"`
	Executor   string `json:"executor"`
	BuyToken   string `json:"buy_token"`
	BuyAmount  int64  `json:"buy_amount"`
	SellToken  string `json:"sell_token"`
	SellAmount int64  `json:"sell_amount"`
	Initiator  string `json:"initiator"`
	Fee        int64  `json:"fee"`
}

// ErrorResponse carries a failed call outcome.
type ErrorResponse struct {
	Error string `json:"error"`
}
