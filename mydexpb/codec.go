package mydexpb

import (
	"github.com/golang/protobuf/proto"
)

// Encode pb message to bytes.
func Encode(msg proto.Message) ([]byte, error) {
	b, err := proto.Marshal(msg)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Decode pb message to Balance.
func DecodeBalance(b []byte) (*Balance, error) {
	balance := &Balance{}
	if err := proto.Unmarshal(b, balance); err != nil {
		return nil, err
	}
	return balance, nil
}

// Decode pb message to Order.
func DecodeOrder(b []byte) (*Order, error) {
	order := &Order{}
	if err := proto.Unmarshal(b, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Decode pb message to Event.
func DecodeEvent(b []byte) (*Event, error) {
	event := &Event{}
	if err := proto.Unmarshal(b, event); err != nil {
		return nil, err
	}
	return event, nil
}
