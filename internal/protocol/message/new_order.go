package message

import (
	"github.com/danmuck/lsewire/internal/protocol/enum"
	"github.com/danmuck/lsewire/internal/protocol/field"
	"github.com/danmuck/lsewire/internal/protocol/render"
)

const (
	TypeNewOrder byte = 'D'
	NewOrderSize      = 125
)

// NewOrder submits an order.
type NewOrder struct {
	Header                  Header
	ClientOrderID           field.Text
	TraderID                field.Text
	Account                 field.Text
	ClearingAccount         enum.AccountType
	InstrumentID            field.Int32
	MifidFlags              field.Bitfield
	PartyRoleQualifiers     field.Bitfield
	OrderType               enum.OrderType
	TimeInForce             enum.TIF
	ExpireDateTime          field.ExpirationTime
	Side                    enum.Side
	OrderQty                field.Int32
	DisplayQty              field.Int32
	Price                   field.Price
	Capacity                enum.Capacity
	AutoCancel              field.UInt8
	OrderSubType            enum.OrderSubType
	Anonymity               enum.Anonymity
	StopPrice               field.Price
	PassiveOnlyOrder        enum.Passivity
	ClientID                field.Int32
	InvestmentDecisionMaker field.Int32
	GroupID                 field.UInt8
	MinimumQuantity         field.Int32
	ExecutingTrader         field.Int32
	Offset                  field.Int32
	Reserved                field.Text
}

func NewNewOrder() *NewOrder {
	m := &NewOrder{
		ClientOrderID: field.NewText(20),
		TraderID:      field.NewText(11),
		Account:       field.NewText(10),
		Reserved:      field.NewText(16),
	}
	m.Header = NewHeader(SizeOf(m.Fields()), TypeNewOrder)
	return m
}

func (*NewOrder) Name() string { return "NewOrder" }

func (*NewOrder) MessageType() byte { return TypeNewOrder }

func (m *NewOrder) Fields() []Member {
	return []Member{
		{Name: "Header", Value: &m.Header},
		{Name: "ClientOrderId", Value: &m.ClientOrderID},
		{Name: "TraderId", Value: &m.TraderID},
		{Name: "Account", Value: &m.Account},
		{Name: "ClearingAccount", Value: &m.ClearingAccount},
		{Name: "InstrumentId", Value: &m.InstrumentID},
		{Name: "MifidFlags", Value: &m.MifidFlags},
		{Name: "PartyRoleQualifiers", Value: &m.PartyRoleQualifiers},
		{Name: "OrderType", Value: &m.OrderType},
		{Name: "TimeInForce", Value: &m.TimeInForce},
		{Name: "ExpireDateTime", Value: &m.ExpireDateTime},
		{Name: "Side", Value: &m.Side},
		{Name: "OrderQty", Value: &m.OrderQty},
		{Name: "DisplayQty", Value: &m.DisplayQty},
		{Name: "Price", Value: &m.Price},
		{Name: "Capacity", Value: &m.Capacity},
		{Name: "AutoCancel", Value: &m.AutoCancel},
		{Name: "OrderSubType", Value: &m.OrderSubType},
		{Name: "Anonymity", Value: &m.Anonymity},
		{Name: "StopPrice", Value: &m.StopPrice},
		{Name: "PassiveOnlyOrder", Value: &m.PassiveOnlyOrder},
		{Name: "ClientId", Value: &m.ClientID},
		{Name: "InvestmentDecisionMaker", Value: &m.InvestmentDecisionMaker},
		{Name: "GroupId", Value: &m.GroupID},
		{Name: "MinimumQuantity", Value: &m.MinimumQuantity},
		{Name: "ExecutingTrader", Value: &m.ExecutingTrader},
		{Name: "Offset", Value: &m.Offset},
		{Name: "Reserved", Value: &m.Reserved},
	}
}

func (m *NewOrder) String() string           { return render.Stream(m.Name(), m.Fields()) }
func (m *NewOrder) JSON(verbose bool) string { return render.Object(m.Fields(), verbose) }
func (*NewOrder) IsNull() bool               { return false }
func (m *NewOrder) Size() int                { return SizeOf(m.Fields()) }
func (m *NewOrder) Encode(b []byte) int      { return encodeFields(b, m.Fields()) }
func (m *NewOrder) Decode(b []byte) int      { return decodeFields(b, m.Fields()) }
