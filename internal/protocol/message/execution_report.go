package message

import (
	"github.com/danmuck/lsewire/internal/protocol/enum"
	"github.com/danmuck/lsewire/internal/protocol/field"
	"github.com/danmuck/lsewire/internal/protocol/render"
)

const (
	TypeExecutionReport byte = '8'
	ExecutionReportSize      = 142
)

// ExecutionReport reports an order state change or a fill.
type ExecutionReport struct {
	Header                  Header
	AppID                   field.UInt8
	SequenceNo              field.Int32
	ExecutionID             field.Text
	ClientOrderID           field.Text
	OrderID                 field.Text
	ExecType                enum.ExecType
	ExecutionReportRefID    field.Text
	OrderStatus             enum.OrderStatus
	OrderRejectCode         field.Int32
	ExecutedPrice           field.Price
	ExecutedQty             field.Int32
	LeavesQty               field.Int32
	WaiverFlags             field.Bitfield
	DisplayQty              field.Int32
	InstrumentID            field.Int32
	RestatementReason       field.Int8
	Side                    enum.Side
	Counterparty            field.Text
	TradeLiquidityIndicator field.Alpha
	TradeMatchID            field.UInt64
	TransactTime            field.TransactionTime
	TypeOfTrade             enum.TradeType
	Capacity                enum.Capacity
	PriceDifferential       field.Alpha
	PublicOrderID           field.Text
	LastMarket              enum.LastMarket
}

func NewExecutionReport() *ExecutionReport {
	m := &ExecutionReport{
		ExecutionID:          field.NewText(12),
		ClientOrderID:        field.NewText(20),
		OrderID:              field.NewText(12),
		ExecutionReportRefID: field.NewText(12),
		Counterparty:         field.NewText(11),
		PublicOrderID:        field.NewText(12),
	}
	m.Header = NewHeader(SizeOf(m.Fields()), TypeExecutionReport)
	return m
}

func (*ExecutionReport) Name() string { return "ExecutionReport" }

func (*ExecutionReport) MessageType() byte { return TypeExecutionReport }

func (m *ExecutionReport) Fields() []Member {
	return []Member{
		{Name: "Header", Value: &m.Header},
		{Name: "AppId", Value: &m.AppID},
		{Name: "SequenceNo", Value: &m.SequenceNo},
		{Name: "ExecutionId", Value: &m.ExecutionID},
		{Name: "ClientOrderId", Value: &m.ClientOrderID},
		{Name: "OrderId", Value: &m.OrderID},
		{Name: "ExecType", Value: &m.ExecType},
		{Name: "ExecutionReportRefId", Value: &m.ExecutionReportRefID},
		{Name: "OrderStatus", Value: &m.OrderStatus},
		{Name: "OrderRejectCode", Value: &m.OrderRejectCode},
		{Name: "ExecutedPrice", Value: &m.ExecutedPrice},
		{Name: "ExecutedQty", Value: &m.ExecutedQty},
		{Name: "LeavesQty", Value: &m.LeavesQty},
		{Name: "WaiverFlags", Value: &m.WaiverFlags},
		{Name: "DisplayQty", Value: &m.DisplayQty},
		{Name: "InstrumentId", Value: &m.InstrumentID},
		{Name: "RestatementReason", Value: &m.RestatementReason},
		{Name: "Side", Value: &m.Side},
		{Name: "Counterparty", Value: &m.Counterparty},
		{Name: "TradeLiquidityIndicator", Value: &m.TradeLiquidityIndicator},
		{Name: "TradeMatchId", Value: &m.TradeMatchID},
		{Name: "TransactTime", Value: &m.TransactTime},
		{Name: "TypeOfTrade", Value: &m.TypeOfTrade},
		{Name: "Capacity", Value: &m.Capacity},
		{Name: "PriceDifferential", Value: &m.PriceDifferential},
		{Name: "PublicOrderId", Value: &m.PublicOrderID},
		{Name: "LastMarket", Value: &m.LastMarket},
	}
}

func (m *ExecutionReport) String() string           { return render.Stream(m.Name(), m.Fields()) }
func (m *ExecutionReport) JSON(verbose bool) string { return render.Object(m.Fields(), verbose) }
func (*ExecutionReport) IsNull() bool               { return false }
func (m *ExecutionReport) Size() int                { return SizeOf(m.Fields()) }
func (m *ExecutionReport) Encode(b []byte) int      { return encodeFields(b, m.Fields()) }
func (m *ExecutionReport) Decode(b []byte) int      { return decodeFields(b, m.Fields()) }
