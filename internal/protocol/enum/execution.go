package enum

// ExecType is the execution report event, carried as an ASCII character.
type ExecType uint8

const (
	ExecTypeNew         ExecType = '0'
	ExecTypeCanceled    ExecType = '4'
	ExecTypeReplaced    ExecType = '5'
	ExecTypeRejected    ExecType = '8'
	ExecTypeSuspended   ExecType = '9'
	ExecTypeExpired     ExecType = 'C'
	ExecTypeRestated    ExecType = 'D'
	ExecTypeTrade       ExecType = 'F'
	ExecTypeTradeCancel ExecType = 'H'
)

var ExecTypeVocabulary = newCharVocabulary("ExecType",
	Entry[ExecType]{ExecTypeNew, "New"},
	Entry[ExecType]{ExecTypeCanceled, "Canceled"},
	Entry[ExecType]{ExecTypeReplaced, "Replaced"},
	Entry[ExecType]{ExecTypeRejected, "Rejected"},
	Entry[ExecType]{ExecTypeExpired, "Expired"},
	Entry[ExecType]{ExecTypeRestated, "Restated"},
	Entry[ExecType]{ExecTypeTrade, "Trade"},
	Entry[ExecType]{ExecTypeTradeCancel, "TradeCancel"},
	Entry[ExecType]{ExecTypeSuspended, "Suspended"},
)

func (e ExecType) Valid() bool              { return ExecTypeVocabulary.Known(e) }
func (e ExecType) String() string           { return ExecTypeVocabulary.Stream(e) }
func (e ExecType) JSON(verbose bool) string { return ExecTypeVocabulary.JSON(e, verbose) }
func (ExecType) IsNull() bool               { return false }
func (ExecType) Size() int                  { return 1 }
func (e ExecType) Encode(b []byte) int      { return encodeCode(b, e) }
func (e *ExecType) Decode(b []byte) int     { return decodeCode(b, e) }

// LastMarket identifies the market segment an execution occurred on.
type LastMarket uint8

const (
	LastMarketXLON LastMarket = 21
	LastMarketXLOM LastMarket = 22
	LastMarketAIMX LastMarket = 23
)

var LastMarketVocabulary = newVocabulary("LastMarket",
	Entry[LastMarket]{LastMarketXLON, "XLON"},
	Entry[LastMarket]{LastMarketXLOM, "XLOM"},
	Entry[LastMarket]{LastMarketAIMX, "AIMX"},
)

func (l LastMarket) Valid() bool              { return LastMarketVocabulary.Known(l) }
func (l LastMarket) String() string           { return LastMarketVocabulary.Stream(l) }
func (l LastMarket) JSON(verbose bool) string { return LastMarketVocabulary.JSON(l, verbose) }
func (LastMarket) IsNull() bool               { return false }
func (LastMarket) Size() int                  { return 1 }
func (l LastMarket) Encode(b []byte) int      { return encodeCode(b, l) }
func (l *LastMarket) Decode(b []byte) int     { return decodeCode(b, l) }

type TradeType uint8

const (
	TradeTypeVisible      TradeType = 0
	TradeTypeHidden       TradeType = 1
	TradeTypeNotSpecified TradeType = 2
)

var TradeTypeVocabulary = newVocabulary("TradeType",
	Entry[TradeType]{TradeTypeVisible, "Visible"},
	Entry[TradeType]{TradeTypeHidden, "Hidden"},
	Entry[TradeType]{TradeTypeNotSpecified, "NotSpecified"},
)

func (t TradeType) Valid() bool              { return TradeTypeVocabulary.Known(t) }
func (t TradeType) String() string           { return TradeTypeVocabulary.Stream(t) }
func (t TradeType) JSON(verbose bool) string { return TradeTypeVocabulary.JSON(t, verbose) }
func (TradeType) IsNull() bool               { return false }
func (TradeType) Size() int                  { return 1 }
func (t TradeType) Encode(b []byte) int      { return encodeCode(b, t) }
func (t *TradeType) Decode(b []byte) int     { return decodeCode(b, t) }

// OrderStatus is the order state reported with an execution.
type OrderStatus uint8

const (
	OrderStatusNew             OrderStatus = 0
	OrderStatusPartiallyFilled OrderStatus = 1
	OrderStatusFilled          OrderStatus = 2
	OrderStatusCanceled        OrderStatus = 4
	OrderStatusExpired         OrderStatus = 6
	OrderStatusRejected        OrderStatus = 8
	OrderStatusSuspended       OrderStatus = 9
)

var OrderStatusVocabulary = newVocabulary("LSEOrderStatus",
	Entry[OrderStatus]{OrderStatusNew, "New"},
	Entry[OrderStatus]{OrderStatusPartiallyFilled, "PartiallyFilled"},
	Entry[OrderStatus]{OrderStatusFilled, "Filled"},
	Entry[OrderStatus]{OrderStatusCanceled, "Canceled"},
	Entry[OrderStatus]{OrderStatusExpired, "Expired"},
	Entry[OrderStatus]{OrderStatusRejected, "Rejected"},
	Entry[OrderStatus]{OrderStatusSuspended, "Suspended"},
)

func (o OrderStatus) Valid() bool              { return OrderStatusVocabulary.Known(o) }
func (o OrderStatus) String() string           { return OrderStatusVocabulary.Stream(o) }
func (o OrderStatus) JSON(verbose bool) string { return OrderStatusVocabulary.JSON(o, verbose) }
func (OrderStatus) IsNull() bool               { return false }
func (OrderStatus) Size() int                  { return 1 }
func (o OrderStatus) Encode(b []byte) int      { return encodeCode(b, o) }
func (o *OrderStatus) Decode(b []byte) int     { return decodeCode(b, o) }
