package enum

// Side is the order side.
type Side uint8

const (
	SideBuy  Side = 1
	SideSell Side = 2
)

var SideVocabulary = newVocabulary("Side",
	Entry[Side]{SideBuy, "Buy"},
	Entry[Side]{SideSell, "Sell"},
)

func (s Side) Valid() bool              { return SideVocabulary.Known(s) }
func (s Side) String() string           { return SideVocabulary.Stream(s) }
func (s Side) JSON(verbose bool) string { return SideVocabulary.JSON(s, verbose) }
func (Side) IsNull() bool               { return false }
func (Side) Size() int                  { return 1 }
func (s Side) Encode(b []byte) int      { return encodeCode(b, s) }
func (s *Side) Decode(b []byte) int     { return decodeCode(b, s) }

// AccountType is the clearing account type.
type AccountType uint8

const (
	AccountTypeClient AccountType = 1
	AccountTypeHouse  AccountType = 3
)

var AccountTypeVocabulary = newVocabulary("AccountType",
	Entry[AccountType]{AccountTypeClient, "Client"},
	Entry[AccountType]{AccountTypeHouse, "House"},
)

func (a AccountType) Valid() bool              { return AccountTypeVocabulary.Known(a) }
func (a AccountType) String() string           { return AccountTypeVocabulary.Stream(a) }
func (a AccountType) JSON(verbose bool) string { return AccountTypeVocabulary.JSON(a, verbose) }
func (AccountType) IsNull() bool               { return false }
func (AccountType) Size() int                  { return 1 }
func (a AccountType) Encode(b []byte) int      { return encodeCode(b, a) }
func (a *AccountType) Decode(b []byte) int     { return decodeCode(b, a) }

// TIF is the order time in force.
type TIF uint8

const (
	TIFDay TIF = 0
	TIFIOC TIF = 3
	TIFFOK TIF = 4
	TIFOPG TIF = 5
	TIFGTD TIF = 6
	TIFGTT TIF = 8
	TIFATC TIF = 10
	TIFCPX TIF = 12
	TIFGFA TIF = 50
	TIFGFX TIF = 51
	TIFGFS TIF = 52
)

var TIFVocabulary = newVocabulary("TIF",
	Entry[TIF]{TIFDay, "DAY"},
	Entry[TIF]{TIFIOC, "IOC"},
	Entry[TIF]{TIFFOK, "FOK"},
	Entry[TIF]{TIFOPG, "OPG"},
	Entry[TIF]{TIFGTD, "GTD"},
	Entry[TIF]{TIFGTT, "GTT"},
	Entry[TIF]{TIFATC, "ATC"},
	Entry[TIF]{TIFCPX, "CPX"},
	Entry[TIF]{TIFGFA, "GFA"},
	Entry[TIF]{TIFGFX, "GFX"},
	Entry[TIF]{TIFGFS, "GFS"},
)

func (t TIF) Valid() bool              { return TIFVocabulary.Known(t) }
func (t TIF) String() string           { return TIFVocabulary.Stream(t) }
func (t TIF) JSON(verbose bool) string { return TIFVocabulary.JSON(t, verbose) }
func (TIF) IsNull() bool               { return false }
func (TIF) Size() int                  { return 1 }
func (t TIF) Encode(b []byte) int      { return encodeCode(b, t) }
func (t *TIF) Decode(b []byte) int     { return decodeCode(b, t) }

// OrderType is the order pricing type.
type OrderType uint8

const (
	OrderTypeMarket    OrderType = 1
	OrderTypeLimit     OrderType = 2
	OrderTypeStop      OrderType = 3
	OrderTypeStopLimit OrderType = 4
)

var OrderTypeVocabulary = newVocabulary("OrderType",
	Entry[OrderType]{OrderTypeMarket, "Market"},
	Entry[OrderType]{OrderTypeLimit, "Limit"},
	Entry[OrderType]{OrderTypeStop, "Stop"},
	Entry[OrderType]{OrderTypeStopLimit, "StopLimit"},
)

func (o OrderType) Valid() bool              { return OrderTypeVocabulary.Known(o) }
func (o OrderType) String() string           { return OrderTypeVocabulary.Stream(o) }
func (o OrderType) JSON(verbose bool) string { return OrderTypeVocabulary.JSON(o, verbose) }
func (OrderType) IsNull() bool               { return false }
func (OrderType) Size() int                  { return 1 }
func (o OrderType) Encode(b []byte) int      { return encodeCode(b, o) }
func (o *OrderType) Decode(b []byte) int     { return decodeCode(b, o) }

type OrderSubType uint8

const (
	OrderSubTypeOrder      OrderSubType = 0
	OrderSubTypeQuote      OrderSubType = 3
	OrderSubTypePegged     OrderSubType = 5
	OrderSubTypeRandomPeak OrderSubType = 51
	OrderSubTypeOffset     OrderSubType = 55
)

var OrderSubTypeVocabulary = newVocabulary("OrderSubType",
	Entry[OrderSubType]{OrderSubTypeOrder, "Order"},
	Entry[OrderSubType]{OrderSubTypeQuote, "Quote"},
	Entry[OrderSubType]{OrderSubTypePegged, "Pegged"},
	Entry[OrderSubType]{OrderSubTypeRandomPeak, "RandomPeak"},
	Entry[OrderSubType]{OrderSubTypeOffset, "Offset"},
)

func (o OrderSubType) Valid() bool              { return OrderSubTypeVocabulary.Known(o) }
func (o OrderSubType) String() string           { return OrderSubTypeVocabulary.Stream(o) }
func (o OrderSubType) JSON(verbose bool) string { return OrderSubTypeVocabulary.JSON(o, verbose) }
func (OrderSubType) IsNull() bool               { return false }
func (OrderSubType) Size() int                  { return 1 }
func (o OrderSubType) Encode(b []byte) int      { return encodeCode(b, o) }
func (o *OrderSubType) Decode(b []byte) int     { return decodeCode(b, o) }

// Capacity is the trading capacity of the order.
type Capacity uint8

const (
	CapacityMTCH Capacity = 1
	CapacityDEAL Capacity = 2
	CapacityAOTC Capacity = 3
)

var CapacityVocabulary = newVocabulary("Capacity",
	Entry[Capacity]{CapacityMTCH, "MTCH"},
	Entry[Capacity]{CapacityDEAL, "DEAL"},
	Entry[Capacity]{CapacityAOTC, "AOTC"},
)

func (c Capacity) Valid() bool              { return CapacityVocabulary.Known(c) }
func (c Capacity) String() string           { return CapacityVocabulary.Stream(c) }
func (c Capacity) JSON(verbose bool) string { return CapacityVocabulary.JSON(c, verbose) }
func (Capacity) IsNull() bool               { return false }
func (Capacity) Size() int                  { return 1 }
func (c Capacity) Encode(b []byte) int      { return encodeCode(b, c) }
func (c *Capacity) Decode(b []byte) int     { return decodeCode(b, c) }

type Anonymity uint8

const (
	AnonymityAnonymous Anonymity = 0
	AnonymityNamed     Anonymity = 1
)

var AnonymityVocabulary = newVocabulary("Anonymity",
	Entry[Anonymity]{AnonymityAnonymous, "Anonymous"},
	Entry[Anonymity]{AnonymityNamed, "Named"},
)

func (a Anonymity) Valid() bool              { return AnonymityVocabulary.Known(a) }
func (a Anonymity) String() string           { return AnonymityVocabulary.Stream(a) }
func (a Anonymity) JSON(verbose bool) string { return AnonymityVocabulary.JSON(a, verbose) }
func (Anonymity) IsNull() bool               { return false }
func (Anonymity) Size() int                  { return 1 }
func (a Anonymity) Encode(b []byte) int      { return encodeCode(b, a) }
func (a *Anonymity) Decode(b []byte) int     { return decodeCode(b, a) }

// Passivity constrains how an order may rest against the book.
type Passivity uint8

const (
	PassivityNoConstraint                        Passivity = 0
	PassivityAcceptIfNewOrExistingBBO            Passivity = 1
	PassivityAcceptIfAtBBOOrWithinOnePricePoint  Passivity = 2
	PassivityAcceptIfAtBBOOrWithinTwoPricePoints Passivity = 3
	PassivityAcceptIfNoMatch                     Passivity = 99
	PassivityAcceptIfNewBBO                      Passivity = 100
)

var PassivityVocabulary = newVocabulary("Passivity",
	Entry[Passivity]{PassivityNoConstraint, "NoConstraint"},
	Entry[Passivity]{PassivityAcceptIfNoMatch, "AcceptIfNoMatch"},
	Entry[Passivity]{PassivityAcceptIfNewBBO, "AcceptIfNewBBO"},
	Entry[Passivity]{PassivityAcceptIfNewOrExistingBBO, "AcceptIfNewOrExistingBBO"},
	Entry[Passivity]{PassivityAcceptIfAtBBOOrWithinOnePricePoint, "AcceptIfAtBBOOrWithinOnePricePoint"},
	Entry[Passivity]{PassivityAcceptIfAtBBOOrWithinTwoPricePoints, "AcceptIfAtBBOOrWithinTwoPricePoints"},
)

func (p Passivity) Valid() bool              { return PassivityVocabulary.Known(p) }
func (p Passivity) String() string           { return PassivityVocabulary.Stream(p) }
func (p Passivity) JSON(verbose bool) string { return PassivityVocabulary.JSON(p, verbose) }
func (Passivity) IsNull() bool               { return false }
func (Passivity) Size() int                  { return 1 }
func (p Passivity) Encode(b []byte) int      { return encodeCode(b, p) }
func (p *Passivity) Decode(b []byte) int     { return decodeCode(b, p) }
