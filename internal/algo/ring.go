package algo

// Pick is the Growing-Tree cell selection strategy.
type Pick int

const (
	PickNewest Pick = iota
	PickMiddle
	PickOldest
	PickRandom
	PickNewestMiddle
	PickNewestOldest
	PickNewestRandom
	PickMiddleOldest
	PickMiddleRandom
	PickOldestRandom

	pickCount
)

var pickNames = [pickCount][2]string{
	PickNewest:       {"Newest", "Newest"},
	PickMiddle:       {"Middle", "Middle"},
	PickOldest:       {"Oldest", "Oldest"},
	PickRandom:       {"Random", "Random"},
	PickNewestMiddle: {"Newest-Middle", "NewestMiddle"},
	PickNewestOldest: {"Newest-Oldest", "NewestOldest"},
	PickNewestRandom: {"Newest-Random", "NewestRandom"},
	PickMiddleOldest: {"Middle-Oldest", "MiddleOldest"},
	PickMiddleRandom: {"Middle-Random", "MiddleRandom"},
	PickOldestRandom: {"Oldest-Random", "OldestRandom"},
}

func (p Pick) Next() Pick { return (p + 1) % pickCount }
func (p Pick) Prev() Pick { return (p + pickCount - 1) % pickCount }

// HasRatio reports whether p mixes two strategies and so carries a ratio.
func (p Pick) HasRatio() bool { return p >= PickNewestMiddle && p < pickCount }

func (p Pick) String() string { return pickNames[p%pickCount][0] }
func (p Pick) Token() string  { return pickNames[p%pickCount][1] }

// Bias is the Binary-Tree carving direction.
type Bias int

const (
	NorthWest Bias = iota
	NorthEast
	SouthWest
	SouthEast

	biasCount
)

var biasNames = [biasCount][2]string{
	NorthWest: {"North-West", "NorthWest"},
	NorthEast: {"North-East", "NorthEast"},
	SouthWest: {"South-West", "SouthWest"},
	SouthEast: {"South-East", "SouthEast"},
}

func (b Bias) Next() Bias { return (b + 1) % biasCount }
func (b Bias) Prev() Bias { return (b + biasCount - 1) % biasCount }

func (b Bias) String() string { return biasNames[b%biasCount][0] }
func (b Bias) Token() string  { return biasNames[b%biasCount][1] }
