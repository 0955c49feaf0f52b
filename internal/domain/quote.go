package domain

type QuoteStatus string

const (
	QuotePending   QuoteStatus = "pending"
	QuoteReviewed  QuoteStatus = "reviewed"
	QuoteContacted QuoteStatus = "contacted"
)

func ParseQuoteStatus(s string) (QuoteStatus, bool) {
	switch QuoteStatus(s) {
	case QuotePending, QuoteReviewed, QuoteContacted:
		return QuoteStatus(s), true
	default:
		return "", false
	}
}

// Quote is an estimate request. All survey fields are kept as the free-form
// strings the quote form submits them as.
type Quote struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	Phone         string      `json:"phone"`
	Address       string      `json:"address"`
	ServiceArea   string      `json:"serviceArea"`
	ServiceType   string      `json:"serviceType"`
	PropertyType  string      `json:"propertyType"`
	SquareFootage string      `json:"squareFootage"`
	Adults        string      `json:"adults"`
	Kids          string      `json:"kids"`
	Pets          string      `json:"pets"`
	ServiceLevel  string      `json:"serviceLevel"`
	Kitchens      string      `json:"kitchens"`
	FullBathrooms string      `json:"fullBathrooms"`
	HalfBathrooms string      `json:"halfBathrooms"`
	WalkInShowers string      `json:"walkInShowers"`
	LargeOvalTubs string      `json:"largeOvalTubs"`
	DoubleSinks   string      `json:"doubleSinks"`
	Basement      string      `json:"basement"`
	Dusting       string      `json:"dusting"`
	Comments      string      `json:"comments"`
	CreatedAt     string      `json:"createdAt"`
	Status        QuoteStatus `json:"status"`
}

// QuoteInput is the validated, already-defaulted create payload.
type QuoteInput struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	ServiceArea   string `json:"serviceArea"`
	ServiceType   string `json:"serviceType"`
	PropertyType  string `json:"propertyType"`
	SquareFootage string `json:"squareFootage"`
	Adults        string `json:"adults"`
	Kids          string `json:"kids"`
	Pets          string `json:"pets"`
	ServiceLevel  string `json:"serviceLevel"`
	Kitchens      string `json:"kitchens"`
	FullBathrooms string `json:"fullBathrooms"`
	HalfBathrooms string `json:"halfBathrooms"`
	WalkInShowers string `json:"walkInShowers"`
	LargeOvalTubs string `json:"largeOvalTubs"`
	DoubleSinks   string `json:"doubleSinks"`
	Basement      string `json:"basement"`
	Dusting       string `json:"dusting"`
	Comments      string `json:"comments"`
}
