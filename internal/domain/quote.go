package domain

// Quote is the price of a stay
type Quote struct {
	PropertyID  string
	Nights      float64
	NightlyRate float64
	CleaningFee float64
	Total       float64
}

// NewQuote computes total = nights * nightly rate + cleaning fee
func NewQuote(p *Property, nights float64) *Quote {
	return &Quote{
		PropertyID:  p.ID,
		Nights:      nights,
		NightlyRate: p.NightlyRate,
		CleaningFee: p.CleaningFee,
		Total:       nights*p.NightlyRate + p.CleaningFee,
	}
}
