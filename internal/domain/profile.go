package domain

// CoupleProfile is the single local profile row: who the couple is and how
// much they can put toward goals each month. Savings capacity drives the
// portfolio conflict detection.
type CoupleProfile struct {
	ID                   string
	DisplayName          string
	PartnerName          string
	SavingsCapacityCents int64
	Currency             string
}

// DefaultCurrency is used when the profile does not specify one.
const DefaultCurrency = "USD"
