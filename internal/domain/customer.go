package domain

// LoyaltyTier labels a customer's loyalty program level. The set is open:
// seeded data uses Bronze/Silver/Gold but new tiers may appear without a
// code change.
type LoyaltyTier string

const (
	LoyaltyTierBronze LoyaltyTier = "Bronze"
	LoyaltyTierSilver LoyaltyTier = "Silver"
	LoyaltyTierGold   LoyaltyTier = "Gold"
)

// Customer is the domain model for customer records. Records are provisioned
// out of band and treated as read-mostly: no in-scope operation mutates them.
type Customer struct {
	ID               string
	Name             string
	Email            string
	Phone            string
	RegistrationDate string
	LoyaltyTier      LoyaltyTier
	TotalOrders      int
	TotalSpent       float64
}
