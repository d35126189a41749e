package vocab

import "strings"

// Court authority tiers. Tier 1 is the apex court; anything unrecognized
// falls into the lowest tier.
const (
	TierSupreme  = 1
	TierHigh     = 2
	TierDistrict = 3
)

const (
	weightSupreme  = 10
	weightHigh     = 7
	weightDistrict = 4
)

// CourtWeight maps a court name to its ranking weight by substring match.
// Unrecognized courts get the district-tier weight.
func CourtWeight(court string) int {
	switch AuthorityTier(court) {
	case TierSupreme:
		return weightSupreme
	case TierHigh:
		return weightHigh
	default:
		return weightDistrict
	}
}

// AuthorityTier classifies a court name into an authority tier.
func AuthorityTier(court string) int {
	c := strings.ToLower(court)
	if strings.Contains(c, "supreme") {
		return TierSupreme
	}
	if strings.Contains(c, "high court") || strings.Contains(c, "high") {
		return TierHigh
	}
	return TierDistrict
}
