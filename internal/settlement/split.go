package settlement

// SplitRevenue divides a sale price between creator and platform.
// The creator share is floored to a whole cent and the platform takes
// the remainder, so creator + platform == price for every input.
func SplitRevenue(priceCents int64) (creatorCents, platformCents int64) {
	if priceCents <= 0 {
		return 0, 0
	}
	creatorCents = priceCents * CreatorSharePercent / 100
	platformCents = priceCents - creatorCents
	return creatorCents, platformCents
}
