package bybit

// OrderFilterFor returns the filter tag the venue expects for a
// category/kind pair. Only spot uses filter tags; there the venue indexes
// conditional orders separately, so the same tag must be sent when placing
// and when cancelling. Derivatives categories never carry a filter.
func OrderFilterFor(category Category, kind OrderKind) OrderFilter {
	if category != CategorySpot {
		return ""
	}
	switch kind {
	case KindStopLimit, KindStopMarket, KindLimitIfTouched:
		return OrderFilterStopOrder
	default:
		return ""
	}
}
