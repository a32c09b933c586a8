package domain

// ItemStatus is the derived supply health of a pantry item.
type ItemStatus string

const (
	ItemStatusHealthy  ItemStatus = "healthy"
	ItemStatusWarning  ItemStatus = "warning"
	ItemStatusCritical ItemStatus = "critical"
)

func (s ItemStatus) String() string { return string(s) }

func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusHealthy, ItemStatusWarning, ItemStatusCritical:
		return true
	}
	return false
}

// Priority is the urgency label shared by shopping entries and recommendations.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Weight orders priorities: high > medium > low > unknown.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// RecommendationType classifies why a purchase is suggested.
type RecommendationType string

const (
	RecommendationTypeRefill      RecommendationType = "refill"
	RecommendationTypeBulkBuy     RecommendationType = "bulk_buy"
	RecommendationTypeAlternative RecommendationType = "alternative"
	RecommendationTypeSeasonal    RecommendationType = "seasonal"
)

// RecommendationTypeAll is the filter value that matches every type.
const RecommendationTypeAll = "all"

func (t RecommendationType) String() string { return string(t) }

func (t RecommendationType) IsValid() bool {
	switch t {
	case RecommendationTypeRefill, RecommendationTypeBulkBuy,
		RecommendationTypeAlternative, RecommendationTypeSeasonal:
		return true
	}
	return false
}

// RecommendationTypes lists every valid type in display order.
func RecommendationTypes() []RecommendationType {
	return []RecommendationType{
		RecommendationTypeRefill,
		RecommendationTypeBulkBuy,
		RecommendationTypeAlternative,
		RecommendationTypeSeasonal,
	}
}

// PriceDirection is the sign of a price change.
type PriceDirection string

const (
	PriceDirectionUp     PriceDirection = "up"
	PriceDirectionDown   PriceDirection = "down"
	PriceDirectionStable PriceDirection = "stable"
)

func (d PriceDirection) String() string { return string(d) }

// TrendRange selects how many monthly price points a trend view shows.
type TrendRange string

const (
	TrendRange3M TrendRange = "3m"
	TrendRange6M TrendRange = "6m"
	TrendRange1Y TrendRange = "1y"
)

func (r TrendRange) String() string { return string(r) }

func (r TrendRange) IsValid() bool {
	switch r {
	case TrendRange3M, TrendRange6M, TrendRange1Y:
		return true
	}
	return false
}

// Points returns the number of monthly points covered by the range.
func (r TrendRange) Points() int {
	switch r {
	case TrendRange3M:
		return 3
	case TrendRange6M:
		return 6
	case TrendRange1Y:
		return 12
	}
	return 0
}

// Category filter value that matches every category.
const CategoryAll = "all"

// DefaultCategory is used when an item or entry is created without one.
const DefaultCategory = "Other"
