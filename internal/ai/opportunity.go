package ai

// Scoring weights. They sum to 1.0 once the inverted metrics are accounted
// for, keeping the score inside [0, 100].
const (
	demandWeight      = 0.30
	competitionWeight = 0.25
	marginWeight      = 0.30
	saturationWeight  = 0.15
)

// OpportunityInput holds the four bounded metrics, each in [0, 100].
// Pointer fields distinguish an explicit zero from an omitted value.
type OpportunityInput struct {
	DemandScore      *float64 `json:"demandScore" validate:"required,min=0,max=100"`
	CompetitionScore *float64 `json:"competitionScore" validate:"required,min=0,max=100"`
	ProfitMargin     *float64 `json:"profitMargin" validate:"required,min=0,max=100"`
	MarketSaturation *float64 `json:"marketSaturation" validate:"required,min=0,max=100"`
}

// OpportunityBreakdown echoes the validated inputs back to the caller.
type OpportunityBreakdown struct {
	DemandScore      float64 `json:"demandScore"`
	CompetitionScore float64 `json:"competitionScore"`
	ProfitMargin     float64 `json:"profitMargin"`
	MarketSaturation float64 `json:"marketSaturation"`
}

// ScoreOpportunity computes the weighted opportunity score. High demand and
// margin raise it; high competition and saturation lower it. The result is
// returned raw; rounding is the caller's concern.
func ScoreOpportunity(in OpportunityBreakdown) float64 {
	return in.DemandScore*demandWeight +
		(100-in.CompetitionScore)*competitionWeight +
		in.ProfitMargin*marginWeight +
		(100-in.MarketSaturation)*saturationWeight
}
