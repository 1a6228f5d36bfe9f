package inference

import (
	"contractdraft-backend/clauses"
)

// Payment methods
const (
	PaymentThreeInstallments = "installment_3"
	PaymentTwoInstallments   = "installment_2"
	PaymentOnCompletion      = "lump_sum_on_completion"
)

// Risk levels
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// Evaluation methods
const (
	EvaluationCompletionCheck = "completion_check"
	EvaluationClientApproval  = "client_approval"
	EvaluationFormal          = "formal_evaluation"
)

// Revision limits. NegotiableRevisions marks a count left to the parties.
const (
	RevisionNone       = "none"
	RevisionLimited    = "limited"
	RevisionNegotiable = "negotiable"
	RevisionStandard   = "standard"

	NegotiableRevisions = -1
)

// Travel policies
const (
	TravelFull    = "full"
	TravelPartial = "partial"
	TravelNone    = "none"
)

// PaymentStage is one tranche of a payment schedule
type PaymentStage struct {
	Stage   string `json:"stage"`
	Percent int    `json:"percent"`
}

// DerivedVariables are secondary contract terms computed from an assignment
type DerivedVariables struct {
	PaymentMethod     string         `json:"payment_method"`
	PaymentSchedule   []PaymentStage `json:"payment_schedule"`
	RiskScore         int            `json:"risk_score"`
	RiskLevel         string         `json:"risk_level"`
	EvaluationMethod  string         `json:"evaluation_method"`
	RevisionLimit     string         `json:"revision_limit"`
	MaxRevisions      int            `json:"max_revisions"`
	InsuranceRequired bool           `json:"insurance_required"`
	PenaltyRate       int            `json:"penalty_rate"`
	TravelPolicy      string         `json:"travel_policy"`
}

// DeriveVariables computes secondary terms from the assignment and project facts
func DeriveVariables(a clauses.Assignment, facts ProjectFacts) DerivedVariables {
	method, schedule := paymentPlan(a)
	score := RiskScore(a)
	limit, maxRevisions := revisionPolicy(a)

	return DerivedVariables{
		PaymentMethod:     method,
		PaymentSchedule:   schedule,
		RiskScore:         score,
		RiskLevel:         RiskLevel(score),
		EvaluationMethod:  evaluationMethod(a),
		RevisionLimit:     limit,
		MaxRevisions:      maxRevisions,
		InsuranceRequired: a[clauses.Equipment] == clauses.EquipmentLarge || a[clauses.ProjectScale] == clauses.ScaleLarge,
		PenaltyRate:       PenaltyRate(facts.Amount),
		TravelPolicy:      travelPolicy(a),
	}
}

func paymentPlan(a clauses.Assignment) (string, []PaymentStage) {
	switch {
	case a[clauses.ExecutionCycle] == clauses.CycleSingle && a[clauses.ProjectScale] == clauses.ScaleLarge:
		return PaymentThreeInstallments, []PaymentStage{
			{Stage: "down_payment", Percent: 30},
			{Stage: "interim_payment", Percent: 40},
			{Stage: "final_payment", Percent: 30},
		}
	case a[clauses.ProjectScale] == clauses.ScaleSmall:
		return PaymentOnCompletion, []PaymentStage{
			{Stage: "final_payment", Percent: 100},
		}
	default:
		return PaymentTwoInstallments, []PaymentStage{
			{Stage: "down_payment", Percent: 50},
			{Stage: "final_payment", Percent: 50},
		}
	}
}

// RiskScore weighs on-site work, heavy equipment, scale and complexity
func RiskScore(a clauses.Assignment) int {
	score := 0
	if a[clauses.Location] == clauses.LocationOnsite {
		score += 2
	}
	if a[clauses.Equipment] == clauses.EquipmentLarge {
		score += 3
	}
	if a[clauses.ProjectScale] == clauses.ScaleLarge {
		score++
	}
	if a[clauses.Complexity] == clauses.ComplexityComplex {
		score++
	}
	return score
}

// RiskLevel buckets a risk score
func RiskLevel(score int) string {
	switch {
	case score >= 5:
		return RiskHigh
	case score >= 3:
		return RiskMedium
	default:
		return RiskLow
	}
}

func evaluationMethod(a clauses.Assignment) string {
	scale, complexity := a[clauses.ProjectScale], a[clauses.Complexity]
	switch {
	case scale == clauses.ScaleSmall && complexity == clauses.ComplexitySimple:
		return EvaluationCompletionCheck
	case scale == clauses.ScaleMedium && complexity == clauses.ComplexityMedium:
		return EvaluationClientApproval
	default:
		return EvaluationFormal
	}
}

func revisionPolicy(a clauses.Assignment) (string, int) {
	serviceType, complexity := a[clauses.ServiceType], a[clauses.Complexity]
	switch {
	case serviceType == clauses.TypeService && complexity == clauses.ComplexitySimple:
		return RevisionNone, 0
	case serviceType == clauses.TypeManufacturing && complexity == clauses.ComplexityMedium:
		return RevisionLimited, 2
	case serviceType == clauses.TypeConsulting:
		return RevisionNegotiable, NegotiableRevisions
	default:
		return RevisionStandard, 3
	}
}

// PenaltyRate is the delay-penalty cap in percent of the contract amount
func PenaltyRate(amount int64) int {
	switch {
	case amount >= LargeAmount:
		return 15
	case amount >= MediumAmount:
		return 12
	default:
		return 10
	}
}

func travelPolicy(a clauses.Assignment) string {
	switch a[clauses.Location] {
	case clauses.LocationOnsite:
		return TravelFull
	case clauses.LocationHybrid:
		return TravelPartial
	default:
		return TravelNone
	}
}

// Analysis bundles inference output for display
type Analysis struct {
	Variables clauses.Assignment `json:"variables"`
	Derived   DerivedVariables   `json:"derived"`
}

// Analyze infers the assignment and its derived variables in one call
func Analyze(description string, facts ProjectFacts) Analysis {
	a := InferVariables(description, facts)
	return Analysis{
		Variables: a,
		Derived:   DeriveVariables(a, facts),
	}
}
