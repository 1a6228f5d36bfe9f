package templating

import (
	"strings"
	"time"

	"contractdraft-backend/clauses"
	"contractdraft-backend/inference"
	"contractdraft-backend/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DateLayout is the display format for contract dates
const DateLayout = "2006년 01월 02일"

// InputDateLayout is the format accepted for ContractInput.StartDate
const InputDateLayout = "2006-01-02"

// Payment split thresholds in KRW
const (
	SplitTwoWayAmount   int64 = 1_000_000
	SplitThreeWayAmount int64 = 5_000_000
)

var printer = message.NewPrinter(language.Korean)

// FormatAmount renders an amount with thousands separators
func FormatAmount(amount int64) string {
	return printer.Sprintf("%d", amount)
}

// KoreanAmount renders an amount in 억/만 units, e.g. 12,345,678 as "1,234만 5,678원"
func KoreanAmount(amount int64) string {
	if amount <= 0 {
		return "0원"
	}

	eok := amount / 100_000_000
	man := amount % 100_000_000 / 10_000
	rest := amount % 10_000

	var parts []string
	if eok > 0 {
		parts = append(parts, FormatAmount(eok)+"억")
	}
	if man > 0 {
		parts = append(parts, FormatAmount(man)+"만")
	}
	if rest > 0 {
		parts = append(parts, FormatAmount(rest))
	}
	return strings.Join(parts, " ") + "원"
}

// PaymentSplit is the down/interim/final division of a contract amount
type PaymentSplit struct {
	DownRate      int   `json:"down_rate"`
	InterimRate   int   `json:"interim_rate"`
	FinalRate     int   `json:"final_rate"`
	DownAmount    int64 `json:"down_amount"`
	InterimAmount int64 `json:"interim_amount"`
	FinalAmount   int64 `json:"final_amount"`
}

// SplitPayment divides amount by threshold tier. Partial amounts round down and
// the remainder goes to the final payment so the parts always sum to amount.
func SplitPayment(amount int64) PaymentSplit {
	var s PaymentSplit
	switch {
	case amount < SplitTwoWayAmount:
		s.FinalRate = 100
	case amount < SplitThreeWayAmount:
		s.DownRate, s.FinalRate = 30, 70
	default:
		s.DownRate, s.InterimRate, s.FinalRate = 30, 40, 30
	}

	s.DownAmount = amount * int64(s.DownRate) / 100
	s.InterimAmount = amount * int64(s.InterimRate) / 100
	s.FinalAmount = amount - s.DownAmount - s.InterimAmount
	return s
}

// ContractPeriod resolves the start and end dates of a contract
func ContractPeriod(in models.ContractInput, now time.Time) (start, end time.Time, days int) {
	start = dateOf(now)
	if in.StartDate != "" {
		if t, err := time.ParseInLocation(InputDateLayout, strings.TrimSpace(in.StartDate), now.Location()); err == nil {
			start = t
		}
	}
	days = inference.ParseDurationDays(in.Duration)
	end = start.AddDate(0, 0, days)
	return start, end, days
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// BuildDictionary derives every placeholder value from the contract input, the
// variable assignment and its derived variables. Blank string values are left
// out, so their tokens render as MissingValue rather than as empty text.
func BuildDictionary(in models.ContractInput, a clauses.Assignment, derived inference.DerivedVariables, now time.Time) Dictionary {
	split := SplitPayment(in.Amount)
	start, end, days := ContractPeriod(in, now)

	dict := Dictionary{
		"service_name":        in.ServiceName,
		"service_description": in.ServiceDescription,

		"contract_amount":           in.Amount,
		"contract_amount_formatted": FormatAmount(in.Amount),
		"contract_amount_korean":    KoreanAmount(in.Amount),

		"down_payment_rate":      split.DownRate,
		"interim_payment_rate":   split.InterimRate,
		"final_payment_rate":     split.FinalRate,
		"down_payment_amount":    FormatAmount(split.DownAmount),
		"interim_payment_amount": FormatAmount(split.InterimAmount),
		"final_payment_amount":   FormatAmount(split.FinalAmount),

		"start_date":    start.Format(DateLayout),
		"end_date":      end.Format(DateLayout),
		"duration_days": days,
		"contract_date": dateOf(now).Format(DateLayout),

		"warranty_period":    warrantyPeriod(a[clauses.ServiceType]),
		"deliverable_format": deliverableFormat(a[clauses.ServiceType]),
		"delivery_method":    deliveryMethod(a[clauses.Location]),
		"max_revisions":      maxRevisions(in.Amount, derived),
		"notice_period":      noticePeriod(in.Amount),
		"penalty_rate":       derived.PenaltyRate,
		"travel_policy":      travelPolicyText(derived.TravelPolicy),
		"payment_method":     paymentMethodText(in.PaymentMethod, derived.PaymentMethod),
		"evaluation_method":  evaluationText(derived.EvaluationMethod),
	}

	addParty(dict, "client", in.Client)
	addParty(dict, "provider", in.Provider)

	// empty strings become missing so the marker shows instead of a blank
	for k, v := range dict {
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			delete(dict, k)
		}
	}
	return dict
}

func addParty(dict Dictionary, prefix string, p models.Party) {
	dict[prefix+"_name"] = p.Name
	dict[prefix+"_contact"] = p.Contact
	dict[prefix+"_email"] = p.Email
	dict[prefix+"_address"] = p.Address
	dict[prefix+"_business_number"] = p.BusinessNumber
}

func warrantyPeriod(serviceType string) string {
	switch serviceType {
	case clauses.TypeManufacturing:
		return "6개월"
	case clauses.TypeComplex:
		return "12개월"
	case clauses.TypeConsulting:
		return "3개월"
	default:
		return "1개월"
	}
}

func deliverableFormat(serviceType string) string {
	switch serviceType {
	case clauses.TypeManufacturing:
		return "디지털 원본 파일 및 최종 결과물"
	case clauses.TypeConsulting:
		return "자문 보고서(PDF)"
	case clauses.TypeComplex:
		return "최종 결과물 및 관련 산출 문서 일체"
	default:
		return "작업 완료 확인서"
	}
}

func deliveryMethod(location string) string {
	switch location {
	case clauses.LocationRemote:
		return "이메일 또는 온라인 공유 드라이브"
	case clauses.LocationOnsite:
		return "현장 직접 전달"
	default:
		return "직접 전달 또는 온라인 전송"
	}
}

// maxRevisions uses the derived revision count, and the amount tier when the
// count is left to negotiation or unknown
func maxRevisions(amount int64, derived inference.DerivedVariables) int {
	if derived.RevisionLimit != "" && derived.MaxRevisions >= 0 {
		return derived.MaxRevisions
	}
	switch {
	case amount < SplitTwoWayAmount:
		return 2
	case amount < SplitThreeWayAmount:
		return 3
	default:
		return 5
	}
}

func noticePeriod(amount int64) string {
	switch {
	case amount >= inference.LargeAmount:
		return "30일"
	case amount >= inference.MediumAmount:
		return "14일"
	default:
		return "7일"
	}
}

func travelPolicyText(policy string) string {
	switch policy {
	case inference.TravelFull:
		return "갑이 전액 부담한다"
	case inference.TravelPartial:
		return "사전에 협의된 범위 내에서 갑이 부담한다"
	default:
		return "을이 부담한다"
	}
}

func paymentMethodText(override, method string) string {
	if strings.TrimSpace(override) != "" {
		return override
	}
	switch method {
	case inference.PaymentThreeInstallments:
		return "선금, 중도금, 잔금의 3회 분할 지급"
	case inference.PaymentTwoInstallments:
		return "선금 및 잔금의 2회 분할 지급"
	default:
		return "완료 후 일괄 지급"
	}
}

func evaluationText(method string) string {
	switch method {
	case inference.EvaluationCompletionCheck:
		return "완료 확인"
	case inference.EvaluationClientApproval:
		return "갑의 서면 승인"
	default:
		return "정식 검수 절차"
	}
}
