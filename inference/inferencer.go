package inference

import (
	"strings"

	"contractdraft-backend/clauses"
)

// Amount thresholds in KRW
const (
	LargeAmount  int64 = 10_000_000
	MediumAmount int64 = 3_000_000
)

// ProjectFacts are the numeric project inputs used for inference
type ProjectFacts struct {
	Amount   int64  `json:"amount"`
	Duration string `json:"duration,omitempty"`
}

var (
	periodicKeywords   = []string{"정기", "매월", "매주", "매일", "격주", "주기적", "monthly", "weekly", "periodic"}
	continuousKeywords = []string{"지속", "계속", "상시", "유지보수", "유지 보수", "운영 대행", "장기", "ongoing", "maintenance", "retainer"}

	manufacturingKeywords = []string{"디자인", "개발", "제작", "로고", "웹사이트", "홈페이지", "앱", "영상", "일러스트", "번역", "작성", "design", "develop", "build"}
	laborKeywords         = []string{"청소", "이사", "설치", "수리", "배달", "시공", "인테리어", "철거", "운반", "cleaning", "repair", "install"}
	advisoryKeywords      = []string{"컨설팅", "자문", "상담", "코칭", "멘토링", "교육", "강의", "consult", "advis", "coaching"}
	compositeKeywords     = []string{"통합", "종합", "복합", "턴키", "일괄", "기획부터", "end-to-end", "turnkey"}

	simpleKeywords   = []string{"단순", "간단", "기본", "간이", "소규모", "simple", "basic"}
	advancedKeywords = []string{"복잡", "고급", "고난도", "정밀", "대규모", "맞춤형", "complex", "advanced"}

	onsiteKeywords = []string{"현장", "방문", "출장", "상주", "출근", "onsite", "on-site"}
	remoteKeywords = []string{"원격", "온라인", "재택", "비대면", "리모트", "remote", "online"}

	heavyEquipmentKeywords = []string{"중장비", "크레인", "굴착기", "포크레인", "지게차", "대형 장비", "대형장비", "트럭", "crane", "excavator", "forklift"}
	lightToolKeywords      = []string{"공구", "도구", "장비", "카메라", "드론", "조명", "사다리", "tool", "camera", "drone"}
)

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// InferVariables derives a complete assignment from a service description
// and project facts using keyword and threshold rules
func InferVariables(description string, facts ProjectFacts) clauses.Assignment {
	text := strings.ToLower(description)

	a := clauses.Assignment{
		clauses.ExecutionCycle: inferExecutionCycle(text),
		clauses.ServiceType:    inferServiceType(text),
		clauses.Complexity:     inferComplexity(text),
		clauses.ProjectScale:   ScaleForAmount(facts.Amount),
		clauses.Location:       inferLocation(text),
		clauses.Equipment:      inferEquipment(text),
	}

	if strings.TrimSpace(facts.Duration) != "" {
		a[clauses.Complexity] = complexityForDays(ParseDurationDays(facts.Duration))
	}

	return reconcile(a)
}

func inferExecutionCycle(text string) string {
	switch {
	case containsAny(text, periodicKeywords):
		return clauses.CyclePeriodic
	case containsAny(text, continuousKeywords):
		return clauses.CycleContinuous
	default:
		return clauses.CycleSingle
	}
}

func inferServiceType(text string) string {
	switch {
	case containsAny(text, manufacturingKeywords):
		return clauses.TypeManufacturing
	case containsAny(text, laborKeywords):
		return clauses.TypeService
	case containsAny(text, advisoryKeywords):
		return clauses.TypeConsulting
	case containsAny(text, compositeKeywords):
		return clauses.TypeComplex
	default:
		return clauses.TypeService
	}
}

func inferComplexity(text string) string {
	switch {
	case containsAny(text, simpleKeywords):
		return clauses.ComplexitySimple
	case containsAny(text, advancedKeywords):
		return clauses.ComplexityComplex
	default:
		return clauses.ComplexityMedium
	}
}

func inferLocation(text string) string {
	switch {
	case containsAny(text, onsiteKeywords):
		return clauses.LocationOnsite
	case containsAny(text, remoteKeywords):
		return clauses.LocationRemote
	default:
		return clauses.LocationHybrid
	}
}

func inferEquipment(text string) string {
	switch {
	case containsAny(text, heavyEquipmentKeywords):
		return clauses.EquipmentLarge
	case containsAny(text, lightToolKeywords):
		return clauses.EquipmentSmall
	default:
		return clauses.EquipmentIntangible
	}
}

// ScaleForAmount maps a contract amount to a project scale
func ScaleForAmount(amount int64) string {
	switch {
	case amount >= LargeAmount:
		return clauses.ScaleLarge
	case amount >= MediumAmount:
		return clauses.ScaleMedium
	default:
		return clauses.ScaleSmall
	}
}

func complexityForDays(days int) string {
	switch {
	case days >= 90:
		return clauses.ComplexityComplex
	case days >= 30:
		return clauses.ComplexityMedium
	default:
		return clauses.ComplexitySimple
	}
}

// reconcile fixes combinations that inference produces but that make no sense together
func reconcile(a clauses.Assignment) clauses.Assignment {
	if a[clauses.ProjectScale] == clauses.ScaleSmall && a[clauses.Complexity] == clauses.ComplexityComplex {
		a[clauses.Complexity] = clauses.ComplexityMedium
	}
	if a[clauses.ServiceType] == clauses.TypeConsulting && a[clauses.Location] == clauses.LocationOnsite {
		a[clauses.Location] = clauses.LocationHybrid
	}
	return a
}

// KeywordInferencer exposes InferVariables behind an interface
type KeywordInferencer struct{}

// Infer implements the contract generator's inferencer
func (KeywordInferencer) Infer(description string, facts ProjectFacts) (clauses.Assignment, error) {
	return InferVariables(description, facts), nil
}
