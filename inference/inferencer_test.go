package inference

import (
	"testing"

	"contractdraft-backend/clauses"

	"github.com/stretchr/testify/assert"
)

func TestParseDurationDays(t *testing.T) {
	cases := map[string]int{
		"2주":       14,
		"3개월":      90,
		"10일":      10,
		"1달":       30,
		"6 weeks":  42,
		"2 months": 60,
		"45 days":  45,
		"약 2주 소요":  14,
		"":         DefaultDurationDays,
		"협의 후 결정":  DefaultDurationDays,
		"0일":       DefaultDurationDays,
		"1.5개월":    45,
		"2.5주":     18,
		"3650일":    3650,
		"3651일":    DefaultDurationDays,
		"121개월":    DefaultDurationDays,

		"999999999999999999개월": DefaultDurationDays,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseDurationDays(in), in)
	}
}

func TestInferVariables_LogoDesign(t *testing.T) {
	got := InferVariables("로고 디자인 단순 작업, 원격, 금액 2,000,000", ProjectFacts{Amount: 2_000_000})

	assert.Equal(t, clauses.Assignment{
		clauses.ExecutionCycle: clauses.CycleSingle,
		clauses.ServiceType:    clauses.TypeManufacturing,
		clauses.Complexity:     clauses.ComplexitySimple,
		clauses.ProjectScale:   clauses.ScaleSmall,
		clauses.Location:       clauses.LocationRemote,
		clauses.Equipment:      clauses.EquipmentIntangible,
	}, got)
}

func TestInferVariables_Keywords(t *testing.T) {
	a := InferVariables("매월 정기 사무실 청소, 현장 방문, 청소 도구 지참", ProjectFacts{Amount: 5_000_000})
	assert.Equal(t, clauses.CyclePeriodic, a[clauses.ExecutionCycle])
	assert.Equal(t, clauses.TypeService, a[clauses.ServiceType])
	assert.Equal(t, clauses.LocationOnsite, a[clauses.Location])
	assert.Equal(t, clauses.EquipmentSmall, a[clauses.Equipment])
	assert.Equal(t, clauses.ScaleMedium, a[clauses.ProjectScale])

	a = InferVariables("서버 유지보수 운영", ProjectFacts{Amount: 100})
	assert.Equal(t, clauses.CycleContinuous, a[clauses.ExecutionCycle])
	assert.Equal(t, clauses.TypeService, a[clauses.ServiceType])
	assert.Equal(t, clauses.LocationHybrid, a[clauses.Location])
	assert.Equal(t, clauses.ComplexityMedium, a[clauses.Complexity])

	a = InferVariables("크레인을 이용한 철거 공사", ProjectFacts{Amount: 50_000_000})
	assert.Equal(t, clauses.EquipmentLarge, a[clauses.Equipment])
	assert.Equal(t, clauses.ScaleLarge, a[clauses.ProjectScale])

	a = InferVariables("턴키 방식 통합 구축", ProjectFacts{})
	assert.Equal(t, clauses.TypeComplex, a[clauses.ServiceType])

	a = InferVariables("", ProjectFacts{})
	assert.Equal(t, clauses.TypeService, a[clauses.ServiceType])
	assert.Equal(t, clauses.EquipmentIntangible, a[clauses.Equipment])
}

func TestInferVariables_DurationOverridesComplexity(t *testing.T) {
	a := InferVariables("단순 번역", ProjectFacts{Amount: 20_000_000, Duration: "3개월"})
	assert.Equal(t, clauses.ComplexityComplex, a[clauses.Complexity])

	a = InferVariables("복잡한 시스템 개발", ProjectFacts{Amount: 20_000_000, Duration: "2주"})
	assert.Equal(t, clauses.ComplexitySimple, a[clauses.Complexity])

	a = InferVariables("고급 개발", ProjectFacts{Amount: 20_000_000, Duration: "미정"})
	assert.Equal(t, clauses.ComplexityMedium, a[clauses.Complexity])
}

func TestInferVariables_Reconcile(t *testing.T) {
	// small scale cannot stay complex
	a := InferVariables("복잡한 개발", ProjectFacts{Amount: 1_000_000})
	assert.Equal(t, clauses.ComplexityMedium, a[clauses.Complexity])

	// consulting on site becomes hybrid
	a = InferVariables("경영 컨설팅, 현장 방문", ProjectFacts{Amount: 1_000_000})
	assert.Equal(t, clauses.TypeConsulting, a[clauses.ServiceType])
	assert.Equal(t, clauses.LocationHybrid, a[clauses.Location])
}

func TestScaleForAmount(t *testing.T) {
	assert.Equal(t, clauses.ScaleSmall, ScaleForAmount(2_999_999))
	assert.Equal(t, clauses.ScaleMedium, ScaleForAmount(3_000_000))
	assert.Equal(t, clauses.ScaleMedium, ScaleForAmount(9_999_999))
	assert.Equal(t, clauses.ScaleLarge, ScaleForAmount(10_000_000))
}
