package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"contractdraft-backend/clauses"
	"contractdraft-backend/inference"
	"contractdraft-backend/models"
	"contractdraft-backend/templating"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

type failingSelector struct {
	err   error
	panic bool
}

func (f failingSelector) Select(clauses.Assignment, clauses.SelectOptions) (*clauses.Selection, error) {
	if f.panic {
		panic("catalog corrupted")
	}
	return nil, f.err
}

type inferencerFunc func(string, inference.ProjectFacts) (clauses.Assignment, error)

func (f inferencerFunc) Infer(d string, facts inference.ProjectFacts) (clauses.Assignment, error) {
	return f(d, facts)
}

func logoInput() models.ContractInput {
	return models.ContractInput{
		ServiceName:        "로고 디자인",
		ServiceDescription: "로고 디자인 단순 작업, 원격, 금액 2,000,000",
		Amount:             2_000_000,
		Client:             models.Party{Name: "주식회사 갑", Contact: "02-000-0000", Email: "a@example.com", Address: "서울"},
		Provider:           models.Party{Name: "김디자이너", Contact: "010-0000-0000", Email: "b@example.com", Address: "부산"},
	}
}

func TestGenerateContract_LogoDesign(t *testing.T) {
	g := NewContractGenerator(GeneratorWithClock(fixedClock))

	res := g.GenerateContract(GenerateContractRequest{Input: logoInput()})

	require.True(t, res.Success)
	require.NotNil(t, res.Document)
	doc := res.Document

	assert.Equal(t, "로고 디자인 제작형 계약서", doc.ContractInfo.Title)
	assert.Equal(t, clauses.TypeManufacturing, doc.Variables[clauses.ServiceType])
	assert.Equal(t, clauses.LocationRemote, doc.Variables[clauses.Location])
	assert.Equal(t, inference.RiskLow, doc.ContractInfo.RiskLevel)
	assert.Equal(t, "2026년 03월 02일", doc.ContractInfo.StartDate)
	assert.False(t, doc.Metadata.Degraded)
	assert.Equal(t, len(doc.Clauses), doc.Metadata.ClauseCount)
	assert.Equal(t, testNow, doc.Metadata.GeneratedAt)

	ids := make([]string, len(doc.Clauses))
	for i, c := range doc.Clauses {
		ids[i] = c.ID
		assert.NotContains(t, c.Content, "{", c.ID)
		if i > 0 {
			assert.LessOrEqual(t, doc.Clauses[i-1].Order, c.Order)
		}
	}
	for _, want := range []string{
		"contract_purpose", "parties", "payment_basic", "effective_date", "governing_law",
		"manufacturing_deliverable", "simple_workflow", "remote_work", "small_scale_payment",
	} {
		assert.Contains(t, ids, want)
	}
	assert.NotContains(t, ids, "onsite_work")

	purpose := doc.Clauses[0]
	assert.Equal(t, "contract_purpose", purpose.ID)
	assert.Contains(t, purpose.Content, "로고 디자인")
}

func TestGenerateContract_ExplicitVariablesWin(t *testing.T) {
	g := NewContractGenerator(GeneratorWithClock(fixedClock))

	res := g.GenerateContract(GenerateContractRequest{
		Input:     logoInput(),
		Variables: clauses.Assignment{clauses.Location: clauses.LocationOnsite},
	})

	require.True(t, res.Success)
	assert.Equal(t, clauses.LocationOnsite, res.Document.Variables[clauses.Location])
	assert.Equal(t, clauses.TypeManufacturing, res.Document.Variables[clauses.ServiceType], "other variables still inferred")
}

func TestGenerateContract_CompleteExplicitSkipsInference(t *testing.T) {
	called := false
	g := NewContractGenerator(
		GeneratorWithClock(fixedClock),
		GeneratorWithInferencer(inferencerFunc(func(string, inference.ProjectFacts) (clauses.Assignment, error) {
			called = true
			return nil, nil
		})),
	)

	res := g.GenerateContract(GenerateContractRequest{Input: logoInput(), Variables: clauses.DefaultAssignment()})

	require.True(t, res.Success)
	assert.False(t, called)
	assert.Equal(t, clauses.DefaultAssignment(), res.Document.Variables)
}

func TestGenerateContract_DefaultsWithoutDescription(t *testing.T) {
	g := NewContractGenerator(GeneratorWithClock(fixedClock))

	res := g.GenerateContract(GenerateContractRequest{Input: models.ContractInput{ServiceName: "번역"}})

	require.True(t, res.Success)
	assert.Equal(t, clauses.DefaultAssignment(), res.Document.Variables)
	// blank parties are shown with the missing marker
	assert.Contains(t, res.Document.Clauses[1].Content, templating.MissingValue)
}

func TestGenerateContract_OutOfDomainValuesWarn(t *testing.T) {
	g := NewContractGenerator(GeneratorWithClock(fixedClock))

	res := g.GenerateContract(GenerateContractRequest{
		Input:     logoInput(),
		Variables: clauses.Assignment{clauses.Equipment: "rocket"},
	})

	require.True(t, res.Success)
	assert.Contains(t, res.Warnings, `invalid value "rocket" for variable equipment`)
	assert.Equal(t, res.Warnings, res.Document.Metadata.Warnings)
}

func TestGenerateContract_SelectorFailureFallsBack(t *testing.T) {
	g := NewContractGenerator(GeneratorWithClock(fixedClock), GeneratorWithSelector(failingSelector{err: errors.New("boom")}))

	res := g.GenerateContract(GenerateContractRequest{Input: logoInput()})

	assertFallback(t, res)
	assert.Contains(t, res.Error, "boom")
}

func TestGenerateContract_SelectorPanicFallsBack(t *testing.T) {
	g := NewContractGenerator(GeneratorWithClock(fixedClock), GeneratorWithSelector(failingSelector{panic: true}))

	var res *GenerateContractResult
	require.NotPanics(t, func() {
		res = g.GenerateContract(GenerateContractRequest{Input: logoInput()})
	})

	assertFallback(t, res)
	assert.Contains(t, res.Error, "catalog corrupted")
}

func TestGenerateContract_InferencerFailureFallsBack(t *testing.T) {
	g := NewContractGenerator(
		GeneratorWithClock(fixedClock),
		GeneratorWithInferencer(inferencerFunc(func(string, inference.ProjectFacts) (clauses.Assignment, error) {
			return nil, errors.New("keyword table missing")
		})),
	)

	res := g.GenerateContract(GenerateContractRequest{Input: logoInput()})

	assertFallback(t, res)
	assert.True(t, strings.HasPrefix(res.Error, ErrInferenceFailed.Error()))
}

func TestGenerateContract_InferencerPanicFallsBack(t *testing.T) {
	g := NewContractGenerator(
		GeneratorWithClock(fixedClock),
		GeneratorWithInferencer(inferencerFunc(func(string, inference.ProjectFacts) (clauses.Assignment, error) {
			var m map[string]int
			m["x"] = 1
			return nil, nil
		})),
	)

	res := g.GenerateContract(GenerateContractRequest{Input: logoInput()})

	assertFallback(t, res)
}

func assertFallback(t *testing.T, res *GenerateContractResult) {
	t.Helper()
	require.NotNil(t, res)
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)
	require.NotNil(t, res.Document)

	doc := res.Document
	assert.True(t, doc.Metadata.Degraded)
	assert.Equal(t, FallbackTitle, doc.ContractInfo.Title)
	assert.Equal(t, "갑", doc.ContractInfo.Client.Name)
	assert.Equal(t, "을", doc.ContractInfo.Provider.Name)
	require.Len(t, doc.Clauses, 2)
	assert.Equal(t, "contract_purpose", doc.Clauses[0].ID)
	assert.Equal(t, "payment_basic", doc.Clauses[1].ID)
	assert.Equal(t, 2, doc.Metadata.ClauseCount)
}

func TestRenderText(t *testing.T) {
	g := NewContractGenerator(GeneratorWithClock(fixedClock))
	res := g.GenerateContract(GenerateContractRequest{Input: logoInput()})
	require.True(t, res.Success)

	text := RenderText(res.Document)

	assert.True(t, strings.HasPrefix(text, "로고 디자인 제작형 계약서\n"))
	assert.Contains(t, text, "제1조 (계약의 목적)")
	assert.Contains(t, text, "계약 금액: 금 2,000,000원")
	assert.Contains(t, text, "갑: 주식회사 갑 (서명)")
	assert.NotContains(t, text, "{")
	assert.Equal(t, "", RenderText(nil))
}
