package clauses

import (
	"fmt"
	"sort"
)

// Variable names one of the six categorical contract-shape variables
type Variable string

const (
	ExecutionCycle Variable = "execution_cycle"
	ServiceType    Variable = "service_type"
	Complexity     Variable = "complexity"
	ProjectScale   Variable = "project_scale"
	Location       Variable = "location"
	Equipment      Variable = "equipment"
)

// Variables lists every variable in display order
var Variables = []Variable{
	ExecutionCycle,
	ServiceType,
	Complexity,
	ProjectScale,
	Location,
	Equipment,
}

// Variable values
const (
	CycleSingle     = "single"
	CyclePeriodic   = "periodic"
	CycleContinuous = "continuous"

	TypeManufacturing = "manufacturing"
	TypeService       = "service"
	TypeConsulting    = "consulting"
	TypeComplex       = "complex"

	ComplexitySimple  = "simple"
	ComplexityMedium  = "medium"
	ComplexityComplex = "complex"

	ScaleSmall  = "small"
	ScaleMedium = "medium"
	ScaleLarge  = "large"

	LocationOnsite = "onsite"
	LocationRemote = "remote"
	LocationHybrid = "hybrid"

	EquipmentLarge      = "large"
	EquipmentSmall      = "small"
	EquipmentIntangible = "intangible"
)

// VariableSpec describes the closed value set of a variable
type VariableSpec struct {
	Label  string            `json:"label"`
	Values []string          `json:"values"`
	Labels map[string]string `json:"labels"`
}

var domain = map[Variable]VariableSpec{
	ExecutionCycle: {
		Label:  "수행 주기",
		Values: []string{CycleSingle, CyclePeriodic, CycleContinuous},
		Labels: map[string]string{
			CycleSingle:     "일회성",
			CyclePeriodic:   "정기형",
			CycleContinuous: "계속형",
		},
	},
	ServiceType: {
		Label:  "용역 유형",
		Values: []string{TypeManufacturing, TypeService, TypeConsulting, TypeComplex},
		Labels: map[string]string{
			TypeManufacturing: "제작형",
			TypeService:       "용역형",
			TypeConsulting:    "자문형",
			TypeComplex:       "복합형",
		},
	},
	Complexity: {
		Label:  "업무 복잡도",
		Values: []string{ComplexitySimple, ComplexityMedium, ComplexityComplex},
		Labels: map[string]string{
			ComplexitySimple:  "단순",
			ComplexityMedium:  "보통",
			ComplexityComplex: "복잡",
		},
	},
	ProjectScale: {
		Label:  "프로젝트 규모",
		Values: []string{ScaleSmall, ScaleMedium, ScaleLarge},
		Labels: map[string]string{
			ScaleSmall:  "소규모",
			ScaleMedium: "중규모",
			ScaleLarge:  "대규모",
		},
	},
	Location: {
		Label:  "수행 장소",
		Values: []string{LocationOnsite, LocationRemote, LocationHybrid},
		Labels: map[string]string{
			LocationOnsite: "현장",
			LocationRemote: "원격",
			LocationHybrid: "혼합",
		},
	},
	Equipment: {
		Label:  "장비 사용",
		Values: []string{EquipmentLarge, EquipmentSmall, EquipmentIntangible},
		Labels: map[string]string{
			EquipmentLarge:      "대형 장비",
			EquipmentSmall:      "소형 장비",
			EquipmentIntangible: "무형",
		},
	},
}

// ListVariables returns a copy of the variable domain
func ListVariables() map[Variable]VariableSpec {
	out := make(map[Variable]VariableSpec, len(domain))
	for v, spec := range domain {
		labels := make(map[string]string, len(spec.Labels))
		for k, l := range spec.Labels {
			labels[k] = l
		}
		out[v] = VariableSpec{
			Label:  spec.Label,
			Values: append([]string(nil), spec.Values...),
			Labels: labels,
		}
	}
	return out
}

// IsValidValue reports whether value belongs to the declared domain of v
func IsValidValue(v Variable, value string) bool {
	spec, ok := domain[v]
	if !ok {
		return false
	}
	for _, allowed := range spec.Values {
		if allowed == value {
			return true
		}
	}
	return false
}

// ValueLabel returns the display label of a value, or the value itself when unknown
func ValueLabel(v Variable, value string) string {
	if spec, ok := domain[v]; ok {
		if label, ok := spec.Labels[value]; ok {
			return label
		}
	}
	return value
}

// Assignment maps each variable to one value of its domain
type Assignment map[Variable]string

// DefaultAssignment is used when neither the caller nor inference supplies a value
func DefaultAssignment() Assignment {
	return Assignment{
		ExecutionCycle: CycleSingle,
		ServiceType:    TypeService,
		Complexity:     ComplexityMedium,
		ProjectScale:   ScaleSmall,
		Location:       LocationHybrid,
		Equipment:      EquipmentIntangible,
	}
}

// Clone returns an independent copy
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Merge returns a copy of a with every non-empty value of over applied on top
func (a Assignment) Merge(over Assignment) Assignment {
	out := a.Clone()
	for k, v := range over {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

// Complete reports whether every variable has a value
func (a Assignment) Complete() bool {
	for _, v := range Variables {
		if a[v] == "" {
			return false
		}
	}
	return true
}

// StringMap converts the assignment for JSON storage
func (a Assignment) StringMap() map[string]string {
	out := make(map[string]string, len(a))
	for k, v := range a {
		out[string(k)] = v
	}
	return out
}

// AssignmentFromMap builds an assignment from loosely typed input
func AssignmentFromMap(m map[string]string) Assignment {
	out := make(Assignment, len(m))
	for k, v := range m {
		out[Variable(k)] = v
	}
	return out
}

// ValidateAssignment returns advisory warnings. It never fails selection.
func ValidateAssignment(a Assignment) []string {
	var warnings []string
	for _, v := range Variables {
		value, ok := a[v]
		if !ok || value == "" {
			warnings = append(warnings, fmt.Sprintf("missing variable %s", v))
			continue
		}
		if !IsValidValue(v, value) {
			warnings = append(warnings, fmt.Sprintf("invalid value %q for variable %s", value, v))
		}
	}

	var unknown []string
	for k := range a {
		if _, ok := domain[k]; !ok {
			unknown = append(unknown, string(k))
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		warnings = append(warnings, fmt.Sprintf("unknown variable %s", k))
	}
	return warnings
}
