package clauses

// Korean freelance/service contract catalog. 갑 is the client, 을 the provider.

var krClauses = []Clause{
	// Mandatory
	{
		ID:        "contract_purpose",
		Title:     "계약의 목적",
		Content:   "본 계약은 {client_name}(이하 \"갑\")이 {provider_name}(이하 \"을\")에게 \"{service_name}\" 업무를 위탁하고, 을이 이를 성실히 수행함에 있어 필요한 제반 사항을 정함을 목적으로 한다.",
		Essential: true,
		Order:     1,
	},
	{
		ID:    "parties",
		Title: "계약 당사자",
		Content: "갑: {client_name} (연락처: {client_contact}, 이메일: {client_email}, 주소: {client_address})\n" +
			"을: {provider_name} (연락처: {provider_contact}, 이메일: {provider_email}, 주소: {provider_address})",
		Essential: true,
		Order:     2,
	},
	{
		ID:        "effective_date",
		Title:     "계약 기간 및 효력",
		Content:   "본 계약의 기간은 {start_date}부터 {end_date}까지({duration_days}일)로 하며, 계약은 양 당사자가 서명 또는 날인한 {contract_date}부터 효력이 발생한다.",
		Essential: true,
		Order:     3,
	},
	{
		ID:        "payment_basic",
		Title:     "계약 금액 및 지급",
		Content:   "본 계약의 총 금액은 금 {contract_amount_formatted}원({contract_amount_korean})으로 하며, 부가가치세 별도 여부는 당사자 간 별도 합의에 따른다. 대금 지급 방식은 {payment_method}으로 한다.",
		Essential: true,
		Order:     30,
	},
	{
		ID:        "termination_basic",
		Title:     "계약의 해지",
		Content:   "당사자 일방이 본 계약상의 의무를 위반한 경우 상대방은 {notice_period}의 기간을 정하여 시정을 요구할 수 있으며, 그 기간 내에 시정되지 않을 경우 서면 통지로 본 계약을 해지할 수 있다.",
		Essential: true,
		Order:     90,
	},
	{
		ID:        "dispute_resolution",
		Title:     "분쟁 해결",
		Content:   "본 계약과 관련하여 분쟁이 발생한 경우 갑과 을은 상호 협의하여 원만히 해결하도록 노력하며, 협의가 이루어지지 않을 경우 관계 법령에 따른 조정 절차를 거칠 수 있다.",
		Essential: true,
		Order:     97,
	},
	{
		ID:        "governing_law",
		Title:     "준거법 및 관할",
		Content:   "본 계약은 대한민국 법률에 따라 해석되며, 본 계약에 관한 소송은 갑의 주소지를 관할하는 법원을 제1심 관할 법원으로 한다.",
		Essential: true,
		Order:     98,
	},

	// Execution cycle
	{
		ID:        "single_delivery",
		Title:     "일회성 수행 및 납품",
		Content:   "을은 계약 기간 내에 \"{service_name}\" 업무를 1회 완료하고 결과물을 {delivery_method} 방식으로 갑에게 인도한다.",
		Order:     12,
		Variables: []string{"execution_cycle:single"},
	},
	{
		ID:        "periodic_service",
		Title:     "정기 용역 수행",
		Content:   "을은 계약 기간 동안 당사자가 합의한 주기에 따라 \"{service_name}\" 업무를 반복 수행하며, 각 회차의 수행 일정은 사전에 갑과 협의하여 정한다.",
		Order:     12,
		Variables: []string{"execution_cycle:periodic"},
	},
	{
		ID:        "periodic_payment",
		Title:     "정기 대금 지급",
		Content:   "갑은 각 수행 주기가 종료된 후 을이 제출한 수행 내역을 확인하고, 확인일로부터 14일 이내에 해당 주기의 대금을 지급한다.",
		Order:     34,
		Variables: []string{"execution_cycle:periodic"},
	},
	{
		ID:        "continuous_service",
		Title:     "계속적 용역 수행",
		Content:   "을은 계약 기간 동안 \"{service_name}\" 업무를 중단 없이 계속 수행하며, 불가피한 사유로 업무가 중단될 경우 지체 없이 갑에게 통지하여야 한다.",
		Order:     12,
		Variables: []string{"execution_cycle:continuous"},
	},
	{
		ID:        "renewal_terms",
		Title:     "계약 갱신",
		Content:   "계약 기간 만료 {notice_period} 전까지 어느 당사자도 서면으로 갱신 거절의 의사를 표시하지 않는 경우 본 계약은 동일한 조건으로 갱신된 것으로 본다.",
		Order:     92,
		Variables: []string{"execution_cycle:continuous"},
	},

	// Service type
	{
		ID:        "service_scope",
		Title:     "용역의 범위",
		Content:   "을이 수행할 용역의 범위는 다음과 같다: {service_description}. 위 범위를 벗어나는 업무는 별도의 합의가 있는 경우에 한하여 수행한다.",
		Essential: true,
		Order:     10,
		Variables: []string{"service_type:service"},
	},
	{
		ID:        "consulting_scope",
		Title:     "자문의 범위",
		Content:   "을은 갑의 요청에 따라 다음 사항에 관한 자문을 제공한다: {service_description}. 을의 자문은 전문가로서의 의견 제시에 한하며, 최종 의사결정은 갑이 한다.",
		Essential: true,
		Order:     10,
		Variables: []string{"service_type:consulting"},
	},
	{
		ID:        "complex_scope",
		Title:     "복합 용역의 범위",
		Content:   "을은 다음 업무를 일괄하여 수행한다: {service_description}. 업무는 기획, 제작, 운영 등 단계별로 구분하여 수행하며, 각 단계의 범위는 별첨 업무 명세에 따른다.",
		Essential: true,
		Order:     10,
		Variables: []string{"service_type:complex"},
	},
	{
		ID:        "manufacturing_deliverable",
		Title:     "결과물의 제작 및 납품",
		Content:   "을은 \"{service_name}\"의 결과물을 {deliverable_format} 형태로 제작하여 {end_date}까지 {delivery_method} 방식으로 납품한다.",
		Essential: true,
		Order:     20,
		Variables: []string{"service_type:manufacturing", "service_type:complex"},
	},
	{
		ID:        "inspection_acceptance",
		Title:     "검수",
		Content:   "갑은 결과물을 인도받은 날로부터 7일 이내에 검수를 완료하고 그 결과를 을에게 통지한다. 위 기간 내에 통지가 없는 경우 검수에 합격한 것으로 본다. 검수 방식은 {evaluation_method}에 따른다.",
		Order:     24,
		Variables: []string{"service_type:manufacturing"},
	},
	{
		ID:        "service_completion",
		Title:     "용역 완료 확인",
		Content:   "을은 용역을 완료한 때에 지체 없이 갑에게 완료 사실을 통지하고, 갑은 {evaluation_method}의 방법으로 완료 여부를 확인한다.",
		Order:     25,
		Variables: []string{"service_type:service", "service_type:complex"},
	},
	{
		ID:        "consulting_disclaimer",
		Title:     "자문 결과의 활용",
		Content:   "갑은 을의 자문 결과를 자신의 판단과 책임하에 활용하며, 을은 고의 또는 중대한 과실이 없는 한 자문 결과의 활용으로 인한 손해에 대하여 책임을 지지 않는다.",
		Order:     26,
		Variables: []string{"service_type:consulting"},
	},
	{
		ID:        "project_manager",
		Title:     "업무 책임자 지정",
		Content:   "갑과 을은 각각 본 계약의 이행을 위한 업무 책임자를 지정하여 상대방에게 서면으로 통지하며, 업무 책임자를 변경하는 경우에도 같다.",
		Order:     15,
		Variables: []string{"service_type:complex", "project_scale:large"},
	},
	{
		ID:        "intellectual_property",
		Title:     "지식재산권의 귀속",
		Content:   "결과물에 대한 저작권 등 지식재산권은 갑이 계약 금액을 완납한 때에 갑에게 귀속된다. 다만, 을이 계약 이전부터 보유하던 기술 및 자료에 대한 권리는 을에게 유보된다.",
		Order:     70,
		Variables: []string{"service_type:manufacturing", "service_type:complex"},
	},

	// Complexity
	{
		ID:        "simple_workflow",
		Title:     "간이 업무 절차",
		Content:   "본 업무는 별도의 중간 보고 없이 착수 후 완료 시점에 결과를 확인하는 간이 절차로 진행하며, 수정 요청은 최대 {max_revisions}회까지 가능하다.",
		Order:     40,
		Variables: []string{"complexity:simple"},
	},
	{
		ID:        "milestone_review",
		Title:     "단계별 검토",
		Content:   "을은 업무를 주요 단계로 구분하여 각 단계 종료 시 중간 결과를 갑에게 제출하고, 갑은 제출일로부터 5일 이내에 검토 의견을 제시한다.",
		Order:     41,
		Variables: []string{"complexity:medium", "complexity:complex"},
	},
	{
		ID:        "change_management",
		Title:     "업무 변경 관리",
		Content:   "업무 범위, 일정 또는 사양의 변경은 서면 합의에 의하며, 변경으로 인하여 비용이나 기간의 조정이 필요한 경우 당사자는 성실히 협의하여 이를 정한다.",
		Order:     42,
		Variables: []string{"complexity:complex"},
	},
	{
		ID:        "revision_policy",
		Title:     "수정 요청",
		Content:   "갑은 결과물에 대하여 최대 {max_revisions}회까지 무상 수정을 요청할 수 있으며, 이를 초과하는 수정 또는 범위를 벗어나는 수정은 별도 비용을 협의한다.",
		Order:     43,
		Variables: []string{"complexity:medium", "complexity:complex"},
	},
	{
		ID:        "detailed_specification",
		Title:     "상세 업무 명세",
		Content:   "을이 수행할 업무의 세부 사양, 일정 및 산출물 목록은 별첨 업무 명세서에 따르며, 업무 명세서는 본 계약의 일부를 구성한다.",
		Order:     11,
		Variables: []string{"complexity:complex"},
	},

	// Project scale
	{
		ID:        "small_scale_payment",
		Title:     "대금의 일괄 지급",
		Content:   "갑은 업무 완료 확인일로부터 7일 이내에 계약 금액 {final_payment_amount}원을 을이 지정한 계좌로 일괄 지급한다.",
		Essential: true,
		Order:     31,
		Variables: []string{"project_scale:small"},
	},
	{
		ID:        "payment_installment",
		Title:     "분할 지급",
		Content:   "갑은 계약 체결 시 선금으로 계약 금액의 {down_payment_rate}%인 {down_payment_amount}원을, 업무 완료 확인 후 잔금으로 {final_payment_rate}%인 {final_payment_amount}원을 지급한다.",
		Essential: true,
		Order:     31,
		Variables: []string{"project_scale:medium"},
	},
	{
		ID:    "payment_detailed",
		Title: "대금의 단계별 지급",
		Content: "갑은 다음과 같이 대금을 지급한다.\n" +
			"1. 선금: 계약 체결 후 7일 이내 {down_payment_rate}% ({down_payment_amount}원)\n" +
			"2. 중도금: 중간 결과 승인 후 7일 이내 {interim_payment_rate}% ({interim_payment_amount}원)\n" +
			"3. 잔금: 최종 검수 완료 후 7일 이내 {final_payment_rate}% ({final_payment_amount}원)",
		Essential: true,
		Order:     31,
		Variables: []string{"project_scale:large"},
	},
	{
		ID:        "payment_guarantee",
		Title:     "지급 보증",
		Content:   "을은 선금 수령 전 선금에 상당하는 금액의 보증서를 갑에게 제출하여야 하며, 갑은 선금 정산이 완료된 때에 이를 반환한다.",
		Order:     33,
		Variables: []string{"project_scale:large"},
	},
	{
		ID:        "performance_bond",
		Title:     "계약 이행 보증",
		Content:   "을은 계약 체결일로부터 14일 이내에 계약 금액의 10%에 해당하는 계약이행보증금 또는 이에 갈음하는 보증서를 갑에게 제출한다.",
		Order:     35,
		Variables: []string{"project_scale:large"},
	},

	// Location
	{
		ID:        "onsite_work",
		Title:     "현장 업무 수행",
		Content:   "을은 갑이 지정한 장소에서 업무를 수행하며, 현장의 출입 및 보안 규정을 준수한다. 현장 업무 수행에 필요한 출장비는 {travel_policy}.",
		Order:     50,
		Variables: []string{"location:onsite"},
	},
	{
		ID:        "remote_work",
		Title:     "원격 업무 수행",
		Content:   "을은 자신이 선택한 장소에서 원격으로 업무를 수행할 수 있으며, 갑은 업무 수행 장소 및 시간을 지정하지 아니한다. 결과물은 {delivery_method} 방식으로 전달한다.",
		Order:     50,
		Variables: []string{"location:remote"},
	},
	{
		ID:        "hybrid_work",
		Title:     "혼합형 업무 수행",
		Content:   "을은 원칙적으로 원격으로 업무를 수행하되, 회의 또는 현장 확인이 필요한 경우 갑과 협의하여 방문 일정을 정한다. 방문에 소요되는 경비는 {travel_policy}.",
		Order:     50,
		Variables: []string{"location:hybrid"},
	},
	{
		ID:        "communication_protocol",
		Title:     "업무 소통",
		Content:   "갑과 을은 이메일 또는 합의한 메신저를 주된 소통 수단으로 하며, 업무 시간 내 수신한 요청에 대하여 1영업일 이내에 회신하도록 노력한다.",
		Order:     51,
		Variables: []string{"location:remote"},
	},
	{
		ID:        "travel_expenses",
		Title:     "출장 및 경비",
		Content:   "업무 수행을 위한 교통비, 숙박비 등 출장 경비는 {travel_policy}. 경비 청구 시 을은 증빙 자료를 첨부하여야 한다.",
		Order:     52,
		Variables: []string{"location:onsite", "location:hybrid"},
	},

	// Equipment
	{
		ID:        "equipment_large",
		Title:     "대형 장비의 사용",
		Content:   "업무 수행에 필요한 대형 장비의 운반, 설치 및 운용은 을이 책임지며, 장비 운용 인력은 관계 법령에서 정한 자격을 갖추어야 한다.",
		Order:     60,
		Variables: []string{"equipment:large"},
	},
	{
		ID:        "equipment_small",
		Title:     "장비 및 도구",
		Content:   "업무 수행에 필요한 장비와 도구는 을이 준비하며, 그 관리 책임은 을에게 있다. 다만, 갑이 제공한 장비는 갑의 소유로 하며 업무 종료 후 반환한다.",
		Order:     60,
		Variables: []string{"equipment:small"},
	},
	{
		ID:        "safety_obligation",
		Title:     "안전 관리 의무",
		Content:   "을은 업무 수행 중 산업안전보건 관련 법령을 준수하고 필요한 안전 조치를 하여야 하며, 을의 안전 조치 미흡으로 발생한 사고에 대하여는 을이 책임을 진다.",
		Order:     61,
		Variables: []string{"equipment:large"},
	},
	{
		ID:        "insurance",
		Title:     "보험 가입",
		Content:   "을은 업무 수행 중 발생할 수 있는 제3자의 인적·물적 손해를 보상하기 위하여 계약 기간 동안 배상책임보험에 가입하고 그 증권 사본을 갑에게 제출한다.",
		Order:     62,
		Variables: []string{"equipment:large", "project_scale:large"},
	},

	// Conditional
	{
		ID:         "safety_management_detailed",
		Title:      "현장 안전 관리 세부사항",
		Content:    "현장에서 대형 장비를 사용하는 경우 을은 작업 개시 전 안전 교육을 실시하고 작업 계획서를 갑에게 제출하며, 작업 중에는 안전 관리자를 배치한다.",
		Order:      63,
		Conditions: []Condition{{Variable: Location, Values: []string{LocationOnsite}}, {Variable: Equipment, Values: []string{EquipmentLarge}}},
		Operator:   OperatorAnd,
	},
	{
		ID:         "delay_penalty",
		Title:      "지체상금",
		Content:    "을이 정당한 사유 없이 납기를 지체한 경우 지체 1일당 계약 금액의 0.1%에 해당하는 지체상금을 갑에게 지급하며, 그 총액은 계약 금액의 {penalty_rate}%를 초과하지 아니한다.",
		Order:      80,
		Conditions: []Condition{{Variable: ProjectScale, Values: []string{ScaleLarge}}, {Variable: Complexity, Values: []string{ComplexityComplex}}},
		Operator:   OperatorOr,
	},
	{
		ID:         "warranty",
		Title:      "하자 보수",
		Content:    "을은 결과물 인도일로부터 {warranty_period} 동안 결과물의 하자에 대하여 무상으로 보수할 책임을 진다.",
		Order:      82,
		Conditions: []Condition{{Variable: ServiceType, Values: []string{TypeManufacturing, TypeComplex}}, {Variable: ProjectScale, Values: []string{ScaleMedium, ScaleLarge}}},
		Operator:   OperatorAnd,
	},
	{
		ID:         "confidentiality",
		Title:      "비밀유지",
		Content:    "갑과 을은 본 계약의 이행 과정에서 알게 된 상대방의 영업상·기술상 비밀을 계약 기간 중은 물론 계약 종료 후 2년간 제3자에게 누설하거나 본 계약 외의 목적으로 사용하지 아니한다.",
		Order:      72,
		Conditions: []Condition{{Variable: ServiceType, Values: []string{TypeConsulting}}, {Variable: Complexity, Values: []string{ComplexityComplex}}},
		Operator:   OperatorOr,
	},
	{
		ID:         "regular_reporting",
		Title:      "정기 보고",
		Content:    "을은 매월 말일까지 해당 월의 업무 수행 현황을 서면 또는 전자우편으로 갑에게 보고한다.",
		Order:      44,
		Conditions: []Condition{{Variable: ExecutionCycle, Values: []string{CyclePeriodic, CycleContinuous}}},
		Operator:   OperatorOr,
	},
	{
		ID:         "data_security",
		Title:      "자료 보안",
		Content:    "을은 원격 업무 수행 중 갑으로부터 제공받은 자료를 암호화된 저장소에 보관하고, 업무 종료 후 지체 없이 반환하거나 파기한 후 그 사실을 갑에게 통지한다.",
		Order:      73,
		Conditions: []Condition{{Variable: Location, Values: []string{LocationRemote}}, {Variable: Equipment, Values: []string{EquipmentIntangible}}},
		Operator:   OperatorAnd,
	},
	{
		ID:         "subcontracting",
		Title:      "재위탁의 제한",
		Content:    "을은 갑의 사전 서면 동의 없이 본 계약상 업무의 전부 또는 일부를 제3자에게 재위탁할 수 없다.",
		Order:      75,
		Conditions: []Condition{{Variable: ProjectScale, Values: []string{ScaleMedium, ScaleLarge}}},
		Operator:   OperatorOr,
	},
}

var krRules = Rules{
	Mandatory: []string{
		"contract_purpose",
		"parties",
		"effective_date",
		"payment_basic",
		"termination_basic",
		"dispute_resolution",
		"governing_law",
	},
	PerVariable: map[Variable]map[string][]string{
		ExecutionCycle: {
			CycleSingle:     {"single_delivery"},
			CyclePeriodic:   {"periodic_service", "periodic_payment"},
			CycleContinuous: {"continuous_service", "renewal_terms"},
		},
		ServiceType: {
			TypeManufacturing: {"manufacturing_deliverable", "inspection_acceptance", "intellectual_property"},
			TypeService:       {"service_scope", "service_completion"},
			TypeConsulting:    {"consulting_scope", "consulting_disclaimer"},
			TypeComplex:       {"complex_scope", "manufacturing_deliverable", "service_completion", "intellectual_property", "project_manager"},
		},
		Complexity: {
			ComplexitySimple:  {"simple_workflow"},
			ComplexityMedium:  {"milestone_review", "revision_policy"},
			ComplexityComplex: {"detailed_specification", "milestone_review", "change_management", "revision_policy"},
		},
		ProjectScale: {
			ScaleSmall:  {"small_scale_payment"},
			ScaleMedium: {"payment_installment"},
			ScaleLarge:  {"payment_detailed", "payment_guarantee", "performance_bond"},
		},
		Location: {
			LocationOnsite: {"onsite_work", "travel_expenses"},
			LocationRemote: {"remote_work", "communication_protocol"},
			LocationHybrid: {"hybrid_work", "travel_expenses"},
		},
		Equipment: {
			EquipmentLarge: {"equipment_large", "safety_obligation", "insurance"},
			EquipmentSmall: {"equipment_small"},
		},
	},
	Conditional: []ConditionalRule{
		{
			Name:       "onsite_heavy_equipment",
			Conditions: []Condition{{Variable: Location, Values: []string{LocationOnsite}}, {Variable: Equipment, Values: []string{EquipmentLarge}}},
			Operator:   OperatorAnd,
			ClauseIDs:  []string{"safety_management_detailed"},
		},
		{
			Name:       "delay_penalty",
			Conditions: []Condition{{Variable: ProjectScale, Values: []string{ScaleLarge}}, {Variable: Complexity, Values: []string{ComplexityComplex}}},
			Operator:   OperatorOr,
			ClauseIDs:  []string{"delay_penalty"},
		},
		{
			Name:       "deliverable_warranty",
			Conditions: []Condition{{Variable: ServiceType, Values: []string{TypeManufacturing, TypeComplex}}, {Variable: ProjectScale, Values: []string{ScaleMedium, ScaleLarge}}},
			Operator:   OperatorAnd,
			ClauseIDs:  []string{"warranty"},
		},
		{
			Name:       "confidential_work",
			Conditions: []Condition{{Variable: ServiceType, Values: []string{TypeConsulting}}, {Variable: Complexity, Values: []string{ComplexityComplex}}},
			Operator:   OperatorOr,
			ClauseIDs:  []string{"confidentiality"},
		},
		{
			Name:       "recurring_reporting",
			Conditions: []Condition{{Variable: ExecutionCycle, Values: []string{CyclePeriodic, CycleContinuous}}},
			Operator:   OperatorOr,
			ClauseIDs:  []string{"regular_reporting"},
		},
		{
			Name:       "remote_data",
			Conditions: []Condition{{Variable: Location, Values: []string{LocationRemote}}, {Variable: Equipment, Values: []string{EquipmentIntangible}}},
			Operator:   OperatorAnd,
			ClauseIDs:  []string{"data_security"},
		},
		{
			Name:       "large_complex_management",
			Conditions: []Condition{{Variable: ProjectScale, Values: []string{ScaleLarge}}, {Variable: Complexity, Values: []string{ComplexityComplex}}},
			Operator:   OperatorAnd,
			ClauseIDs:  []string{"project_manager"},
		},
		{
			Name:       "subcontract_limit",
			Conditions: []Condition{{Variable: ProjectScale, Values: []string{ScaleMedium, ScaleLarge}}},
			Operator:   OperatorOr,
			ClauseIDs:  []string{"subcontracting"},
		},
		{
			Name:       "onsite_large_insurance",
			Conditions: []Condition{{Variable: Location, Values: []string{LocationOnsite}}, {Variable: ProjectScale, Values: []string{ScaleLarge}}},
			Operator:   OperatorAnd,
			ClauseIDs:  []string{"insurance"},
		},
	},
	Exclusion: []ExclusionRule{
		{
			Name:       "remote_no_site",
			Conditions: []Condition{{Variable: Location, Values: []string{LocationRemote}}},
			ClauseIDs:  []string{"onsite_work", "travel_expenses", "safety_obligation", "safety_management_detailed"},
		},
		{
			Name:       "small_simple_light",
			Conditions: []Condition{{Variable: ProjectScale, Values: []string{ScaleSmall}}, {Variable: Complexity, Values: []string{ComplexitySimple}}},
			ClauseIDs:  []string{"performance_bond", "payment_guarantee", "milestone_review", "change_management", "delay_penalty"},
		},
		{
			Name:       "consulting_no_acceptance",
			Conditions: []Condition{{Variable: ServiceType, Values: []string{TypeConsulting}}},
			ClauseIDs:  []string{"inspection_acceptance", "warranty"},
		},
		{
			Name:       "single_simple_no_reporting",
			Conditions: []Condition{{Variable: ExecutionCycle, Values: []string{CycleSingle}}, {Variable: Complexity, Values: []string{ComplexitySimple}}},
			ClauseIDs:  []string{"regular_reporting"},
		},
	},
}

// DefaultCatalog returns the built-in Korean catalog
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(krRules, krClauses...)
	if err != nil {
		panic("clauses: invalid built-in catalog: " + err.Error())
	}
	return c
}
