package service

import (
	"fmt"
	"strings"

	"contractdraft-backend/models"
	"contractdraft-backend/templating"
)

// RenderText renders a contract document as plain text for archiving
func RenderText(doc *models.ContractDocument) string {
	if doc == nil {
		return ""
	}

	var b strings.Builder
	info := doc.ContractInfo

	b.WriteString(info.Title)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "갑: %s\n", partyName(info.Client))
	fmt.Fprintf(&b, "을: %s\n", partyName(info.Provider))
	if info.Amount > 0 {
		fmt.Fprintf(&b, "계약 금액: 금 %s원\n", templating.FormatAmount(info.Amount))
	}
	if info.StartDate != "" && info.EndDate != "" {
		fmt.Fprintf(&b, "계약 기간: %s ~ %s\n", info.StartDate, info.EndDate)
	}

	for i, c := range doc.Clauses {
		fmt.Fprintf(&b, "\n제%d조 (%s)\n%s\n", i+1, c.Title, c.Content)
	}

	b.WriteString("\n위 계약의 성립을 증명하기 위하여 본 계약서 2부를 작성하여 갑과 을이 서명 또는 날인한 후 각 1부씩 보관한다.\n\n")
	fmt.Fprintf(&b, "갑: %s (서명)\n", partyName(info.Client))
	fmt.Fprintf(&b, "을: %s (서명)\n", partyName(info.Provider))

	return b.String()
}

func partyName(p models.Party) string {
	if strings.TrimSpace(p.Name) == "" {
		return templating.MissingValue
	}
	return p.Name
}
