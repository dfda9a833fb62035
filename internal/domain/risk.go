package domain

type RiskCategory string

const (
	RiskCategory_Tenure     RiskCategory = "TENURE"
	RiskCategory_Financial  RiskCategory = "FINANCIAL"
	RiskCategory_Legal      RiskCategory = "LEGAL"
	RiskCategory_Location   RiskCategory = "LOCATION"
	RiskCategory_Regulatory RiskCategory = "REGULATORY"
)

type RiskSeverity string

const (
	RiskSeverity_Info    RiskSeverity = "INFO"
	RiskSeverity_Warning RiskSeverity = "WARNING"
	RiskSeverity_Danger  RiskSeverity = "DANGER"
)

type ConfidenceLevel string

const (
	Confidence_High   ConfidenceLevel = "HIGH"
	Confidence_Medium ConfidenceLevel = "MEDIUM"
	Confidence_Low    ConfidenceLevel = "LOW"
)

type RiskFlag struct {
	ID             string       `json:"id"`
	Category       RiskCategory `json:"category"`
	Severity       RiskSeverity `json:"severity"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Recommendation string       `json:"recommendation,omitempty"`
}

type RiskAssessment struct {
	// 0-100, clamped at 0
	OverallScore   int             `json:"overallScore"`
	Flags          []RiskFlag      `json:"flags"`
	DataConfidence ConfidenceLevel `json:"dataConfidence"`
}

func (a RiskAssessment) HasFlag(id string) bool {
	for _, flag := range a.Flags {
		if flag.ID == id {
			return true
		}
	}
	return false
}

func (a RiskAssessment) CountBySeverity(severity RiskSeverity) int {
	count := 0
	for _, flag := range a.Flags {
		if flag.Severity == severity {
			count++
		}
	}
	return count
}
