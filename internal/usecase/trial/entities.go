package trial

import "time"

type CreateTrialInput struct {
	PartName         string    `json:"part_name"`
	PatternCode      string    `json:"pattern_code"`
	MaterialGrade    string    `json:"material_grade"`
	Initiator        string    `json:"initiator"`
	SamplingDate     time.Time `json:"sampling_date"`
	MouldsPlanned    int       `json:"moulds_planned"`
	MouldsActual     int       `json:"moulds_actual"`
	SamplingReason   string    `json:"sampling_reason"`
	TraceabilityCode string    `json:"traceability_code"`
	Machine          string    `json:"machine"`
}

type TrialDTO struct {
	TrialID             string    `json:"trial_id"`
	PartName            string    `json:"part_name"`
	PatternCode         string    `json:"pattern_code"`
	MaterialGrade       string    `json:"material_grade"`
	Initiator           string    `json:"initiator"`
	SamplingDate        time.Time `json:"sampling_date"`
	MouldsPlanned       int       `json:"moulds_planned"`
	MouldsActual        int       `json:"moulds_actual"`
	SamplingReason      string    `json:"sampling_reason"`
	TraceabilityCode    string    `json:"traceability_code"`
	Machine             string    `json:"machine"`
	CurrentDepartmentID *uint     `json:"current_department_id"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
}
