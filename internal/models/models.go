package models

// Category labels, in declared order. The order is load-bearing: the heuristic
// classifier breaks score ties by picking the earliest category in this list.
const (
	CategoryStatus       = "Status de chamado"
	CategoryTechSupport  = "Suporte tecnico"
	CategoryFinance      = "Financeiro"
	CategoryDocuments    = "Documentos/Anexos"
	CategoryAccess       = "Acesso/Senha"
	CategoryUnproductive = "Saudações/Improdutivo"
)

// Categories is the fixed label set handed to every classifier stage.
var Categories = []string{
	CategoryStatus,
	CategoryTechSupport,
	CategoryFinance,
	CategoryDocuments,
	CategoryAccess,
	CategoryUnproductive,
}

// Overall (binary) categories derived from the primary category.
const (
	OverallProductive   = "Produtivo"
	OverallUnproductive = "Improdutivo"
)

// OverallFromCategory maps a primary category onto the binary axis. Only the
// greetings category counts as unproductive.
func OverallFromCategory(category string) string {
	if category == CategoryUnproductive {
		return OverallUnproductive
	}
	return OverallProductive
}

// ProcessResult is the outcome of running one text through the full
// classify-and-reply pipeline. Confidence is already rounded to 3 decimals.
type ProcessResult struct {
	PrimaryCategory string  `json:"primary_category"`
	OverallCategory string  `json:"overall_category"`
	Confidence      float64 `json:"confidence"`
	Engine          string  `json:"engine"`
	Reply           string  `json:"reply"`
	TextHash        string  `json:"text_hash"`
}

// ReportRow is one line of a ZIP batch report: a source filename plus the
// pipeline result for its extracted text.
type ReportRow struct {
	Arquivo string
	ProcessResult
}
