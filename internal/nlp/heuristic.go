package nlp

import (
	"strings"

	"smartreply/internal/models"
)

// categoryKeywords pairs each category with its keyword substrings. Kept as an
// ordered slice, not a map: when two categories tie on keyword count the
// earliest one wins, and that order is observable behavior.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{models.CategoryStatus, []string{
		"status", "atualizacao", "andamento", "chamado", "protocolo", "ticket",
	}},
	{models.CategoryTechSupport, []string{
		"erro", "bug", "falha", "stack", "trace", "log", "api", "timeout", "homologacao",
	}},
	{models.CategoryFinance, []string{
		"fatura", "boleto", "nota fiscal", "nf", "cobranca", "pagamento", "reembolso", "financeiro",
	}},
	{models.CategoryDocuments, []string{
		"anexo", "documento", "arquivo", "pdf", "planilha", "contrato",
	}},
	{models.CategoryAccess, []string{
		"acesso", "login", "senha", "reset", "bloqueio", "liberacao",
	}},
	{models.CategoryUnproductive, []string{
		"feliz natal", "boas festas", "parabens", "agradeço", "obrigado", "abraços", "convite",
	}},
}

// HeuristicEngine is the engine tag reported when the keyword stage decides.
const HeuristicEngine = "Heuristic"

// HeuristicClassify scores each category by how many of its keywords occur in
// the accent-folded text and returns the best one. It is total: uninformative
// text (every score zero) defaults to the status category at 0.55 confidence.
func HeuristicClassify(text string) (label string, confidence float64) {
	folded := FoldAccents(text)

	bestLabel := ""
	bestScore := -1
	for _, entry := range categoryKeywords {
		score := 0
		for _, kw := range entry.keywords {
			if strings.Contains(folded, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			bestLabel = entry.category
		}
	}

	if bestScore == 0 {
		return models.CategoryStatus, 0.55
	}
	confidence = 0.5 + 0.1*float64(bestScore)
	if confidence > 0.95 {
		confidence = 0.95
	}
	return bestLabel, confidence
}
