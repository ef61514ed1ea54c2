package nlp

import "smartreply/internal/models"

// TemplateReply returns the canned reply for a category. The texts are a
// compatibility contract with the previous service generation and must not be
// reworded. Unknown categories fall through to the catch-all template.
func TemplateReply(category string) string {
	switch category {
	case models.CategoryStatus:
		return "Olá!\n\n" +
			"Estamos acompanhando o chamado e queremos manter você atualizado(a). " +
			"Para avançarmos, confirme o número do protocolo e, se possível, algum identificador (CPF/CNPJ ou referência interna). " +
			"Assim que tivermos novidades, retornaremos em até 24h úteis.\n\n" +
			"Conte conosco,\nEquipe de Suporte"
	case models.CategoryTechSupport:
		return "Olá!\n\n" +
			"Obrigado por detalhar o ocorrido. Para aprofundarmos a análise, envie por gentileza:\n" +
			"- Passos exatos para reproduzir\n" +
			"- Data/hora aproximada do incidente\n" +
			"- Ambiente utilizado (produção/homologação)\n" +
			"- Prints ou logs do erro\n\n" +
			"Com essas informações priorizamos sua demanda e retornamos com a solução o quanto antes.\n\n" +
			"Atenciosamente,\nEquipe Técnica"
	case models.CategoryFinance:
		return "Olá!\n\n" +
			"Recebemos sua solicitação financeira e já estamos cuidando. " +
			"Para agilizar, confirme o número da fatura/nota, CNPJ e valor envolvido. " +
			"Se tiver comprovante ou boleto, pode anexar também. Assim que validarmos, retornamos imediatamente.\n\n" +
			"Até breve,\nTime Financeiro"
	case models.CategoryDocuments:
		return "Olá!\n\n" +
			"Identificamos sua solicitação envolvendo documentos/anexos. " +
			"Confirme quais arquivos precisamos validar e, se possível, envie-os em PDF. " +
			"Assim que revisarmos o material, informaremos o próximo passo.\n\n" +
			"Obrigado pela parceria,\nEquipe"
	case models.CategoryAccess:
		return "Olá!\n\n" +
			"Vamos apoiá-lo com o acesso/senha. informe o usuário/login e o sistema afetado. " +
			"Se algum erro aparecer na tela, compartilhe a mensagem. Com isso, conseguimos liberar ou redefinir rapidamente.\n\n" +
			"Estamos à disposição,\nSuporte ao Usuário"
	default:
		return "Olá!\n\n" +
			"Agradecemos a sua mensagem! No momento não há nenhuma ação necessária. " +
			"Se surgir alguma demanda específica, escreva pra gente e teremos prazer em ajudar.\n\n" +
			"Abraços,\nEquipe"
	}
}
