package rag

import (
	"fmt"
	"strings"

	"github.com/PauloHFS/biblio/internal/vector"
)

// formatContext monta os blocos de contexto na mesma ordem da busca
// (similaridade decrescente), separados por linha em branco.
func formatContext(authors []vector.SimilarityResult) string {
	blocks := make([]string, len(authors))
	for i, a := range authors {
		blocks[i] = fmt.Sprintf("Autor: %s\nEmail: %s\nBio: %s\nExpertise: %s",
			a.Name, a.Email, a.Bio, a.Expertise)
	}
	return strings.Join(blocks, "\n\n")
}

func buildAnswerPrompt(question string, authors []vector.SimilarityResult) string {
	return fmt.Sprintf(`Com base nos seguintes autores encontrados:

%s

Responda a seguinte pergunta: %s

Forneça uma resposta detalhada e informativa baseada apenas nas informações fornecidas.`,
		formatContext(authors), question)
}
