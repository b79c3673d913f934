package lessons

import "fmt"

// conceptSourceLimit bounds the lesson excerpt sent for concept extraction.
const conceptSourceLimit = 3000

func buildLessonPrompt(topic string) string {
	return fmt.Sprintf("Crie uma aula de Direito completa sobre \"%s\" focada em concursos públicos e graduação. Use Markdown rico.", topic)
}

func buildConceptsPrompt(content string) string {
	return fmt.Sprintf("Extraia os 5 principais conceitos jurídicos (bullet points) deste texto: %s...", truncate(content, conceptSourceLimit))
}

// truncate keeps the first n runes of s.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
