package generation

import (
	"fmt"
	"strings"

	"github.com/jusmind/jusmind/internal/profile"
	"github.com/jusmind/jusmind/internal/question"
)

// SystemInstruction is the tutor persona sent with every request.
const SystemInstruction = `Você é o JusMind, um tutor especialista em Direito Brasileiro e preparação para Concursos de Alto Nível (Magistratura, MP, Procuradorias, Tribunais, ALERJ).

**DIRETRIZES ESTRITAS:**
1.  **Fundamentação Legal:** Cite o artigo exato (CF/88, Leis, Códigos).
2.  **Jurisprudência:** Cite Súmulas (STF/STJ) e Repercussão Geral sempre que pertinente.
3.  **Doutrina:** Cite autores clássicos quando houver divergência.
4.  **Localização:** Considere a legislação específica do Rio de Janeiro quando o contexto for TJRJ, ALERJ ou PGE-RJ.

**FORMATO:** Use Markdown. Negrito para prazos e exceções.`

// MissingCorrectOption stands in for the answer key when an objective item
// has no usable correct index.
const MissingCorrectOption = "Opção correta não identificada"

// QuizPrompt builds the structured-generation prompt for a practice set.
// The prompt spells out the item schema: field names, the type
// discriminator, difficulty labels and the array shape.
func QuizPrompt(topic string, p profile.Profile) string {
	var b strings.Builder

	if p.Modality == profile.OpenEnded {
		fmt.Fprintf(&b, "Gere %d questões DISCURSIVAS (Dissertativas ou Estudo de Caso) de Direito sobre %q.\n\n", p.Count, topic)
		fmt.Fprintf(&b, "CONTEXTO: %s\n", p.Difficulty)
		fmt.Fprintf(&b, "ESTILO: %s\n\n", p.Style)
		b.WriteString("Responda SOMENTE com um JSON Array, sem comentários antes ou depois.\n")
		b.WriteString("Schema Obrigatório (JSON Array):\n")
		fmt.Fprintf(&b, `[
  {
    "id": "...",
    "type": "discursive",
    "topic": %q,
    "difficulty": "Difícil",
    "text": "Descreva um caso prático complexo ou uma pergunta teórica profunda que exija raciocínio jurídico...",
    "referenceAnswer": "ESPELHO DE RESPOSTA (O que o candidato deve responder): 1. Deve citar o princípio X... 2. Deve mencionar a Súmula Y... 3. Conclusão no sentido Z...",
    "explanation": "Comentários adicionais sobre a doutrina aplicável."
  }
]
`, topic)
	} else {
		fmt.Fprintf(&b, "Gere um simulado JSON com EXATAMENTE %d questões OBJETIVAS de Direito sobre %q.\n\n", p.Count, topic)
		fmt.Fprintf(&b, "CONTEXTO: %s\n", p.Difficulty)
		fmt.Fprintf(&b, "ESTILO: %s\n\n", p.Style)
		b.WriteString("Responda SOMENTE com um JSON Array, sem comentários antes ou depois.\n")
		b.WriteString("Schema Obrigatório (JSON Array):\n")
		fmt.Fprintf(&b, `[
  {
    "id": "...",
    "type": "objective",
    "topic": %q,
    "difficulty": "Médio",
    "text": "Enunciado da questão...",
    "options": ["Alternativa A", "Alternativa B", "Alternativa C", "Alternativa D"],
    "correctAnswerIndex": 0,
    "explanation": "Fundamentação jurídica: A alternativa correta é a A pois conforme o Art. X da Lei Y..."
  }
]
`, topic)
	}

	b.WriteString("\nRegras do schema:\n")
	b.WriteString(`- "type" é obrigatório: "objective" ou "discursive".` + "\n")
	b.WriteString(`- "difficulty": "Fácil", "Médio" ou "Difícil".` + "\n")
	if p.Modality == profile.OpenEnded {
		b.WriteString(`- "referenceAnswer" traz o espelho de correção; não inclua "options" nem "correctAnswerIndex".` + "\n")
	} else {
		b.WriteString(`- "options" com 4 alternativas; "correctAnswerIndex" é o índice inteiro (a partir de 0) da alternativa correta.` + "\n")
	}
	return b.String()
}

// DeepDivePrompt asks for an examiner-style analysis of a discursive
// answer against the item's reference answer.
func DeepDivePrompt(q question.Question, answer string) string {
	var b strings.Builder
	b.WriteString("Atue como examinador de banca de concurso jurídico. Analise a resposta do candidato à questão discursiva abaixo.\n\n")
	fmt.Fprintf(&b, "Questão: \"%s\"\n\n", q.Text)
	fmt.Fprintf(&b, "Espelho de resposta: %s\n\n", q.Commentary())
	fmt.Fprintf(&b, "Resposta do candidato: \"%s\"\n\n", strings.TrimSpace(answer))
	b.WriteString("Estrutura: Pontos Atendidos -> Pontos Ausentes -> Fundamentação Legal -> Jurisprudência -> Como Melhorar.\n")
	return b.String()
}

// ExplainPrompt asks for a law professor's commentary on an objective item.
func ExplainPrompt(q question.Question) string {
	opts := q.Choices()
	idx, _ := q.CorrectIndex()
	correct := MissingCorrectOption
	if idx >= 0 && idx < len(opts) && opts[idx] != "" {
		correct = opts[idx]
	}

	var b strings.Builder
	b.WriteString("Atue como um Professor de Direito. Explique a questão abaixo.\n")
	fmt.Fprintf(&b, "Questão: \"%s\"\n", q.Text)
	fmt.Fprintf(&b, "Alternativas: %s\n", strings.Join(opts, ", "))
	fmt.Fprintf(&b, "Gabarito: %s\n", correct)
	b.WriteString("Estrutura: Tese Jurídica -> Fundamentação Legal -> Jurisprudência -> Conclusão.\n")
	return b.String()
}
