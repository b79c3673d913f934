package llm

import (
	"context"
	"strings"
)

const offlineObjective = `[
  {
    "type": "objective",
    "difficulty": "Fácil",
    "text": "Segundo a Constituição Federal, qual é o prazo máximo da prisão temporária em crimes comuns?",
    "options": ["5 dias, prorrogável por igual período", "10 dias, improrrogável", "30 dias, prorrogável por igual período", "60 dias, improrrogável"],
    "correctAnswerIndex": 0,
    "explanation": "Art. 2º da Lei 7.960/89: a prisão temporária tem prazo de 5 dias, prorrogável por igual período em caso de extrema e comprovada necessidade."
  },
  {
    "type": "objective",
    "difficulty": "Médio",
    "text": "A posse de boa-fé dá ao possuidor direito:",
    "options": ["Apenas aos frutos pendentes", "Aos frutos percebidos enquanto durar a boa-fé", "À indenização por benfeitorias voluptuárias, sempre", "À usucapião imediata"],
    "correctAnswerIndex": 1,
    "explanation": "Art. 1.214 do Código Civil: o possuidor de boa-fé tem direito, enquanto ela durar, aos frutos percebidos."
  },
  {
    "type": "objective",
    "difficulty": "Difícil",
    "text": "O princípio da insignificância, segundo o STF, exige, entre outros vetores:",
    "options": ["Reincidência do agente", "Mínima ofensividade da conduta", "Valor do bem superior a um salário mínimo", "Concurso de agentes"],
    "correctAnswerIndex": 1,
    "explanation": "HC 84.412/SP: mínima ofensividade, nenhuma periculosidade social, reduzido grau de reprovabilidade e inexpressividade da lesão."
  }
]`

const offlineDiscursive = `[
  {
    "type": "discursive",
    "difficulty": "Difícil",
    "text": "João, servidor público, foi demitido sem processo administrativo. Analise a validade do ato e os meios de impugnação cabíveis.",
    "referenceAnswer": "ESPELHO: 1. Nulidade por violação ao contraditório e à ampla defesa (art. 5º, LV, CF). 2. Exigência de PAD (art. 41, §1º, II, CF). 3. Cabimento de mandado de segurança ou ação anulatória com reintegração.",
    "explanation": "Súmula 20 do STF: é necessário processo administrativo com ampla defesa para demissão de funcionário admitido por concurso."
  }
]`

const offlineProse = "Modo offline: nenhuma IA está configurada. Em linhas gerais, comece pelo conceito, localize os artigos de lei aplicáveis, confira a jurisprudência dos tribunais superiores e conclua aplicando-os ao caso."

// OfflineProvider answers every request with fixed Portuguese content so
// the application can be used without credentials. Structured requests
// get a small question set in the requested modality.
type OfflineProvider struct{}

// NewOfflineProvider returns an OfflineProvider.
func NewOfflineProvider() *OfflineProvider { return &OfflineProvider{} }

func (OfflineProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text := offlineProse
	if req.JSONOutput {
		text = offlineObjective
		if n := len(req.Messages); n > 0 && strings.Contains(req.Messages[n-1].Content, "DISCURSIVAS") {
			text = offlineDiscursive
		}
	}
	return &Response{Text: text, Model: "mock", StopReason: "end"}, nil
}

// ModelID returns "mock".
func (OfflineProvider) ModelID() string { return "mock" }
