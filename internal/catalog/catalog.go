// Package catalog holds the static subject list, the institutions and the
// archived exams offered for practice.
package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jusmind/jusmind/internal/fold"
)

// SimulatedExamTag is the context tag of a subject-level mock exam.
const SimulatedExamTag = "Simulado OAB/IA"

var subjects = []string{
	"Direito Constitucional", "Direito Administrativo", "Direito Civil", "Processo Civil",
	"Direito Penal", "Processo Penal", "Direito Tributário", "Direito Empresarial",
	"Direito do Trabalho", "Processo do Trabalho", "Direitos Humanos", "Ética Profissional",
	"Direito Ambiental", "Estatuto da Criança e Adolescente", "Direito do Consumidor",
	"Direito Eleitoral", "Direito Previdenciário", "Direito Internacional",
	"Filosofia do Direito", "Teoria Geral do Direito", "Legislação Específica (RJ)",
	"Regimento Interno (Casas Legislativas)", "Fazenda Pública em Juízo",
}

// Kind groups institutions in the exam archive.
type Kind string

const (
	KindBar        Kind = "Ordem"
	KindContest    Kind = "Concurso"
	KindPublicUni  Kind = "Publica"
	KindPrivateUni Kind = "Privada"
)

// Label returns the archive section title for the kind.
func (k Kind) Label() string {
	switch k {
	case KindBar:
		return "Exame de Ordem (OAB)"
	case KindContest:
		return "Concursos Públicos"
	case KindPublicUni:
		return "Universidades Públicas"
	case KindPrivateUni:
		return "Universidades Privadas"
	default:
		return string(k)
	}
}

// Institution is an exam board or university.
type Institution struct {
	Name     string
	Kind     Kind
	FullName string
}

var institutions = []Institution{
	{Name: "OAB", Kind: KindBar, FullName: "Exame de Ordem Unificado (FGV)"},
	{Name: "TJRJ", Kind: KindContest, FullName: "Tribunal de Justiça do Rio de Janeiro"},
	{Name: "ALERJ", Kind: KindContest, FullName: "Assembleia Legislativa do Estado do RJ"},
	{Name: "PGE-RJ", Kind: KindContest, FullName: "Procuradoria Geral do Estado do RJ (Residência)"},
	{Name: "UFF", Kind: KindPublicUni, FullName: "Universidade Federal Fluminense"},
	{Name: "UFRJ", Kind: KindPublicUni, FullName: "Universidade Federal do Rio de Janeiro"},
	{Name: "Estácio", Kind: KindPrivateUni, FullName: "Universidade Estácio de Sá"},
}

// Exam is an archived exam for one subject.
type Exam struct {
	ID          string
	Institution string
	Subject     string
	Year        int
	Period      string
}

// Session returns the quiz topic and context tag for practicing e.
func (e Exam) Session() (topic, contextTag string) {
	return e.Subject, e.Institution
}

// Module is a study track for one subject.
type Module struct {
	ID          string
	Title       string
	Description string
}

var exams = buildExams()

// Subjects returns the subject list in catalog order.
func Subjects() []string {
	return append([]string(nil), subjects...)
}

// Institutions returns the institutions in catalog order.
func Institutions() []Institution {
	return append([]Institution(nil), institutions...)
}

// Exams returns every archived exam.
func Exams() []Exam {
	return append([]Exam(nil), exams...)
}

// Modules returns one study module per subject.
func Modules() []Module {
	out := make([]Module, len(subjects))
	for i, s := range subjects {
		out[i] = Module{
			ID:          fmt.Sprintf("lm-%d", i),
			Title:       s,
			Description: fmt.Sprintf("Curso completo de %s com base na doutrina e jurisprudência dominante nos tribunais superiores.", s),
		}
	}
	return out
}

// SearchSubjects returns the subjects containing q, ignoring case and
// accents, in Portuguese collation order. An empty q matches everything.
func SearchSubjects(q string) []string {
	needle := fold.String(strings.TrimSpace(q))
	var out []string
	for _, s := range subjects {
		if strings.Contains(fold.String(s), needle) {
			out = append(out, s)
		}
	}
	collate.New(language.BrazilianPortuguese).SortStrings(out)
	return out
}

// ExamsFor returns the archived exams of subject, in catalog order.
func ExamsFor(subject string) []Exam {
	var out []Exam
	for _, e := range exams {
		if e.Subject == subject {
			out = append(out, e)
		}
	}
	return out
}

// InstitutionByName looks up an institution.
func InstitutionByName(name string) (Institution, bool) {
	for _, inst := range institutions {
		if inst.Name == name {
			return inst, true
		}
	}
	return Institution{}, false
}

// Key subject fragments of each contest.
var (
	pgeSubjects   = []string{"Administrativo", "Constitucional", "Tributário", "Processo Civil", "Fazenda Pública"}
	tjSubjects    = []string{"Civil", "Processo Civil", "Constitucional", "Administrativo", "Penal"}
	alerjSubjects = []string{"Constitucional", "Administrativo", "Processo Legislativo", "Regimento Interno"}
)

func buildExams() []Exam {
	var out []Exam
	for i, subject := range subjects {
		for u, inst := range institutions {
			add := false
			period := fmt.Sprintf("%dº Semestre", i%2+1)

			switch inst.Name {
			case "PGE-RJ":
				add = containsAny(subject, pgeSubjects)
				period = "Residência Jurídica"
			case "TJRJ":
				add = containsAny(subject, tjSubjects)
				period = "Técnico/Analista"
			case "ALERJ":
				add = containsAny(subject, alerjSubjects)
				period = "Edital Anterior"
			case "OAB":
				add = true
				period = fmt.Sprintf("XXX%d Exame", i%5+2)
			default:
				add = (i+u)%6 == 0
			}

			if add {
				out = append(out, Exam{
					ID:          fmt.Sprintf("%s-%d", strings.ToLower(inst.Name), i),
					Institution: inst.Name,
					Subject:     subject,
					Year:        2023 - i%4,
					Period:      period,
				})
			}
		}
	}

	out = append(out,
		Exam{ID: "disc-pge-1", Institution: "PGE-RJ", Subject: "Peça Prática (Discursiva)", Year: 2024, Period: "Fase Final"},
		Exam{ID: "disc-tj-1", Institution: "TJRJ", Subject: "Sentença Cível (Discursiva)", Year: 2023, Period: "Magistratura"},
	)
	return out
}

func containsAny(s string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(s, f) {
			return true
		}
	}
	return false
}
