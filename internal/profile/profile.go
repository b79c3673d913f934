// Package profile maps a topic and an optional exam context to the
// generation parameters of a practice set.
package profile

import (
	"strings"

	"github.com/jusmind/jusmind/internal/fold"
)

// Modality selects the question variant requested from the generator.
type Modality string

const (
	Objective Modality = "objective"
	OpenEnded Modality = "open-ended"
)

// Institution is a recognized exam profile.
type Institution string

const (
	InstitutionNone Institution = ""
	InstitutionTJRJ Institution = "TJRJ"
	InstitutionALER Institution = "ALERJ"
	InstitutionPGE  Institution = "PGE"
)

// Item counts per set.
const (
	OpenEndedCount = 2
	ExamCount      = 10
	PracticeCount  = 5
)

const (
	IntroductoryLevel = "Nível Graduação (OAB 1ª Fase)"
	ObjectiveStyle    = "Questões de múltipla escolha (4 opções)."
	OpenEndedStyle    = "Questões discursivas (dissertativas ou estudo de caso)."
)

// Profile holds the parameters embedded into a quiz prompt.
type Profile struct {
	Difficulty  string
	Style       string
	Count       int
	Modality    Modality
	Institution Institution
}

type institutionProfile struct {
	institution Institution
	keywords    []string
	level       string
	focus       string
}

// institutions are tested in order; the first keyword hit wins.
var institutions = []institutionProfile{
	{
		institution: InstitutionTJRJ,
		keywords:    []string{"tjrj", "tj-rj"},
		level:       "NÍVEL TRIBUNAL DE JUSTIÇA (ANALISTA/MAGISTRATURA)",
		focus:       "Foco em lei seca, prazos processuais (CPC/CPP) e jurisprudência do STJ. Estilo Cebraspe/FGV.",
	},
	{
		institution: InstitutionALER,
		keywords:    []string{"alerj"},
		level:       "NÍVEL LEGISLATIVO ESTADUAL (ALERJ)",
		focus:       "Foco em Direito Administrativo, Processo Legislativo Constitucional, Regimento Interno e Constitucional Estadual do RJ.",
	},
	{
		institution: InstitutionPGE,
		keywords:    []string{"pge", "procuradoria"},
		level:       "NÍVEL PROCURADORIA (ADVOCACIA PÚBLICA)",
		focus:       "Foco em Fazenda Pública em Juízo, Tributário, Administrativo aprofundado e teses favoráveis ao Estado.",
	},
}

var openEndedKeywords = []string{"discursiva", "peca"}

// For derives the profile of a practice set. Matching ignores case and
// accents; contextTag is tested before topic.
func For(topic, contextTag string) Profile {
	tag := fold.String(strings.TrimSpace(contextTag))
	inst, matched := matchInstitution(tag)

	if containsAny(tag, openEndedKeywords) || containsAny(fold.String(topic), openEndedKeywords) {
		p := Profile{
			Difficulty: IntroductoryLevel,
			Style:      OpenEndedStyle,
			Count:      OpenEndedCount,
			Modality:   OpenEnded,
		}
		if matched {
			p.Difficulty = inst.level
			p.Style += " " + inst.focus
			p.Institution = inst.institution
		}
		return p
	}

	if tag != "" {
		p := Profile{
			Difficulty: IntroductoryLevel,
			Style:      ObjectiveStyle,
			Count:      ExamCount,
			Modality:   Objective,
		}
		if matched {
			p.Difficulty = inst.level
			p.Style += " " + inst.focus
			p.Institution = inst.institution
		}
		return p
	}

	return Profile{
		Difficulty: IntroductoryLevel,
		Style:      ObjectiveStyle,
		Count:      PracticeCount,
		Modality:   Objective,
	}
}

func matchInstitution(tag string) (institutionProfile, bool) {
	if tag == "" {
		return institutionProfile{}, false
	}
	for _, ip := range institutions {
		if containsAny(tag, ip.keywords) {
			return ip, true
		}
	}
	return institutionProfile{}, false
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
