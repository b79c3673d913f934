package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jusmind/jusmind/internal/profile"
)

func TestSubjects(t *testing.T) {
	s := Subjects()
	require.Len(t, s, 23)
	assert.Equal(t, "Direito Constitucional", s[0])
	assert.Equal(t, "Fazenda Pública em Juízo", s[22])

	s[0] = "mutated"
	assert.Equal(t, "Direito Constitucional", Subjects()[0])
}

func TestInstitutions(t *testing.T) {
	insts := Institutions()
	require.Len(t, insts, 7)

	pge, ok := InstitutionByName("PGE-RJ")
	require.True(t, ok)
	assert.Equal(t, KindContest, pge.Kind)

	_, ok = InstitutionByName("USP")
	assert.False(t, ok)
}

func TestSearchSubjects(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"etica", []string{"Ética Profissional"}},
		{"TRIBUTARIO", []string{"Direito Tributário"}},
		{"crianca", []string{"Estatuto da Criança e Adolescente"}},
		{"processo", []string{"Processo Civil", "Processo do Trabalho", "Processo Penal"}},
		{"inexistente", nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, SearchSubjects(tt.query))
		})
	}

	all := SearchSubjects("  ")
	require.Len(t, all, 23)
	assert.Equal(t, "Direito Administrativo", all[0])
	i := indexOf(all, "Ética Profissional")
	require.Positive(t, i)
	assert.Equal(t, "Estatuto da Criança e Adolescente", all[i-1], "accented É sorts with E")
	assert.Equal(t, "Fazenda Pública em Juízo", all[i+1])
}

func TestExamsFor(t *testing.T) {
	civil := ExamsFor("Direito Civil")
	var names []string
	for _, e := range civil {
		names = append(names, e.Institution)
	}
	assert.Equal(t, []string{"OAB", "TJRJ", "UFF"}, names)

	oab := civil[0]
	assert.Equal(t, "oab-2", oab.ID)
	assert.Equal(t, 2021, oab.Year)
	assert.Equal(t, "XXX4 Exame", oab.Period)
	assert.Equal(t, "Técnico/Analista", civil[1].Period)
	assert.Equal(t, "1º Semestre", civil[2].Period)

	names = names[:0]
	for _, e := range ExamsFor("Direito Penal") {
		names = append(names, e.Institution)
	}
	assert.Equal(t, []string{"OAB", "TJRJ"}, names)

	assert.Empty(t, ExamsFor("Direito Canônico"))
}

func TestExams_Rules(t *testing.T) {
	var oab, disc int
	for _, e := range Exams() {
		switch {
		case e.Institution == "OAB":
			oab++
		case e.ID == "disc-pge-1" || e.ID == "disc-tj-1":
			disc++
		}
		assert.GreaterOrEqual(t, e.Year, 2020)
		assert.LessOrEqual(t, e.Year, 2024)
	}
	assert.Equal(t, 23, oab, "OAB covers every subject")
	assert.Equal(t, 2, disc)

	alerj := ExamsFor("Regimento Interno (Casas Legislativas)")
	require.NotEmpty(t, alerj)
	assert.Contains(t, alerj, Exam{ID: "alerj-21", Institution: "ALERJ", Subject: "Regimento Interno (Casas Legislativas)", Year: 2022, Period: "Edital Anterior"})
}

func TestExamSession(t *testing.T) {
	exams := ExamsFor("Sentença Cível (Discursiva)")
	require.Len(t, exams, 1)

	topic, tag := exams[0].Session()
	assert.Equal(t, "Sentença Cível (Discursiva)", topic)
	assert.Equal(t, "TJRJ", tag)

	p := profile.For(topic, tag)
	assert.Equal(t, profile.OpenEnded, p.Modality)
	assert.Equal(t, profile.InstitutionTJRJ, p.Institution)
}

func TestModules(t *testing.T) {
	m := Modules()
	require.Len(t, m, 23)
	assert.Equal(t, "lm-4", m[4].ID)
	assert.Contains(t, m[4].Description, "Direito Penal")
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
