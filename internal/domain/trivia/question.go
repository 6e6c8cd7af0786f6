package trivia

import "errors"

// Categorias conhecidas do baralho de perguntas. A lista é aberta: fontes
// externas podem introduzir categorias novas, desde que o prefixo do ID
// (primeira letra da categoria, maiúscula) seja respeitado.
const (
	CategoryFunFacts   = "funfacts"
	CategoryPsychology = "psychology"
	CategoryMath       = "math"
	CategoryScience    = "science"
	CategoryHistory    = "history"
	CategoryEnglish    = "english"
	CategoryGeneral    = "general"
)

// DefaultCategories é a lista devolvida quando o baralho está vazio.
var DefaultCategories = []string{
	CategoryFunFacts,
	CategoryPsychology,
	CategoryMath,
	CategoryScience,
	CategoryHistory,
	CategoryEnglish,
	CategoryGeneral,
}

var (
	ErrIDObrigatorio        = errors.New("o id da pergunta é obrigatório")
	ErrEnunciadoVazio       = errors.New("o enunciado da pergunta é obrigatório")
	ErrAlternativaVazia     = errors.New("as alternativas A e B devem ser preenchidas")
	ErrRespostaDesconhecida = errors.New("a resposta correta deve ser uma das alternativas (A-D)")
)

// Question representa uma pergunta de múltipla escolha do baralho.
type Question struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Prompt      string `json:"question"`
	OptionA     string `json:"optionA"`
	OptionB     string `json:"optionB"`
	OptionC     string `json:"optionC"`
	OptionD     string `json:"optionD"`
	CorrectKey  string `json:"correctAnswer"` // "A".."D"
	Explanation string `json:"explanation"`
}

// Validate verifica se a pergunta é utilizável.
func (q *Question) Validate() error {
	if q.ID == "" {
		return ErrIDObrigatorio
	}
	if q.Prompt == "" {
		return ErrEnunciadoVazio
	}
	// Perguntas precisam de ao menos duas alternativas
	if q.OptionA == "" || q.OptionB == "" {
		return ErrAlternativaVazia
	}
	if q.Option(q.CorrectKey) == "" {
		return ErrRespostaDesconhecida
	}
	return nil
}

// Option devolve o texto da alternativa identificada pela chave, ou "".
func (q *Question) Option(key string) string {
	switch key {
	case "A":
		return q.OptionA
	case "B":
		return q.OptionB
	case "C":
		return q.OptionC
	case "D":
		return q.OptionD
	}
	return ""
}

// Options agrupa as alternativas na forma esperada pela camada de exibição.
type Options struct {
	A string `json:"A"`
	B string `json:"B"`
	C string `json:"C"`
	D string `json:"D"`
}

// Presentation é a forma de apresentação de uma pergunta sorteada.
type Presentation struct {
	ID            string  `json:"id"`
	Question      string  `json:"question"`
	Options       Options `json:"options"`
	CorrectAnswer string  `json:"correctAnswer"`
	Explanation   string  `json:"explanation"`
}

// Present converte a pergunta para a forma de apresentação.
func (q *Question) Present() Presentation {
	return Presentation{
		ID:       q.ID,
		Question: q.Prompt,
		Options: Options{
			A: q.OptionA,
			B: q.OptionB,
			C: q.OptionC,
			D: q.OptionD,
		},
		CorrectAnswer: q.CorrectKey,
		Explanation:   q.Explanation,
	}
}

// CategoryPrefix devolve a letra que prefixa os IDs de uma categoria.
// Convenção: primeira letra da categoria, maiúscula ("math" -> "M").
func CategoryPrefix(category string) string {
	if category == "" {
		return ""
	}
	r := category[0]
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	return string(r)
}
