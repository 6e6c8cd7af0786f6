package trivia

// SeedQuestions devolve o conjunto mínimo embutido, usado quando todas as
// fontes externas falham. Uma pergunta por categoria suportada, com IDs
// seguindo a convenção de prefixo.
func SeedQuestions() []Question {
	return []Question{
		{
			ID:          "F1",
			Category:    CategoryFunFacts,
			Prompt:      "Which planet is known as the Red Planet?",
			OptionA:     "Venus",
			OptionB:     "Mars",
			OptionC:     "Jupiter",
			OptionD:     "Saturn",
			CorrectKey:  "B",
			Explanation: "Mars is called the Red Planet because of the reddish iron oxide on its surface.",
		},
		{
			ID:          "P1",
			Category:    CategoryPsychology,
			Prompt:      "What is the fear of spiders called?",
			OptionA:     "Arachnophobia",
			OptionB:     "Acrophobia",
			OptionC:     "Agoraphobia",
			OptionD:     "Aerophobia",
			CorrectKey:  "A",
			Explanation: "Arachnophobia is the intense fear of spiders and other arachnids.",
		},
		{
			ID:          "M1",
			Category:    CategoryMath,
			Prompt:      "What is the square root of 144?",
			OptionA:     "10",
			OptionB:     "11",
			OptionC:     "12",
			OptionD:     "13",
			CorrectKey:  "C",
			Explanation: "The square root of 144 is 12 because 12² = 144.",
		},
		{
			ID:          "S1",
			Category:    CategoryScience,
			Prompt:      "What is the chemical symbol for gold?",
			OptionA:     "Au",
			OptionB:     "Ag",
			OptionC:     "Fe",
			OptionD:     "Ge",
			CorrectKey:  "A",
			Explanation: "The chemical symbol for gold is Au from the Latin word 'aurum'.",
		},
		{
			ID:          "H1",
			Category:    CategoryHistory,
			Prompt:      "Who was the first President of the United States?",
			OptionA:     "Thomas Jefferson",
			OptionB:     "John Adams",
			OptionC:     "George Washington",
			OptionD:     "Benjamin Franklin",
			CorrectKey:  "C",
			Explanation: "George Washington served as the first President of the United States from 1789 to 1797.",
		},
		{
			ID:          "E1",
			Category:    CategoryEnglish,
			Prompt:      "What is the past tense of the verb \"to go\"?",
			OptionA:     "Gone",
			OptionB:     "Went",
			OptionC:     "Going",
			OptionD:     "Goed",
			CorrectKey:  "B",
			Explanation: "The past tense of \"to go\" is \"went\" while \"gone\" is the past participle.",
		},
		{
			ID:          "G1",
			Category:    CategoryGeneral,
			Prompt:      "Which is the largest ocean on Earth?",
			OptionA:     "Atlantic Ocean",
			OptionB:     "Indian Ocean",
			OptionC:     "Southern Ocean",
			OptionD:     "Pacific Ocean",
			CorrectKey:  "D",
			Explanation: "The Pacific Ocean is the largest and deepest ocean on Earth, covering more than 30% of the Earth's surface.",
		},
	}
}

// fallbacks são as perguntas de emergência por categoria. GetRandomQuestion
// nunca falha: na pior hipótese devolve uma destas.
var fallbacks = map[string]Presentation{
	CategoryFunFacts: {
		ID:       "fallback-funfacts",
		Question: "Which planet is closest to the Sun?",
		Options: Options{
			A: "Earth",
			B: "Venus",
			C: "Mercury",
			D: "Mars",
		},
		CorrectAnswer: "C",
		Explanation:   "Mercury is the closest planet to the Sun in our solar system.",
	},
	CategoryPsychology: {
		ID:       "fallback-psychology",
		Question: "What is the study of dreams called?",
		Options: Options{
			A: "Oneirology",
			B: "Neurology",
			C: "Psychology",
			D: "Psychiatry",
		},
		CorrectAnswer: "A",
		Explanation:   "Oneirology is the scientific study of dreams.",
	},
	CategoryMath: {
		ID:       "fallback-math",
		Question: "What is 7 × 8?",
		Options: Options{
			A: "54",
			B: "56",
			C: "58",
			D: "64",
		},
		CorrectAnswer: "B",
		Explanation:   "7 multiplied by 8 equals 56.",
	},
	CategoryScience: {
		ID:       "fallback-science",
		Question: "What gas do plants absorb from the atmosphere?",
		Options: Options{
			A: "Oxygen",
			B: "Nitrogen",
			C: "Carbon dioxide",
			D: "Hydrogen",
		},
		CorrectAnswer: "C",
		Explanation:   "Plants absorb carbon dioxide during photosynthesis.",
	},
	CategoryHistory: {
		ID:       "fallback-history",
		Question: "In which year did World War II end?",
		Options: Options{
			A: "1943",
			B: "1944",
			C: "1945",
			D: "1946",
		},
		CorrectAnswer: "C",
		Explanation:   "World War II ended in 1945.",
	},
	CategoryEnglish: {
		ID:       "fallback-english",
		Question: "Which word is a synonym of \"happy\"?",
		Options: Options{
			A: "Sad",
			B: "Joyful",
			C: "Angry",
			D: "Tired",
		},
		CorrectAnswer: "B",
		Explanation:   "\"Joyful\" means feeling or expressing great happiness.",
	},
	CategoryGeneral: {
		ID:       "fallback-general",
		Question: "How many continents are there on Earth?",
		Options: Options{
			A: "5",
			B: "6",
			C: "7",
			D: "8",
		},
		CorrectAnswer: "C",
		Explanation:   "There are seven continents on Earth.",
	},
}

// defaultFallback cobre categorias desconhecidas.
var defaultFallback = Presentation{
	ID:       "fallback-default",
	Question: "What is the capital of France?",
	Options: Options{
		A: "London",
		B: "Berlin",
		C: "Paris",
		D: "Madrid",
	},
	CorrectAnswer: "C",
	Explanation:   "Paris is the capital and largest city of France.",
}

// FallbackFor devolve a pergunta de emergência da categoria, ou a padrão
// se a categoria não for reconhecida.
func FallbackFor(category string) Presentation {
	if p, ok := fallbacks[category]; ok {
		return p
	}
	return defaultFallback
}
