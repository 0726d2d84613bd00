package corpus

// DefaultThemes is the corpus used when no corpus file is given.
func DefaultThemes() []Theme {
	return []Theme{catTheme}
}

var catTheme = Theme{
	Name: "Cats",
	Sentences: []Sentence{
		{
			Hangul:      "고양이는 있다.",
			Romanized:   "goyang-ineun itda.",
			Gloss:       "There is a cat.",
			Interlinear: "cat-TOP exist-DECL",
			Vocab: []Entry{
				{Word: "고양이", Definition: "cat"},
				{Word: "-는/-은", Definition: "TOPIC marker"},
				{Word: "있다", Definition: "to exist; to have"},
			},
		},
		{
			Hangul:      "고양이는 잔다.",
			Romanized:   "goyang-ineun janda.",
			Gloss:       "The cat sleeps.",
			Interlinear: "cat-TOP sleep-DECL",
			Vocab: []Entry{
				{Word: "고양이", Definition: "cat"},
				{Word: "-는/-은", Definition: "TOPIC marker"},
				{Word: "자다", Definition: "to sleep"},
			},
		},
		{
			Hangul:      "고양이는 먹는다.",
			Romanized:   "goyang-ineun meokneunda.",
			Gloss:       "The cat eats.",
			Interlinear: "cat-TOP eat-DECL",
			Vocab: []Entry{
				{Word: "고양이", Definition: "cat"},
				{Word: "-는/-은", Definition: "TOPIC marker"},
				{Word: "먹다", Definition: "to eat"},
				{Word: "-는다/-ㄴ다", Definition: "present declarative"},
			},
		},
		{
			Hangul:      "작은 고양이는 검다.",
			Romanized:   "jageun goyang-ineun geomda.",
			Gloss:       "The small cat is black.",
			Interlinear: "small cat-TOP black-DECL",
			Vocab: []Entry{
				{Word: "작다", Definition: "to be small"},
				{Word: "-은", Definition: "attributive (adj)"},
				{Word: "고양이", Definition: "cat"},
				{Word: "검다", Definition: "to be black"},
			},
		},
		{
			Hangul:      "고양이는 의자 위에 있다.",
			Romanized:   "goyang-ineun uija wie itda.",
			Gloss:       "The cat is on the chair.",
			Interlinear: "cat-TOP chair top-LOC exist-DECL",
			Vocab: []Entry{
				{Word: "고양이", Definition: "cat"},
				{Word: "의자", Definition: "chair"},
				{Word: "위", Definition: "top; above"},
				{Word: "-에", Definition: "location/time particle"},
				{Word: "있다", Definition: "to exist; to be located"},
			},
		},
		{
			Hangul:      "고양이는 걷는다.",
			Romanized:   "goyang-ineun geotneunda.",
			Gloss:       "The cat walks.",
			Interlinear: "cat-TOP walk-DECL",
			Vocab: []Entry{
				{Word: "고양이", Definition: "cat"},
				{Word: "-는/-은", Definition: "TOPIC marker"},
				{Word: "걷다", Definition: "to walk"},
				{Word: "-는다/-ㄴ다", Definition: "present declarative"},
			},
		},
		{
			Hangul:      "고양이는 운다.",
			Romanized:   "goyang-ineun unda.",
			Gloss:       "The cat cries/meows.",
			Interlinear: "cat-TOP cry-DECL",
			Vocab: []Entry{
				{Word: "고양이", Definition: "cat"},
				{Word: "-는/-은", Definition: "TOPIC marker"},
				{Word: "울다", Definition: "to cry; to meow"},
				{Word: "-ㄴ다", Definition: "present declarative"},
			},
		},
		{
			Hangul:      "고양이는 본다.",
			Romanized:   "goyang-ineun bonda.",
			Gloss:       "The cat sees.",
			Interlinear: "cat-TOP see-DECL",
			Vocab: []Entry{
				{Word: "고양이", Definition: "cat"},
				{Word: "-는/-은", Definition: "TOPIC marker"},
				{Word: "보다", Definition: "to see"},
				{Word: "-ㄴ다", Definition: "present declarative"},
			},
		},
	},
}
