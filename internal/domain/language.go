package domain

type Language string

const (
	LangRussian Language = "ru"
	LangTurkish Language = "tr"
	LangTurkmen Language = "tm"
	LangEnglish Language = "en"
)

const DefaultLanguage = LangRussian

func (l Language) Valid() bool {
	switch l {
	case LangRussian, LangTurkish, LangTurkmen, LangEnglish:
		return true
	}
	return false
}
