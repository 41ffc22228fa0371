package domain

// Language identifies which side of the phrase-book a phrase belongs to.
type Language string

const (
	LanguageSomali  Language = "somali"
	LanguageEnglish Language = "english"
)

func (l Language) String() string { return string(l) }

func (l Language) IsValid() bool {
	switch l {
	case LanguageSomali, LanguageEnglish:
		return true
	}
	return false
}

// Other returns the opposite language. An invalid language maps to itself.
func (l Language) Other() Language {
	switch l {
	case LanguageSomali:
		return LanguageEnglish
	case LanguageEnglish:
		return LanguageSomali
	}
	return l
}

// DisplayName returns the capitalized name shown to readers.
func (l Language) DisplayName() string {
	switch l {
	case LanguageSomali:
		return "Somali"
	case LanguageEnglish:
		return "English"
	}
	return string(l)
}

// ItalicPolicy decides which italic flag survives when the same Somali
// text is linked more than once with different flags.
type ItalicPolicy string

const (
	ItalicPolicyLast  ItalicPolicy = "last"
	ItalicPolicyFirst ItalicPolicy = "first"
	ItalicPolicyAny   ItalicPolicy = "any"
)

func (p ItalicPolicy) String() string { return string(p) }

func (p ItalicPolicy) IsValid() bool {
	switch p {
	case ItalicPolicyLast, ItalicPolicyFirst, ItalicPolicyAny:
		return true
	}
	return false
}

// Resolve returns the flag to keep given the stored flag and a newly seen one.
func (p ItalicPolicy) Resolve(stored, seen bool) bool {
	switch p {
	case ItalicPolicyFirst:
		return stored
	case ItalicPolicyAny:
		return stored || seen
	default:
		return seen
	}
}
