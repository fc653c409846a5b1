package inquiry

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const maxNameLength = 50

var (
	mobilePattern = regexp.MustCompile(`(?:\+91[\s-]?)?[6-9]\d{9}`)
	emailPattern  = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	namePattern   = regexp.MustCompile(`^[a-zA-Z\s]+$`)

	nameStopWords = []string{"booking", "resort", "inquiry"}
)

// ContactInfo контактные данные из текста запроса; пустые строки, если не найдены
type ContactInfo struct {
	Name   string
	Mobile string
	Email  string
}

// ExtractContactInfo ищет мобильный номер, email и имя гостя.
// Имя - первая строка короче 50 символов только из букв и пробелов,
// не содержащая служебных слов.
func ExtractContactInfo(text string) ContactInfo {
	var contact ContactInfo
	if text == "" {
		return contact
	}

	contact.Mobile = mobilePattern.FindString(text)
	contact.Email = emailPattern.FindString(text)

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || utf8.RuneCountInString(trimmed) >= maxNameLength {
			continue
		}
		if !namePattern.MatchString(trimmed) || hasStopWord(trimmed) {
			continue
		}
		contact.Name = trimmed
		break
	}

	return contact
}

func hasStopWord(line string) bool {
	lower := strings.ToLower(line)
	for _, word := range nameStopWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
