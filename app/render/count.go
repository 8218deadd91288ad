package render

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const totalKey = "Total: %d articles"

func init() {
	set := func(tags []language.Tag, one, other string) {
		for _, tag := range tags {
			if err := message.Set(tag, totalKey,
				plural.Selectf(1, "%d",
					"=1", one,
					"other", other,
				)); err != nil {
				panic(err)
			}
		}
	}

	set([]language.Tag{language.Portuguese, language.BrazilianPortuguese}, "Total: %d notícia", "Total: %d notícias")
	set([]language.Tag{language.English, language.AmericanEnglish, language.BritishEnglish}, "Total: %d article", "Total: %d articles")
	set([]language.Tag{language.German}, "Gesamt: %d Artikel", "Gesamt: %d Artikel")
	set([]language.Tag{language.French}, "Total : %d article", "Total : %d articles")
	set([]language.Tag{language.Spanish}, "Total: %d noticia", "Total: %d noticias")
}

// TotalLabel renders the count indicator with the locale's noun form.
// A zero count clears the indicator.
func TotalLabel(locale string, count int) string {
	if count <= 0 {
		return ""
	}
	tag, _ := MatchLocale(locale)
	return message.NewPrinter(tag).Sprintf(totalKey, count)
}
