package cfg

import (
	"cmp"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func DefaultLabels() Labels {
	return Labels{
		Loading:         "Carregando notícias da API...",
		NoTitle:         "Sem título",
		NoDescription:   "Sem descrição",
		UnknownSource:   "Desconhecida",
		UnknownDate:     "Data desconhecida",
		ReadMore:        "Ler notícia completa →",
		EmptyHeading:    "📭 Nenhuma notícia encontrada",
		EmptyHint:       "Execute o comando de scraping no backend:",
		EmptyCommand:    "python manage.py scrape_news",
		ErrorHeading:    "❌ Erro ao carregar notícias da API",
		ErrorHint:       "Certifique-se de que o servidor da API está rodando:",
		ErrorCommand:    "python manage.py runserver",
		ErrorEndpoint:   "E que a API está acessível em:",
		Truncated:       "Mostrando %d de %d notícias",
		ClearConfirm:    "⚠️ Tem certeza que deseja deletar TODAS as notícias do banco de dados?",
		ClearFailed:     "Erro ao limpar notícias",
		StatsFailed:     "Erro ao carregar estatísticas",
		StatsHeading:    "📊 Estatísticas do Banco de Dados",
		StatsTotal:      "Total de Notícias",
		StatsSources:    "Fontes Diferentes",
		SuccessPrefix:   "✅",
		FailurePrefix:   "❌ Erro:",
		PageTitle:       "📰 Notícias",
		ReloadButton:    "🔄 Recarregar",
		ClearButton:     "🗑️ Limpar tudo",
		StatsButton:     "📊 Estatísticas",
		FeedDescription: "Notícias extraídas pela API",
	}
}

// LoadLabels reads a YAML labels file on top of the defaults. Keys missing
// from the file keep their default text.
func LoadLabels(path string) (Labels, error) {
	labels := DefaultLabels()
	if path == "" {
		return labels, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return labels, fmt.Errorf("failed to read labels file: %w", err)
	}

	var override Labels
	if err := yaml.Unmarshal(data, &override); err != nil {
		return labels, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return merge(labels, override), nil
}

func merge(base, override Labels) Labels {
	return Labels{
		Loading:         cmp.Or(override.Loading, base.Loading),
		NoTitle:         cmp.Or(override.NoTitle, base.NoTitle),
		NoDescription:   cmp.Or(override.NoDescription, base.NoDescription),
		UnknownSource:   cmp.Or(override.UnknownSource, base.UnknownSource),
		UnknownDate:     cmp.Or(override.UnknownDate, base.UnknownDate),
		ReadMore:        cmp.Or(override.ReadMore, base.ReadMore),
		EmptyHeading:    cmp.Or(override.EmptyHeading, base.EmptyHeading),
		EmptyHint:       cmp.Or(override.EmptyHint, base.EmptyHint),
		EmptyCommand:    cmp.Or(override.EmptyCommand, base.EmptyCommand),
		ErrorHeading:    cmp.Or(override.ErrorHeading, base.ErrorHeading),
		ErrorHint:       cmp.Or(override.ErrorHint, base.ErrorHint),
		ErrorCommand:    cmp.Or(override.ErrorCommand, base.ErrorCommand),
		ErrorEndpoint:   cmp.Or(override.ErrorEndpoint, base.ErrorEndpoint),
		Truncated:       cmp.Or(override.Truncated, base.Truncated),
		ClearConfirm:    cmp.Or(override.ClearConfirm, base.ClearConfirm),
		ClearFailed:     cmp.Or(override.ClearFailed, base.ClearFailed),
		StatsFailed:     cmp.Or(override.StatsFailed, base.StatsFailed),
		StatsHeading:    cmp.Or(override.StatsHeading, base.StatsHeading),
		StatsTotal:      cmp.Or(override.StatsTotal, base.StatsTotal),
		StatsSources:    cmp.Or(override.StatsSources, base.StatsSources),
		SuccessPrefix:   cmp.Or(override.SuccessPrefix, base.SuccessPrefix),
		FailurePrefix:   cmp.Or(override.FailurePrefix, base.FailurePrefix),
		PageTitle:       cmp.Or(override.PageTitle, base.PageTitle),
		ReloadButton:    cmp.Or(override.ReloadButton, base.ReloadButton),
		ClearButton:     cmp.Or(override.ClearButton, base.ClearButton),
		StatsButton:     cmp.Or(override.StatsButton, base.StatsButton),
		FeedDescription: cmp.Or(override.FeedDescription, base.FeedDescription),
	}
}
