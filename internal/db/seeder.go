package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/PauloHFS/biblio/internal/authors"
	"github.com/PauloHFS/biblio/internal/logging"
)

// Os três primeiros autores correspondem aos author_id 1-3 do catálogo de
// livros; a ordem de inserção importa.
var sampleAuthors = []authors.CreateInput{
	{
		Name:      "Douglas Adams",
		Email:     "douglas.adams@example.com",
		Bio:       "Escritor inglês de ficção científica cômica, criador do Guia do Mochileiro das Galáxias.",
		Expertise: "ficção científica, comédia, rádio",
	},
	{
		Name:      "George Orwell",
		Email:     "george.orwell@example.com",
		Bio:       "Escritor e jornalista britânico, autor de distopias sobre totalitarismo e vigilância.",
		Expertise: "distopia, crítica social, jornalismo político",
	},
	{
		Name:      "Frank Herbert",
		Email:     "frank.herbert@example.com",
		Bio:       "Autor americano de ficção científica, conhecido pela saga Duna sobre poder, religião e ecologia.",
		Expertise: "ficção científica, ecologia, construção de mundos",
	},
	{
		Name:      "Ursula K. Le Guin",
		Email:     "ursula.leguin@example.com",
		Bio:       "Escritora americana de ficção científica e fantasia, explorou antropologia e sociedades alternativas.",
		Expertise: "ficção especulativa, antropologia, fantasia",
	},
	{
		Name:      "Isaac Asimov",
		Email:     "isaac.asimov@example.com",
		Bio:       "Bioquímico e escritor, autor prolífico de ficção científica e divulgação científica, criador das Leis da Robótica.",
		Expertise: "robótica, ficção científica, divulgação científica",
	},
	{
		Name:      "Clarice Lispector",
		Email:     "clarice.lispector@example.com",
		Bio:       "Escritora brasileira de prosa introspectiva, marcada pelo fluxo de consciência e pela epifania.",
		Expertise: "literatura brasileira, prosa introspectiva",
	},
}

// Seed carrega os autores de exemplo gerando embeddings via registry.
// Se já existirem registros, não faz nada, a menos que force seja true —
// nesse caso trunca a tabela antes (cuidado!).
func Seed(ctx context.Context, dbConn *sql.DB, registry *authors.Registry, force bool) error {
	logger := logging.Get()

	var existing int
	if err := dbConn.QueryRowContext(ctx, "SELECT COUNT(*) FROM authors").Scan(&existing); err != nil {
		return fmt.Errorf("failed to count authors: %w", err)
	}

	if existing > 0 {
		if !force {
			logger.Info("authors already seeded, skipping",
				slog.Int("existing", existing),
			)
			return nil
		}
		if _, err := dbConn.ExecContext(ctx, "TRUNCATE TABLE authors RESTART IDENTITY CASCADE"); err != nil {
			return fmt.Errorf("failed to truncate authors: %w", err)
		}
		logger.Info("existing authors removed", slog.Int("removed", existing))
	}

	loaded, failed := 0, 0
	for _, in := range sampleAuthors {
		if _, err := registry.Create(ctx, in); err != nil {
			failed++
			logger.Error("failed to seed author",
				slog.String("name", in.Name),
				slog.Any("error", err),
			)
			continue
		}
		loaded++
	}

	logger.Info("database seeded",
		slog.Int("loaded", loaded),
		slog.Int("failed", failed),
	)

	if failed > 0 {
		return fmt.Errorf("%d of %d authors failed to seed", failed, len(sampleAuthors))
	}
	return nil
}
