package admin

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Werneck0live/gestao-terceirizados/internal/models"
	"github.com/Werneck0live/gestao-terceirizados/internal/repository"
)

//go:embed seeds/funcoes.json
var funcoesJSON []byte

// seedNamespace gera ids estáveis a partir do nome da função,
// então rodar o seed de novo cai em ErrDuplicateID.
var seedNamespace = uuid.MustParse("6f1c2a52-8f0e-4b0b-9a57-3c1f0f7e2d11")

func FuncaoSeedID(nome string) string {
	return uuid.NewSHA1(seedNamespace, []byte(nome)).String()
}

// Idempotente: cria se não existir; se já existir, ignora.
func SeedFuncoes(ctx context.Context, repo repository.Repo[models.Funcao], log *slog.Logger) (int, error) {
	var items []models.FuncaoInput
	if err := json.Unmarshal(funcoesJSON, &items); err != nil {
		return 0, err
	}

	created := 0
	for _, s := range items {
		f := models.Funcao{
			Meta:        models.Meta{ID: FuncaoSeedID(s.Nome), CreatedAt: time.Now().UTC()},
			FuncaoInput: s,
		}

		// timeout curto por item pra não travar
		ictx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := repo.Create(ictx, &f)
		cancel()

		if err != nil {
			if errors.Is(err, repository.ErrDuplicateID) {
				log.Info("seed_funcao_exists", "nome", s.Nome)
				continue
			}
			return created, err
		}
		created++
		log.Info("seed_funcao_created", "nome", s.Nome, "cbo", s.CBO)
	}

	log.Info("seed_funcoes_done", "count", len(items), "created", created)
	return created, nil
}
