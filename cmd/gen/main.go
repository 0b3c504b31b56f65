package main

import (
	"authhub/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.IdentityModel{},
		model.RateLimitModel{},
		model.APISecretModel{},
		model.SessionModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
