package presets

import (
	guardenv "github.com/guardenv/guardenv"
	"github.com/guardenv/guardenv/dsl"
)

// Neon describes the connection variables a Neon managed-Postgres integration
// provisions. Only the pooled connection string is required.
func Neon() guardenv.Descriptor {
	return guardenv.Descriptor{
		Server: guardenv.FieldMap{
			"DATABASE_URL":             dsl.URL(),
			"DATABASE_URL_UNPOOLED":    dsl.URL().Optional(),
			"POSTGRES_URL":             dsl.URL().Optional(),
			"POSTGRES_URL_NON_POOLING": dsl.URL().Optional(),
			"POSTGRES_URL_NO_SSL":      dsl.URL().Optional(),
			"POSTGRES_PRISMA_URL":      dsl.URL().Optional(),
			"PGHOST":                   dsl.String().Optional(),
			"PGHOST_UNPOOLED":          dsl.String().Optional(),
			"PGUSER":                   dsl.String().Optional(),
			"PGDATABASE":               dsl.String().Optional(),
			"PGPASSWORD":               dsl.String().Optional(),
			"POSTGRES_USER":            dsl.String().Optional(),
			"POSTGRES_HOST":            dsl.String().Optional(),
			"POSTGRES_PASSWORD":        dsl.String().Optional(),
			"POSTGRES_DATABASE":        dsl.String().Optional(),
		},
	}
}
