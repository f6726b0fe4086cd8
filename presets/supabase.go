package presets

import (
	guardenv "github.com/guardenv/guardenv"
	"github.com/guardenv/guardenv/dsl"
)

// Supabase describes a Supabase project wired for client exposure under the
// NEXT_PUBLIC_ prefix: the project URL is required, everything else optional.
func Supabase() guardenv.Descriptor {
	return guardenv.Descriptor{
		Prefix: "NEXT_PUBLIC_",
		Client: guardenv.FieldMap{
			"NEXT_PUBLIC_SUPABASE_URL":      dsl.URL(),
			"NEXT_PUBLIC_SUPABASE_ANON_KEY": dsl.String().Optional(),
		},
		Server: guardenv.FieldMap{
			"SUPABASE_SERVICE_ROLE_KEY": dsl.String().Optional(),
			"SUPABASE_JWT_SECRET":       dsl.String().Optional(),
		},
	}
}
