package presets

import (
	guardenv "github.com/guardenv/guardenv"
	"github.com/guardenv/guardenv/dsl"
)

// UpstashRedis describes the REST credentials an Upstash Redis database
// provisions. Both are required.
func UpstashRedis() guardenv.Descriptor {
	return guardenv.Descriptor{
		Server: guardenv.FieldMap{
			"UPSTASH_REDIS_REST_URL":   dsl.URL(),
			"UPSTASH_REDIS_REST_TOKEN": dsl.String().NonEmpty(),
		},
	}
}
