package presets

import (
	guardenv "github.com/guardenv/guardenv"
	"github.com/guardenv/guardenv/dsl"
)

// Vite describes the five variables Vite injects into every build. They come
// from the build tool's injected map, not the process table: pair this preset
// with jsonenv over the emitted manifest rather than osenv.Environ(). All five
// are shared: the build injects them on both sides of the trust boundary.
func Vite() guardenv.Descriptor {
	return guardenv.Descriptor{
		Shared: guardenv.FieldMap{
			"MODE":     dsl.String(),
			"BASE_URL": dsl.String(),
			"PROD":     dsl.Bool(),
			"DEV":      dsl.Bool(),
			"SSR":      dsl.Bool(),
		},
	}
}
