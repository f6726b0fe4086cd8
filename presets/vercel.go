package presets

import (
	guardenv "github.com/guardenv/guardenv"
	"github.com/guardenv/guardenv/dsl"
)

// Vercel describes the deployment metadata Vercel injects into builds and
// runtime. Everything is optional: the variables only exist on the platform.
func Vercel() guardenv.Descriptor {
	return guardenv.Descriptor{
		Server: guardenv.FieldMap{
			"VERCEL":                          dsl.String().Optional(),
			"CI":                              dsl.String().Optional(),
			"VERCEL_ENV":                      dsl.Enum("development", "preview", "production").Optional(),
			"VERCEL_URL":                      dsl.String().Optional(),
			"VERCEL_PROJECT_PRODUCTION_URL":   dsl.String().Optional(),
			"VERCEL_BRANCH_URL":               dsl.String().Optional(),
			"VERCEL_REGION":                   dsl.String().Optional(),
			"VERCEL_DEPLOYMENT_ID":            dsl.String().Optional(),
			"VERCEL_SKEW_PROTECTION_ENABLED":  dsl.String().Optional(),
			"VERCEL_AUTOMATION_BYPASS_SECRET": dsl.String().Optional(),
			"VERCEL_GIT_PROVIDER":             dsl.String().Optional(),
			"VERCEL_GIT_REPO_SLUG":            dsl.String().Optional(),
			"VERCEL_GIT_REPO_OWNER":           dsl.String().Optional(),
			"VERCEL_GIT_REPO_ID":              dsl.String().Optional(),
			"VERCEL_GIT_COMMIT_REF":           dsl.String().Optional(),
			"VERCEL_GIT_COMMIT_SHA":           dsl.String().Optional(),
			"VERCEL_GIT_COMMIT_MESSAGE":       dsl.String().Optional(),
			"VERCEL_GIT_COMMIT_AUTHOR_LOGIN":  dsl.String().Optional(),
			"VERCEL_GIT_COMMIT_AUTHOR_NAME":   dsl.String().Optional(),
			"VERCEL_GIT_PREVIOUS_SHA":         dsl.String().Optional(),
			"VERCEL_GIT_PULL_REQUEST_ID":      dsl.String().Optional(),
		},
	}
}
