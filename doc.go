package guardenv

// Package guardenv validates environment configuration against declarative
// field schemas and returns an access-guarded result:
//
// - Three field groups (Server / Client / Shared) with a client-exposure
//   prefix that partitions which keys may leave the trusted context
// - A stable error model via Issues (path, code, message)
// - Per-read access interception: server-only keys read from an untrusted
//   context trigger OnBreach instead of returning the value
//
// Design policy:
// - Keep only public APIs in the root package; field schema constructors live
//   under dsl/, value sources under source/, platform presets under presets/,
//   and the CLI under cmd/guardenv.
// - The core never reads the process environment implicitly; callers inject a
//   materialized map (source/osenv provides the default one).
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	env, err := guardenv.Validate(ctx, guardenv.Descriptor{
//	    Server: guardenv.FieldMap{"DATABASE_URL": dsl.URL()},
//	    Client: guardenv.FieldMap{"NEXT_PUBLIC_APP_NAME": dsl.String()},
//	    Prefix: "NEXT_PUBLIC_",
//	    Values: osenv.Environ(),
//	})
//	dbURL, err := env.String("DATABASE_URL")
