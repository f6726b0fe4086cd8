package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog"

	guardenv "github.com/guardenv/guardenv"
	"github.com/guardenv/guardenv/presets"
	"github.com/guardenv/guardenv/source/jsonenv"
	"github.com/guardenv/guardenv/source/osenv"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "check":
		checkCmd(os.Args[2:])
	case "presets":
		presetsCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "guardenv CLI\n\nUsage:\n  guardenv check -manifest env.yaml [-values values.json] [-strict] [-untrusted]\n  guardenv presets\n\nNotes:\n  - check validates the process environment (or a JSON values file) against a YAML manifest.\n  - presets lists the bundled platform descriptors.")
}

func newLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var manifestPath string
	var valuesPath string
	var strict bool
	var untrusted bool
	fs.StringVar(&manifestPath, "manifest", "", "YAML manifest describing the field groups")
	fs.StringVar(&valuesPath, "values", "", "JSON file of raw values (defaults to the process environment)")
	fs.BoolVar(&strict, "strict", false, "reject raw keys not declared in the manifest")
	fs.BoolVar(&untrusted, "untrusted", false, "validate the client-reachable schema only")
	_ = fs.Parse(args)
	if manifestPath == "" {
		fs.Usage()
		os.Exit(2)
	}

	log := newLogger()

	m, err := loadManifest(manifestPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading manifest")
	}
	d, err := m.descriptor()
	if err != nil {
		log.Fatal().Err(err).Msg("building descriptor")
	}
	if strict {
		d.Strict = true
	}
	if untrusted {
		trusted := false
		d.Trusted = &trusted
	}

	if valuesPath != "" {
		b, rerr := os.ReadFile(valuesPath)
		if rerr != nil {
			log.Fatal().Err(rerr).Msg("reading values file")
		}
		d.Values, err = jsonenv.Load(b)
		if err != nil {
			log.Fatal().Err(err).Msg("parsing values file")
		}
	} else {
		d.Values = osenv.Environ()
	}

	env, err := guardenv.Validate(context.Background(), d)
	if err != nil {
		if iss, ok := guardenv.AsIssues(err); ok {
			for _, it := range iss {
				log.Error().Str("path", it.Path).Str("code", it.Code).Msg(it.Message)
			}
			log.Fatal().Int("issues", len(iss)).Msg("environment invalid")
		}
		log.Fatal().Err(err).Msg("environment invalid")
	}

	log.Info().Int("fields", len(env.Keys())).Msg("environment valid")
}

func presetsCmd(args []string) {
	fs := flag.NewFlagSet("presets", flag.ExitOnError)
	_ = fs.Parse(args)

	catalog := map[string]guardenv.Descriptor{
		"vercel":        presets.Vercel(),
		"neon":          presets.Neon(),
		"supabase":      presets.Supabase(),
		"upstash-redis": presets.UpstashRedis(),
		"vite":          presets.Vite(),
	}
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		d := catalog[name]
		fmt.Printf("%-14s server=%d client=%d shared=%d prefix=%q\n",
			name, len(d.Server), len(d.Client), len(d.Shared), d.Prefix)
	}
}
