// Package vars resolves layered configuration sources into the variable
// context used for rendering unit templates.
//
// Sources are ordered by precedence: built-in defaults first, then
// environment overrides, then the secret store, then any run-time flag
// overrides. Later sources shadow earlier ones key-by-key; a key defined
// in two layers takes its entire value from the higher-precedence layer,
// nested structures are never partially merged.
//
// Resolution is total: every key a fleet declares must be present in some
// layer, and resolution fails before any unit is touched if one is not.
//
// # Example
//
//	ctx, err := vars.Resolve([]vars.Source{
//	    vars.NewStaticSource("defaults", defaults),
//	    vars.NewEnvSource("STEVEDORE", fleet.DeclaredKeys()),
//	    vars.NewSopsSource([]string{"vars/secrets.sops.yaml"}),
//	}, fleet.DeclaredKeys())
package vars
