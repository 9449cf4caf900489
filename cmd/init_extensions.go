/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Separated from root.go to isolate the initialisation logic that discovers
// the workspace, loads config, builds the rule engine, and wires up
// extensions.
//
// Design: Extensions register during init() but aren't initialised until
// first command execution. This two-phase pattern allows extensions to
// declare commands before the rule file exists. The engine is created once
// and shared across all extensions via the Context.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/codeowner/extension"
	"github.com/jpl-au/codeowner/internal/codeowners"
	"github.com/jpl-au/codeowner/internal/config"
	"github.com/jpl-au/codeowner/internal/log"
	"github.com/jpl-au/codeowner/internal/repo"
)

// noRulesCommands lists commands that bypass automatic engine initialisation.
// Built dynamically from bootstrap commands plus extension-declared rules-free commands.
var noRulesCommands map[string]bool

// buildNoRulesCommands creates the set of commands that skip engine initialisation.
//
// Why this exists: Most commands need the rule engine, but some must work
// without it. There are two categories:
//
//  1. Bootstrap commands (init, guide, config, version) - These help users
//     set up or learn about codeowner before a rule file exists. Running
//     "codeowner guide" shouldn't fail just because there's no CODEOWNERS yet.
//
//  2. Extension-declared rules-free commands - Extensions can implement the
//     RulesFree interface to declare commands that manage their own engine
//     lifecycle. For example, "serve" controls reload timing itself.
//
// When adding a new command: If it's a core bootstrap command, add it here.
// Otherwise, implement extension.RulesFree in your extension.
func buildNoRulesCommands() map[string]bool {
	cmds := map[string]bool{
		// Core bootstrap commands - always rules-free
		"init":    true,
		"guide":   true,
		"config":  true,
		"version": true,
	}

	// Add extension-declared rules-free commands
	for _, ext := range extension.All() {
		if rf, ok := ext.(extension.RulesFree); ok {
			for _, name := range rf.NoRulesCommands() {
				cmds[name] = true
			}
		}
	}

	return cmds
}

// Global extension context, created during initialisation.
var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// initExtensions discovers the workspace, builds the rule engine, and
// injects both into extensions.
//
// Why sync.Once: Discovery walks the directory tree and reads the rule file;
// the result must be shared across all extensions. We use sync.Once to
// guarantee exactly one initialisation per process.
//
// A missing rule file is not an error here: the engine stays empty and every
// path resolves as unowned. Commands that need real rules report the missing
// file themselves with actionable guidance.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}

		ws, err := repo.Discover(Root(), RuleFile(), cfg.RuleLocations())
		if err != nil {
			initErr = fmt.Errorf("discover workspace: %w", err)
			return
		}

		// Set workspace identifier for audit logging
		log.SetWorkspace(ws.Root)

		eng := codeowners.New()
		if ws.Found() {
			content, err := ws.ReadRules()
			if err != nil {
				initErr = err
				return
			}
			eng.Load(content, ws.RelRulePath())
		}

		extContext = extension.NewContext(eng, ws, cfg)

		// Inject the shared context into all Initializable extensions.
		// This is dependency injection - extensions receive the engine rather
		// than creating it themselves, enabling shared state.
		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}

		if ws.Found() {
			snap := eng.Snapshot()
			_ = extension.Dispatch(extContext, extension.RulesLoadEvent{
				Path:   ws.RulePath,
				Rules:  len(snap.Rules),
				Owners: len(snap.Owners),
			})
		}
	})
	return initErr
}

// Context returns the shared extension context, initialising it on first
// use. Rules-free commands that later decide they need the engine (serve,
// diff against the workspace file) call this instead of reimplementing
// discovery.
func Context() (extension.Context, error) {
	if err := initExtensions(); err != nil {
		return nil, err
	}
	return extContext, nil
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}

		// Build noRulesCommands after all extensions are registered
		noRulesCommands = buildNoRulesCommands()
	})
}
