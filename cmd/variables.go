package cmd

import "time"

// Version is the CLI version string injected at build time via -ldflags.
var Version = "0.1.0"

var (
	// Global configuration populated by flags and/or environment variables.
	// These are declared here so they are visible across subcommands.
	cfgParams        string
	cfgOutPath       string
	cfgHMC           string
	cfgUser          string
	cfgPassword      string
	cfgKeyPath       string
	cfgPassphrase    string
	cfgKnownHosts    string
	cfgStrictHost    bool
	cfgCmdTimeout    time.Duration
	cfgConnTimeout   time.Duration
	cfgLPAR          string
	cfgManagedSystem string
	cfgSkipPackages  bool
)

// Allow tests to stub dialing, shell negotiation, local command execution,
// and password prompting.
var (
	dialSSHFunc        = dialSSH
	openShellFunc      = newHMCShell
	localRunFunc       = localRun
	promptPasswordFunc = promptPassword
)
