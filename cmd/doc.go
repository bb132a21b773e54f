// Package cmd implements the sriovhmc command-line interface.
//
// The package organizes all CLI subcommands (add, remove, check, verify) and
// the underlying helpers for SSH connectivity to a Hardware Management
// Console, the persistent interactive HMC shell used to execute management
// commands with exit-status capture, the per-command parsers for lshwres and
// lssyscfg output, local LPAR discovery, network interface configuration, and
// structured YAML report emission.
//
// New contributors should start by reading rootCmd.go to see how cobra is
// wired, checkCmd.go for the full add/verify/remove flow, hmcShell.go for the
// single-connection persistent interactive shell, and testbed.go for how a
// run resolves its HMC, managed system, and partition before issuing
// commands.
package cmd
