package cmd

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// init configures the root command's persistent flags, binds them to
// environment variables via Viper, and registers all subcommands. This wiring
// ensures a consistent configuration surface across add/remove/check/verify
// and keeps environment overrides predictable for lab automation.
func init() {
	// Persistent flags (inherited by subcommands like `add`)
	rootCmd.PersistentFlags().StringVarP(&cfgParams, "params", "p", "", "Path to YAML params file")
	rootCmd.PersistentFlags().StringVarP(&cfgOutPath, "out", "o", "", "Path to YAML report file (omit to skip the report)")
	rootCmd.PersistentFlags().StringVar(&cfgHMC, "hmc", "", "HMC address host[:port]; discovered from IBM.MCP when empty")
	rootCmd.PersistentFlags().StringVarP(&cfgUser, "user", "u", "", "HMC username (e.g., hscroot)")
	rootCmd.PersistentFlags().StringVar(&cfgPassword, "password", "", "HMC password (or set SRIOVHMC_PASSWORD)")
	rootCmd.PersistentFlags().StringVar(&cfgKeyPath, "key", "", "Path to SSH private key (PEM, OpenSSH)")
	rootCmd.PersistentFlags().StringVar(&cfgPassphrase, "passphrase", "", "Private key passphrase (or set SRIOVHMC_PASSPHRASE)")
	rootCmd.PersistentFlags().StringVar(&cfgKnownHosts, "known-hosts", filepath.Join(os.Getenv("HOME"), ".ssh", "known_hosts"), "Path to known_hosts file")
	rootCmd.PersistentFlags().BoolVar(&cfgStrictHost, "strict-host-key", false, "Require host key verification (HMCs regenerate keys, so default is trust-on-connect)")
	rootCmd.PersistentFlags().DurationVar(&cfgCmdTimeout, "cmd-timeout", 300*time.Second, "Per-command timeout; HMC resource operations are slow")
	rootCmd.PersistentFlags().DurationVar(&cfgConnTimeout, "conn-timeout", 15*time.Second, "Connection timeout")
	rootCmd.PersistentFlags().StringVar(&cfgLPAR, "lpar", "", "Partition name; discovered from lparstat -i when empty")
	rootCmd.PersistentFlags().StringVar(&cfgManagedSystem, "managed-system", "", "Managed system name; discovered from lssyscfg when empty")
	rootCmd.PersistentFlags().BoolVar(&cfgSkipPackages, "skip-packages", false, "Skip the RSCT/DynamicRM package presence gate")

	// Bind env with Viper
	_ = viper.BindPFlag("params", rootCmd.PersistentFlags().Lookup("params"))
	_ = viper.BindPFlag("out", rootCmd.PersistentFlags().Lookup("out"))
	_ = viper.BindPFlag("hmc", rootCmd.PersistentFlags().Lookup("hmc"))
	_ = viper.BindPFlag("user", rootCmd.PersistentFlags().Lookup("user"))
	_ = viper.BindPFlag("password", rootCmd.PersistentFlags().Lookup("password"))
	_ = viper.BindPFlag("key", rootCmd.PersistentFlags().Lookup("key"))
	_ = viper.BindPFlag("passphrase", rootCmd.PersistentFlags().Lookup("passphrase"))
	_ = viper.BindPFlag("known-hosts", rootCmd.PersistentFlags().Lookup("known-hosts"))
	_ = viper.BindPFlag("strict-host-key", rootCmd.PersistentFlags().Lookup("strict-host-key"))
	_ = viper.BindPFlag("cmd-timeout", rootCmd.PersistentFlags().Lookup("cmd-timeout"))
	_ = viper.BindPFlag("conn-timeout", rootCmd.PersistentFlags().Lookup("conn-timeout"))
	_ = viper.BindPFlag("lpar", rootCmd.PersistentFlags().Lookup("lpar"))
	_ = viper.BindPFlag("managed-system", rootCmd.PersistentFlags().Lookup("managed-system"))
	_ = viper.BindPFlag("skip-packages", rootCmd.PersistentFlags().Lookup("skip-packages"))

	viper.SetEnvPrefix("SRIOVHMC")
	viper.AutomaticEnv()

	// Pull in environment overrides on init
	cobra.OnInitialize(func() {
		if v := viper.GetString("params"); v != "" {
			cfgParams = v
		}
		if v := viper.GetString("out"); v != "" {
			cfgOutPath = v
		}
		if v := viper.GetString("hmc"); v != "" {
			cfgHMC = v
		}
		if v := viper.GetString("user"); v != "" {
			cfgUser = v
		}
		if v := viper.GetString("password"); v != "" {
			cfgPassword = v
		}
		if v := viper.GetString("key"); v != "" {
			cfgKeyPath = v
		}
		if v := viper.GetString("passphrase"); v != "" {
			cfgPassphrase = v
		}
		if v := viper.GetString("known-hosts"); v != "" {
			cfgKnownHosts = v
		}
		if v := viper.GetString("cmd-timeout"); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				cfgCmdTimeout = d
			}
		}
		if v := viper.GetString("conn-timeout"); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				cfgConnTimeout = d
			}
		}
		if v := viper.GetString("lpar"); v != "" {
			cfgLPAR = v
		}
		if v := viper.GetString("managed-system"); v != "" {
			cfgManagedSystem = v
		}
		// Booleans
		if viper.IsSet("strict-host-key") {
			cfgStrictHost = viper.GetBool("strict-host-key")
		}
		if viper.IsSet("skip-packages") {
			cfgSkipPackages = viper.GetBool("skip-packages")
		}
	})

	// Add subcommands
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(verifyCmd)
}
