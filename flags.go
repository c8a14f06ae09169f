package diagflags

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/thediveo/enumflag/v2"
)

// Names of the persistent flags SetupFlags defines on the root command.
const (
	FlagAssertions  = "assertions"
	FlagDebug       = "debug"
	FlagExitAction  = "exit-action"
	FlagDebugAction = "debug-action"
)

const (
	FlagEnvsAnnotation = "___flagenvs"
)

// Options configures SetupFlags.
type Options struct {
	AppName   string // Used to derive environment variable names (defaults to the root command name)
	EnvPrefix string // Environment variable prefix (defaults to the normalized app name)
}

// SetupFlags defines the diagnostics flags on the root command and applies
// them to ctrl right before any command runs.
//
// It creates --assertions, --debug, --exit-action, and --debug-action as
// persistent flags, each also settable through a {PREFIX}_{FLAG} environment
// variable. Flag defaults mirror the current state of ctrl.
//
// Works only for the root command.
func SetupFlags(rootC *cobra.Command, ctrl *Controller, opts Options) error {
	if rootC.Parent() != nil {
		return fmt.Errorf("SetupFlags must be called on the root command")
	}
	if ctrl == nil {
		return fmt.Errorf("SetupFlags needs a controller")
	}

	// Determine app name from root command
	appName := opts.AppName
	if appName == "" {
		appName = rootC.Name()
	}
	if appName == "" {
		return fmt.Errorf("couldn't determine the app name")
	}
	envPrefix := opts.EnvPrefix
	if envPrefix == "" {
		envPrefix = normEnv(appName)
	}

	exitAction := ctrl.DefaultExitAction()
	debugAction := ctrl.DefaultDebugAction()

	f := rootC.PersistentFlags()
	f.Bool(FlagAssertions, ctrl.AssertionsEnabled(), "enable internal correctness checks")
	f.StringSlice(FlagDebug, ctrl.DebugTags(), "debug trace tags to enable")
	f.Var(
		enumflag.New(&exitAction, "action", ExitActionIDs, enumflag.EnumCaseInsensitive),
		FlagExitAction,
		"response to a fatal condition "+enumAddendum(ExitActionIDs),
	)
	f.Var(
		enumflag.New(&debugAction, "action", DebugActionIDs, enumflag.EnumCaseInsensitive),
		FlagDebugAction,
		"response to a failed correctness check "+enumAddendum(DebugActionIDs),
	)

	// Bind flags and environment variables to a dedicated viper instance
	v := viper.New()
	if err := bindEnvironmentVariables(f, v, envPrefix); err != nil {
		return err
	}

	// Apply the resolved configuration before any command runs
	previous := rootC.PersistentPreRunE
	rootC.PersistentPreRunE = func(c *cobra.Command, args []string) error {
		cfg, err := FromViper(v)
		if err != nil {
			return err
		}
		cfg.Apply(ctrl)

		if previous != nil {
			return previous(c, args)
		}

		return nil
	}

	return nil
}

// bindEnvironmentVariables binds each diagnostics flag to v together with
// its {PREFIX}_{FLAG} environment variable, recording the variable name in
// the flag annotations.
func bindEnvironmentVariables(f *pflag.FlagSet, v *viper.Viper, envPrefix string) error {
	for _, name := range []string{FlagAssertions, FlagDebug, FlagExitAction, FlagDebugAction} {
		envName := fmt.Sprintf("%s_%s", envPrefix, normEnv(name))
		if err := f.SetAnnotation(name, FlagEnvsAnnotation, []string{envName}); err != nil {
			return err
		}
		if err := v.BindEnv(name, envName); err != nil {
			return err
		}
		if err := v.BindPFlag(name, f.Lookup(name)); err != nil {
			return err
		}
	}

	return nil
}

var envRep = strings.NewReplacer("-", "_", ".", "_")

func normEnv(str string) string {
	return envRep.Replace(strings.ToUpper(str))
}

// enumAddendum renders the usage addendum listing the textual values of an
// enumeration, e.g. "{raise,exit}".
func enumAddendum[E ~int32](ids map[E][]string) string {
	keys := make([]int, 0, len(ids))
	for k := range ids {
		keys = append(keys, int(k))
	}
	sort.Ints(keys)

	values := make([]string, 0, len(keys))
	for _, k := range keys {
		values = append(values, ids[E(k)][0])
	}

	return "{" + strings.Join(values, ",") + "}"
}
