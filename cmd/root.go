package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Manu343726/spvgen/pkg/codegen"
	"github.com/Manu343726/spvgen/pkg/dialect"
	"github.com/Manu343726/spvgen/pkg/generator"
	"github.com/Manu343726/spvgen/pkg/grammar"
	"github.com/Manu343726/spvgen/pkg/logging"
	"github.com/Manu343726/spvgen/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var ErrUnknownDialect = errors.New("unknown dialect")

var (
	logger    = slog.New(slog.DiscardHandler)
	logCloser io.Closer
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "spvgen",
	Short: "Generates SPIR-V reflection modules from the SPIR-V grammar",
	Long: `spvgen reads the machine readable SPIR-V core grammar and generates source modules
answering questions about opcodes: their class, whether they produce a result, how many
operands they take and which of those operands reference other ids.

Each generated module comes from a definition. Run "spvgen definitions" to list them.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: closeLogging,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(generateCmd, definitionsCmd, dumpCmd, inspectCmd)
	cobra.OnInitialize(initConfig)

	flags := RootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.spvgen.yaml)")
	flags.StringP("grammar", "g", "spirv.core.grammar.json", "SPIR-V grammar file, JSON or YAML")
	flags.String("dialect", dialect.D.Name, "language the generated modules are written in")
	flags.String("log-level", "warn", "minimum level of the log records printed to stderr (debug, info, warn, error)")
	flags.String("log-file", "", "file that also receives every log record as JSON")

	cobra.CheckErr(viper.BindPFlag("grammar", flags.Lookup("grammar")))
	cobra.CheckErr(viper.BindPFlag("dialect", flags.Lookup("dialect")))
	cobra.CheckErr(viper.BindPFlag("log.level", flags.Lookup("log-level")))
	cobra.CheckErr(viper.BindPFlag("log.file", flags.Lookup("log-file")))

	defaults := generator.DefaultPreamble()
	viper.SetDefault("preamble.project", defaults.Project)
	viper.SetDefault("preamble.authors", defaults.Authors)
	viper.SetDefault("preamble.package", defaults.Package)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".spvgen" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".spvgen")
	}

	// SPVGEN_LOG_LEVEL overrides log.level and so on
	viper.SetEnvPrefix("spvgen")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func setupLogging(cmd *cobra.Command, args []string) error {
	l, closer, err := logging.Open(logging.Config{
		Level: viper.GetString("log.level"),
		File:  viper.GetString("log.file"),
	}, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	logger, logCloser = l, closer
	return nil
}

func closeLogging(cmd *cobra.Command, args []string) error {
	if logCloser == nil {
		return nil
	}

	err := logCloser.Close()
	logCloser = nil
	return err
}

// Returns the header of generated modules, with the configured overrides applied
func configuredPreamble() codegen.Preamble {
	preamble := generator.DefaultPreamble()
	preamble.Project = viper.GetString("preamble.project")
	preamble.Authors = viper.GetStringSlice("preamble.authors")
	preamble.Package = viper.GetString("preamble.package")
	return preamble
}

// Loads the configured grammar file, deriving identifiers for the configured dialect
func loadGrammar() (*grammar.Grammar, error) {
	name := viper.GetString("dialect")
	target, ok := dialect.ByName(name)
	if !ok {
		return nil, utils.MakeError(ErrUnknownDialect, "%q", name)
	}

	path := viper.GetString("grammar")
	logger.Debug("loading grammar", slog.String("path", path), slog.String("dialect", target.Name))

	return grammar.Load(path, grammar.WithDialect(target), grammar.WithLogger(logger))
}
