package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/hanzirecall/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hanzirecall <tsvPath> <ankiCollectionPath> <pinyin>",
		Short: "Chinese Anki Flashcard Recorder",
		Long: `hanzirecall looks up a pinyin term on trainchinese.com, lets you pick
one of the matching words, downloads its pronunciation into your Anki
collection and appends a card to a TSV file ready for import.

Examples:
  hanzirecall cards.tsv ~/.local/share/Anki2/User\ 1/collection.media ni3hao3
  hanzirecall -e cards.tsv ./media hao   # search the whole result page`,
		Args:    cobra.ExactArgs(3),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.hanzirecall.yaml)")

	// Local flags
	cmd.Flags().BoolVarP(&flags.Extended, "extended", "e", false, "Show extended results (search the untrimmed page)")
	cmd.Flags().IntVar(&flags.MaxResults, "max-results", flags.MaxResults, "Number of results listed before choosing (0 lists all)")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log debug output to stderr")

	// Site flags
	cmd.Flags().StringVar(&flags.BaseURL, "base-url", flags.BaseURL, "Dictionary site base URL")
	cmd.Flags().StringVar(&flags.UserAgent, "user-agent", flags.UserAgent, "User-Agent header sent to the site")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "HTTP timeout per request (0 waits indefinitely)")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("search.extended", cmd.Flags().Lookup("extended"))
	viper.BindPFlag("search.max_results", cmd.Flags().Lookup("max-results"))
	viper.BindPFlag("log.verbose", cmd.Flags().Lookup("verbose"))
	viper.BindPFlag("site.base_url", cmd.Flags().Lookup("base-url"))
	viper.BindPFlag("http.user_agent", cmd.Flags().Lookup("user-agent"))
	viper.BindPFlag("http.timeout", cmd.Flags().Lookup("timeout"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".hanzirecall" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".hanzirecall")
	}

	// Environment variables, e.g. HANZIRECALL_SITE_BASE_URL
	viper.SetEnvPrefix("HANZIRECALL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// ApplyConfig copies configured values into flags. Flags given on the
// command line win over the config file and the environment.
func ApplyConfig(flags *Flags) {
	flags.Extended = viper.GetBool("search.extended")
	flags.MaxResults = viper.GetInt("search.max_results")
	flags.Verbose = viper.GetBool("log.verbose")
	flags.BaseURL = viper.GetString("site.base_url")
	flags.UserAgent = viper.GetString("http.user_agent")
	flags.Timeout = viper.GetDuration("http.timeout")
}
