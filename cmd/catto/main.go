// catto renders an ASCII cat to the terminal in a procedurally chosen
// coat pattern.
//
// Usage:
//
//	catto                    - Show the cat in a random pattern
//	catto --jennycatto       - Show a named cat's portrait
//	catto --heart            - Show the companion heart art
//	catto list               - List every pattern and portrait
//	catto menu               - Pick a pattern interactively
//
// Global flags:
//
//	--seed <value>   - RNG seed for the random pattern (0 = time-based)
//	--color <mode>   - auto, always or never
//	--no-caption     - Skip the caption line under the art
//	--config <path>  - Path to a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ninamew/catto/internal/config"
)

var (
	// Global flags
	flagConfig    string
	flagSeed      int64
	flagNoCaption bool
	flagColor     string
)

// catFlags maps every selection flag to its canonical cat. Aliases are
// separate flags that land on the same selection.
var catFlags = []struct {
	canonical string
	aliases   []string
	usage     string
}{
	{"iggy", []string{"ig"}, "Show iggy (warm gradient)"},
	{"lucy", []string{"luce"}, "Show lucy (silver tabby)"},
	{"cassandra", []string{"cass"}, "Show cassandra (silver and white)"},
	{"persephone", []string{"percy"}, "Show persephone (gray and cream)"},
	{"jennycatto", []string{"jenny"}, "Show jennycatto (tuxedo)"},
	{"heart", nil, "Show the heart art"},
}

// flagVals holds the bool destination for every selection flag,
// canonical names and aliases alike.
var flagVals = map[string]*bool{}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catto",
	Short: "A catto in your terminal",
	Long: `catto prints an ASCII cat wearing a procedurally generated coat
pattern. With no flags you get a random pattern from the candidate
pool; each named cat has a flag for its hand-tuned portrait.

Examples:
  catto
  catto --seed 7
  catto --jenny
  catto --heart
  catto list
  catto menu`,
	Run: runRoot,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagNoCaption, "no-caption", false, "Skip the caption line")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "", "Color mode: auto, always, never")

	// Selection flags
	for _, cf := range catFlags {
		v := new(bool)
		flagVals[cf.canonical] = v
		rootCmd.Flags().BoolVar(v, cf.canonical, false, cf.usage)
		for _, alias := range cf.aliases {
			av := new(bool)
			flagVals[alias] = av
			rootCmd.Flags().BoolVar(av, alias, false, cf.usage)
		}
	}

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(menuCmd)
}

// selections returns the canonical names of all cats selected by flag,
// in declaration order. A canonical flag and its alias count once.
func selections() []string {
	var chosen []string
	for _, cf := range catFlags {
		set := *flagVals[cf.canonical]
		for _, alias := range cf.aliases {
			set = set || *flagVals[alias]
		}
		if set {
			chosen = append(chosen, cf.canonical)
		}
	}
	return chosen
}

func runRoot(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	chosen := selections()
	if len(chosen) > 1 {
		fmt.Fprintf(os.Stderr, "catto: one catto at a time (--%s and --%s are both set)\n", chosen[0], chosen[1])
		os.Exit(1)
	}

	var err error
	if len(chosen) == 1 {
		err = showNamed(chosen[0], cfg)
	} else if cfg.DefaultCat != "" {
		err = showNamed(cfg.DefaultCat, cfg)
	} else {
		err = showRandom(cfg)
	}
	if err != nil {
		log.Fatal("could not show catto", "err", err)
	}
}

// loadConfig loads preferences, falling back to defaults on anything
// short of an unreadable explicit --config path.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		if flagConfig != "" {
			log.Fatal("could not load config", "path", flagConfig, "err", err)
		}
		log.Warn("falling back to default config", "err", err)
		cfg = config.Default()
	}
	return cfg
}
