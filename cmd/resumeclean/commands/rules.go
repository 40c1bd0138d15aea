package commands

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jmylchreest/resumeclean/internal/logger"
	"github.com/jmylchreest/resumeclean/pkg/cleaner/boilerplate"
)

// addRuleFlags registers the flags that shape the boilerplate rule set.
func addRuleFlags(flags *pflag.FlagSet) {
	flags.String("preset", "default", "rule preset: default (keep paragraph breaks), compact (drop blank lines)")
	flags.String("rules", "", "JSON or YAML rules file merged into the preset")
	flags.StringArray("phrase", nil, "extra boilerplate phrase, case-insensitive (can be repeated)")
	flags.StringArray("pattern", nil, "extra regular expression a whole line must match to be dropped (can be repeated)")
}

// bindRuleFlags binds the rule flags of a command to viper keys. Bindings are
// made when the command runs since several commands share the keys.
func bindRuleFlags(flags *pflag.FlagSet) {
	_ = viper.BindPFlag("preset", flags.Lookup("preset"))
	_ = viper.BindPFlag("rules", flags.Lookup("rules"))
	_ = viper.BindPFlag("phrases", flags.Lookup("phrase"))
	_ = viper.BindPFlag("patterns", flags.Lookup("pattern"))
}

// buildCleaner assembles the boilerplate cleaner from preset, rules file and
// extra phrases and patterns, in that order.
func buildCleaner() (*boilerplate.Cleaner, error) {
	cfg, err := boilerplate.Preset(viper.GetString("preset"))
	if err != nil {
		return nil, err
	}

	if path := viper.GetString("rules"); path != "" {
		fileCfg, err := boilerplate.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = cfg.Merge(fileCfg)
		logger.Debug("rules file loaded", "path", path,
			"phrases", len(fileCfg.Phrases), "patterns", len(fileCfg.ExtraPatterns))
	}

	cfg = cfg.Merge(&boilerplate.Config{
		Phrases:       viper.GetStringSlice("phrases"),
		ExtraPatterns: viper.GetStringSlice("patterns"),
	})

	c, err := boilerplate.New(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("cleaner ready", "rules", c.RuleNames(), "preserve_blank_lines", cfg.PreserveBlankLines)
	return c, nil
}
