package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/inkpress/inkpress"
)

var cfgFile string
var siteConfig inkpress.SiteConfig

var rootCmd = &cobra.Command{
	Use:   "inkpress",
	Short: "inkpress - a static personal blog generator",
	Long: `inkpress takes Markdown posts with YAML front matter and renders a
complete static blog: styled pages, syntax-highlighted code blocks, an RSS
feed, and a sitemap.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the inkpress version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "inkpress %s\n", version)
	},
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.AddCommand(buildCmd, watchCmd, newCmd, versionCmd)
}

func initConfig() error {
	v := viper.New()

	v.SetDefault("name", "Blog")
	v.SetDefault("url", "http://localhost:3000")
	v.SetDefault("contentDir", "_posts")
	v.SetDefault("staticDir", "public")
	v.SetDefault("outputDir", "_site")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("INKPRESS")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config: %w", err)
		}
		// No config file is fine: defaults plus INKPRESS_* env vars apply.
	}

	return v.Unmarshal(&siteConfig)
}
