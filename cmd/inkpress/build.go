package main

import (
	"github.com/spf13/cobra"

	"github.com/inkpress/inkpress"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the static site",
	Long: `Build loads every post from the content directory, validates its front
matter, renders pages through the component layer, and writes the site to
the output directory along with the theme stylesheet, RSS feed, and sitemap.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		site := inkpress.New(siteConfig)
		return site.Build(cmd.Context())
	},
}
