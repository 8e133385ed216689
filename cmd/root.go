// Package cmd implements the framepath command line, a debugging aid for
// locator expressions: parse an HTML file, resolve a path against it, print
// what matched.
package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/heathj/framepath/htmldom"
	"github.com/heathj/framepath/locator"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "framepath <file.html> <path>",
	Short: "Resolve a frame-aware XPath locator against an HTML file",
	Long: `framepath resolves an XPath locator expression against an HTML
document and prints the matched elements. The /content: token in a path
descends into a frame or iframe element's nested (srcdoc) document:

  framepath page.html '//iframe[@name="menu"]/content://a[@id="home"]'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return run(cmd, args[0], args[1])
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func run(cmd *cobra.Command, file, path string) error {
	f, err := os.Open(file)
	if err != nil {
		return errors.Wrap(err, "opening document")
	}
	defer f.Close()

	ctx, err := htmldom.Parse(f)
	if err != nil {
		return err
	}

	resolver := htmldom.NewResolver()
	resolver.Reporter = locator.ReporterFunc(func(msg string) {
		logrus.WithField("path", path).Warn(msg)
	})

	logrus.WithField("path", path).Debugf("resolving against %s", file)

	matches := locator.Collect(resolver.Resolve(path, ctx))
	if len(matches) == 0 {
		return fmt.Errorf("no elements match %s", path)
	}
	for _, el := range matches {
		fmt.Fprintln(cmd.OutOrStdout(), htmldom.OuterHTML(el))
	}
	return nil
}
