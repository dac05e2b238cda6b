package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"firemarks"
)

var (
	clipboardFlag bool
	styleFlag     string
	folderFlag    string
	profileFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "firemarks [filter]",
	Short: "List Firefox toolbar bookmarks as org-mode links",
	Long: `firemarks reads bookmarks from the default Firefox profile and prints
them as org-mode links, optionally filtered by a case-insensitive pattern
matched against URL and title.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolVarP(&clipboardFlag, "clipboard", "c", false, "write output to the X clipboard, not standard output")
	rootCmd.Flags().StringVarP(&styleFlag, "style", "s", "", "output style: unified, split or plain")
	rootCmd.Flags().StringVarP(&folderFlag, "folder", "d", "", "name of the bookmarks folder to read from")
	rootCmd.Flags().StringVar(&profileFlag, "profile", "", "profile name, profile directory or places.sqlite path")
}

func run(cmd *cobra.Command, args []string) error {
	// Only flags the user actually set may override the config file.
	flags := map[string]string{}
	if cmd.Flags().Changed("clipboard") {
		flags["clipboard"] = fmt.Sprintf("%t", clipboardFlag)
	}
	if cmd.Flags().Changed("style") {
		flags["style"] = styleFlag
	}
	if cmd.Flags().Changed("folder") {
		flags["folder"] = folderFlag
	}
	if len(args) == 1 {
		flags["filter"] = args[0]
	}

	cfg := firemarks.ResolveConfig(configPath(), flags)
	ctx := cmd.Context()

	bookmarks, err := firemarks.List(ctx, firemarks.Options{
		Folder:  cfg.Folder,
		Filter:  cfg.Filter,
		Profile: profileFlag,
	})
	if err != nil {
		return err
	}

	lines, err := firemarks.Render(bookmarks, cfg.Style)
	if err != nil {
		return err
	}

	return firemarks.Deliver(ctx, os.Stdout, lines, cfg.Clipboard)
}

func configPath() string {
	if p := os.Getenv("FIREMARKS_CONFIG"); p != "" {
		return p
	}
	return firemarks.UserConfigPath()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
