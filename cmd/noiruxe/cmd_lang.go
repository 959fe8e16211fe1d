package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"noiruxe.app/translation/lang"
)

var langCmd = &cobra.Command{
	Use:   "lang",
	Short: "Read or change the display language",
}

var langGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the saved display language",
	RunE:  runLangGet,
}

var langSetCmd = &cobra.Command{
	Use:   "set [en|fr]",
	Short: "Save the display language",
	Args:  cobra.ExactArgs(1),
	RunE:  runLangSet,
}

func runLangGet(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd.Context())
	defer cancel()

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	fmt.Fprintln(cmd.OutOrStdout(), a.preference.Load(ctx))
	return nil
}

func runLangSet(cmd *cobra.Command, args []string) error {
	code, ok := lang.Parse(args[0])
	if !ok {
		return fmt.Errorf("unsupported language %q", args[0])
	}
	ctx, cancel := commandContext(cmd.Context())
	defer cancel()

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.preference.Save(ctx, code); err != nil {
		return fmt.Errorf("save language: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), code)
	return nil
}
