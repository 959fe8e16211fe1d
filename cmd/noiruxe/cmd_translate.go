package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"noiruxe.app/translation/lang"
)

var translateCmd = &cobra.Command{
	Use:   "translate [text...]",
	Short: "Translate one text through the cache",
	Long: `Translates the arguments, joined by spaces, as a single text.

Example:
  noiruxe translate --to fr "Live session"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTranslate,
}

var translateBatchCmd = &cobra.Command{
	Use:   "translate-batch [text...]",
	Short: "Translate several texts with at most one provider request",
	Long: `Translates each argument, or each line of stdin when no argument is
given, and prints the results one per line in the same order.`,
	RunE: runTranslateBatch,
}

func languages(cmd *cobra.Command) (string, string, error) {
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	f, err := lang.Normalize(from)
	if err != nil {
		return "", "", fmt.Errorf("invalid --from: %w", err)
	}
	t, err := lang.Normalize(to)
	if err != nil {
		return "", "", fmt.Errorf("invalid --to: %w", err)
	}
	return f, t, nil
}

func runTranslate(cmd *cobra.Command, args []string) error {
	from, to, err := languages(cmd)
	if err != nil {
		return err
	}
	ctx, cancel := commandContext(cmd.Context())
	defer cancel()

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	fmt.Fprintln(cmd.OutOrStdout(), a.cache.Translate(ctx, strings.Join(args, " "), from, to))
	return nil
}

func runTranslateBatch(cmd *cobra.Command, args []string) error {
	from, to, err := languages(cmd)
	if err != nil {
		return err
	}
	texts := args
	if len(texts) == 0 {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			texts = append(texts, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	ctx, cancel := commandContext(cmd.Context())
	defer cancel()

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	for _, t := range a.cache.TranslateBatch(ctx, texts, from, to) {
		fmt.Fprintln(cmd.OutOrStdout(), t)
	}
	return nil
}
