package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the translation cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached translation",
	RunE:  runCacheClear,
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the number of cached translations",
	RunE:  runCacheStats,
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd.Context())
	defer cancel()

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	n := a.cache.Len()
	if err := a.cache.Clear(ctx); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "cleared %d translations\n", n)
	return nil
}

func runCacheStats(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd.Context())
	defer cancel()

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	fmt.Fprintf(cmd.OutOrStdout(), "%d translations\n", a.cache.Len())
	return nil
}
