package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/proctorly/itemsel/internal/catalog"
	"github.com/proctorly/itemsel/internal/store"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the item catalog",
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Validate a catalog file and replace the stored catalog with it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lg := newLogger()
		defer lg.Sync()

		items, err := parseCatalogFile(args[0])
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.CatalogRepo().ReplaceAll(cmd.Context(), items); err != nil {
			return fmt.Errorf("import catalog: %w", err)
		}

		lg.Info("catalog imported",
			zap.String("file", args[0]),
			zap.Int("items", len(items)),
			zap.String("db", dbPath))
		return nil
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a catalog file against the item schema without importing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := parseCatalogFile(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d items, schema valid\n", args[0], len(items))
		return nil
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the stored catalog in ascending difficulty order",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		items, err := st.CatalogRepo().ActiveItems(cmd.Context())
		if err != nil {
			return fmt.Errorf("list catalog: %w", err)
		}

		for _, it := range items {
			fmt.Printf("%-24s b=%+.2f a=%.2f c=%.2f type=%-10s eff=%.2f bias=%.2f\n",
				it.ID, it.Difficulty, it.Discrimination, it.Guessing, it.Type, it.Effectiveness, it.Bias)
		}
		fmt.Printf("%d active items\n", len(items))
		return nil
	},
}

func parseCatalogFile(path string) ([]catalog.Item, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	items, err := catalog.ParseFile(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return items, nil
}

func init() {
	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogListCmd)
	rootCmd.AddCommand(catalogCmd)
}
