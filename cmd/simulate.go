package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/proctorly/itemsel/internal/catalog"
	"github.com/proctorly/itemsel/internal/irt"
	"github.com/proctorly/itemsel/internal/scoring"
	"github.com/proctorly/itemsel/internal/selection"
	"github.com/proctorly/itemsel/internal/session"
	"github.com/proctorly/itemsel/internal/sim"
	"github.com/proctorly/itemsel/internal/store"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a synthetic adaptive session and report convergence",
	Long: "Simulates a candidate with a known true ability answering items picked by\n" +
		"the real selection pipeline, then reports the estimate's convergence trail.\n" +
		"With --persist the run writes its decision and response logs to the database.",
	RunE: func(cmd *cobra.Command, args []string) error {
		lg := newLogger()
		defer lg.Sync()

		config, err := getConfig()
		if err != nil {
			return fmt.Errorf("getting a config: %w", err)
		}

		trueTheta, _ := cmd.Flags().GetFloat64("theta")
		items, _ := cmd.Flags().GetInt("items")
		bank, _ := cmd.Flags().GetInt("bank")
		seed, _ := cmd.Flags().GetInt64("seed")
		modelName, _ := cmd.Flags().GetString("model")
		strategyName, _ := cmd.Flags().GetString("strategy")
		persist, _ := cmd.Flags().GetBool("persist")

		engineCfg := session.Config{
			Pool: catalog.NewPool(
				sim.SyntheticCatalog(bank, seed),
				catalog.PoolConfig{Cap: config.PoolCap, TTL: config.CacheTTL},
				lg,
			),
			Scorer: scoring.NewScorer(nil, config.LookupTimeout, lg),
			Guard: selection.Guard{
				Threshold:        config.BiasThreshold,
				RelaxedThreshold: config.RelaxedBiasThreshold,
			},
			Selector: selection.NewSelector(rand.New(rand.NewSource(seed))),
			Log:      lg,
		}

		if persist {
			dbPath, err := resolveDBPath(cmd)
			if err != nil {
				return fmt.Errorf("resolve DB path: %w", err)
			}
			st, err := store.Open(dbPath)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer st.Close()
			engineCfg.Decisions = st.DecisionRepo()
			engineCfg.Responses = st.ResponseRepo()
			engineCfg.Snapshots = st.SnapshotRepo()
		}

		engine := session.NewEngine(engineCfg)
		runner := sim.NewRunner(engine, rand.New(rand.NewSource(seed+1)), lg)

		sessionID := "sim-" + uuid.NewString()
		start := time.Now()
		rep, err := runner.Run(cmd.Context(), sessionID, sim.Config{
			TrueTheta: trueTheta,
			Items:     items,
			Model:     irt.ParseModel(modelName),
			Strategy:  scoring.Parse(strategyName),
			Seed:      seed,
		})
		if err != nil {
			return fmt.Errorf("simulation failed: %w", err)
		}

		for i, step := range rep.Steps {
			mark := "✗"
			if step.Correct {
				mark = "✓"
			}
			fmt.Printf("%2d. %s %-10s b=%+.2f  theta=%+.3f  se=%.3f  %s\n",
				i+1, mark, step.ItemID, step.Difficulty, step.Theta, step.SE, step.Rationale)
		}
		if rep.Stopped != "" {
			fmt.Printf("stopped early: %s\n", rep.Stopped)
		}
		fmt.Printf("true theta %+0.2f → estimate %+0.3f (se %.3f) after %d items in %s\n",
			rep.TrueTheta, rep.FinalTheta, rep.FinalSE, len(rep.Steps), time.Since(start).Round(time.Millisecond))

		lg.Info("simulation finished",
			zap.String("session_id", rep.SessionID),
			zap.Float64("true_theta", rep.TrueTheta),
			zap.Float64("final_theta", rep.FinalTheta),
			zap.Float64("final_se", rep.FinalSE),
			zap.Int("steps", len(rep.Steps)))
		return nil
	},
}

func init() {
	simulateCmd.Flags().Float64("theta", 1.0, "simulated candidate's true ability")
	simulateCmd.Flags().Int("items", 20, "number of items to administer")
	simulateCmd.Flags().Int("bank", 200, "size of the synthetic item bank")
	simulateCmd.Flags().Int64("seed", 1, "random seed for reproducible runs")
	simulateCmd.Flags().String("model", "2PL", "IRT response model (1PL, 2PL, 3PL)")
	simulateCmd.Flags().String("strategy", "adaptive_hybrid", "selection strategy")
	simulateCmd.Flags().Bool("persist", false, "write decision/response logs to the database")
	rootCmd.AddCommand(simulateCmd)
}
