package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/proctorly/itemsel/internal/store"
)

var decisionsCmd = &cobra.Command{
	Use:   "decisions",
	Short: "Dump the selection decision log as JSON lines",
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

		sessionID, _ := cmd.Flags().GetString("session")
		limit, _ := cmd.Flags().GetInt("limit")

		var recs []store.DecisionRecord
		if sessionID != "" {
			recs, err = st.DecisionRepo().BySession(cmd.Context(), sessionID)
		} else {
			recs, err = st.DecisionRepo().Recent(cmd.Context(), limit)
		}
		if err != nil {
			return fmt.Errorf("read decision log: %w", err)
		}

		enc := json.NewEncoder(os.Stdout)
		for _, rec := range recs {
			line := decisionLine{
				Sequence:    rec.Sequence,
				Timestamp:   rec.Timestamp.UTC().Format(time.RFC3339),
				SessionID:   rec.SessionID,
				ItemID:      rec.ItemID,
				Strategy:    rec.Strategy,
				Breakdown:   rec.Breakdown,
				Rationale:   rec.Rationale,
				PoolSize:    rec.PoolSize,
				BiasRelaxed: rec.BiasRelaxed,
			}
			if err := enc.Encode(line); err != nil {
				return err
			}
		}
		return nil
	},
}

// decisionLine is the JSON shape emitted per decision, consumed by fairness
// and audit reporting pipelines.
type decisionLine struct {
	Sequence    int64              `json:"sequence"`
	Timestamp   string             `json:"timestamp"`
	SessionID   string             `json:"session_id"`
	ItemID      string             `json:"item_id"`
	Strategy    string             `json:"strategy"`
	Breakdown   map[string]float64 `json:"breakdown"`
	Rationale   string             `json:"rationale"`
	PoolSize    int                `json:"pool_size"`
	BiasRelaxed bool               `json:"bias_relaxed"`
}

func init() {
	decisionsCmd.Flags().String("session", "", "only decisions for this session id")
	decisionsCmd.Flags().Int("limit", 50, "maximum decisions to dump (newest first, ignored with --session)")
	rootCmd.AddCommand(decisionsCmd)
}
