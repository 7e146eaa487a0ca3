package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shailiguru/ssat-practice/internal/display"
	"github.com/shailiguru/ssat-practice/internal/exam"
	"github.com/shailiguru/ssat-practice/internal/llm"
	"github.com/shailiguru/ssat-practice/internal/pool"
	"github.com/shailiguru/ssat-practice/internal/qgen"
	"github.com/shailiguru/ssat-practice/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Pre-generate a batch of questions for every topic",
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, _ := cmd.Flags().GetInt("grade")
		level := exam.LevelForGrade(grade)

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		provider, err := llm.NewProviderFromEnv(ctx, st.Events())
		if err != nil {
			return fmt.Errorf("LLM provider required for generation: %w", err)
		}

		settings := exam.SettingsFromEnv()
		ui := display.New()
		cache := pool.New(st.Questions(), qgen.New(provider, settings), settings, func(msg, lvl string) {
			if lvl == "warning" || lvl == "error" {
				ui.Warning(msg)
				return
			}
			ui.Info(msg)
		})

		counts := cache.GenerateBatch(ctx, level, grade)
		total := 0
		for _, n := range counts {
			total += n
		}
		ui.Success(fmt.Sprintf("Generated %d questions for grade %d (%s).", total, grade, level))
		return nil
	},
}

func init() {
	generateCmd.Flags().Int("grade", 4, "Target grade (3-8); decides the exam level")
}
