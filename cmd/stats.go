package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shailiguru/ssat-practice/internal/exam"
	"github.com/shailiguru/ssat-practice/internal/llm"
	"github.com/shailiguru/ssat-practice/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-student mastery and LLM usage",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		students, err := st.Students().List(ctx)
		if err != nil {
			return fmt.Errorf("list students: %w", err)
		}
		if len(students) == 0 {
			fmt.Println("No student profiles yet.")
		}

		for _, s := range students {
			fmt.Printf("%s (Grade %d, %s)\n", s.Name, s.Grade, levelTitle(s.Level))
			fmt.Println(strings.Repeat("─", 60))

			mastery, err := st.Mastery().All(ctx, s.ID)
			if err != nil {
				return fmt.Errorf("load mastery: %w", err)
			}
			if len(mastery) == 0 {
				fmt.Println("  no practice recorded")
				fmt.Println()
				continue
			}
			sort.Slice(mastery, func(i, j int) bool { return mastery[i].TopicTag < mastery[j].TopicTag })
			fmt.Printf("  %-24s  %10s  %8s  %9s\n", "Topic", "Difficulty", "Accuracy", "Attempted")
			for _, m := range mastery {
				fmt.Printf("  %-24s  %10.1f  %7.0f%%  %9d\n",
					exam.DisplayName(m.TopicTag), m.DifficultyLevel,
					m.OverallAccuracy()*100, m.TotalAttempted)
			}
			fmt.Println()
		}

		return printLLMUsage(cmd, st)
	},
}

// printLLMUsage shows token totals and estimated cost per model.
func printLLMUsage(cmd *cobra.Command, st *store.Store) error {
	usage, err := st.Events().UsageByModel(cmd.Context())
	if err != nil {
		return fmt.Errorf("query LLM usage: %w", err)
	}
	if len(usage) == 0 {
		return nil
	}

	fmt.Println("LLM Usage (estimated cost, USD)")
	fmt.Println(strings.Repeat("─", 72))
	fmt.Printf("%-32s  %6s  %10s  %10s  %9s\n", "Model", "Calls", "Input", "Output", "Cost")

	var totalCost float64
	var unknown []string
	for _, u := range usage {
		cost := llm.LookupCost(u.Model)
		if cost == nil {
			unknown = append(unknown, u.Model)
			fmt.Printf("%-32s  %6d  %10d  %10d  %9s\n",
				truncate(u.Model, 32), u.Requests, u.InputTokens, u.OutputTokens, "?")
			continue
		}
		c := cost.Cost(u.InputTokens, u.OutputTokens)
		totalCost += c
		fmt.Printf("%-32s  %6d  %10d  %10d  %9s\n",
			truncate(u.Model, 32), u.Requests, u.InputTokens, u.OutputTokens, formatCost(c))
	}

	fmt.Println(strings.Repeat("─", 72))
	label := "TOTAL"
	if len(unknown) > 0 {
		label = "TOTAL (partial)"
	}
	fmt.Printf("%-32s  %6s  %10s  %10s  %9s\n", label, "", "", "", formatCost(totalCost))
	if len(unknown) > 0 {
		fmt.Printf("\nPricing unavailable for: %s\n", strings.Join(unknown, ", "))
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}
