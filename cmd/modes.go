package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/shailiguru/ssat-practice/internal/review"
	"github.com/shailiguru/ssat-practice/internal/store"
)

// Mode subcommands jump straight into one practice mode without the
// main menu.

var testCmd = newModeCommand("test", "Run a full-length practice test",
	func(ctx context.Context, a *app, student *store.Student) error {
		return a.newRunner().RunFullTest(ctx, student)
	})

var practiceCmd = newModeCommand("practice", "Practice a single section",
	func(ctx context.Context, a *app, student *store.Student) error {
		return a.newRunner().RunSectionPractice(ctx, student)
	})

var drillCmd = newModeCommand("drill", "Run a quick drill with instant feedback",
	func(ctx context.Context, a *app, student *store.Student) error {
		return a.newRunner().RunQuickDrill(ctx, student)
	})

var reviewCmd = newModeCommand("review", "Review missed questions",
	func(ctx context.Context, a *app, student *store.Student) error {
		return review.New(a.st.Sessions(), a.st.Answers(), a.st.Questions(), a.ui).Run(ctx, student)
	})

func newModeCommand(use, short string, run func(ctx context.Context, a *app, student *store.Student) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := buildApp(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx := cmd.Context()
			student, err := a.selectOrCreateProfile(ctx)
			if err != nil {
				return err
			}
			return run(ctx, a, student)
		},
	}
}
