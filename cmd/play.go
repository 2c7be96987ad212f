package cmd

import (
	"fmt"

	"github.com/abhisek/clozeiz/internal/app"
	"github.com/abhisek/clozeiz/internal/quizfile"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play <quiz.json>",
	Short: "Take a quiz exported with generate --json",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd, true)
		if err != nil {
			return err
		}
		defer d.log.Sync()

		f, err := quizfile.Load(args[0], d.cfg.Engine.OptionCount)
		if err != nil {
			return fmt.Errorf("load quiz: %w", err)
		}
		d.log.Info("playing quiz file", "id", f.ID, "questions", len(f.Questions))

		return app.Run(app.Options{
			Questions: f.Questions,
			Logger:    d.log,
		})
	},
}
