package cmd

import (
	"github.com/abhisek/clozeiz/internal/app"
	"github.com/spf13/cobra"
)

// runApp builds dependencies and launches the TUI on the compose screen.
func runApp(cmd *cobra.Command) error {
	d, err := loadDeps(cmd, true)
	if err != nil {
		return err
	}
	defer d.log.Sync()

	return app.Run(app.Options{
		Generator:       d.gen,
		MaxContentChars: d.cfg.App.MaxContentChars,
		Logger:          d.log,
	})
}
