package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/unimind/unimind/internal/app"
	"github.com/unimind/unimind/internal/auth"
	"github.com/unimind/unimind/internal/predict"
	"github.com/unimind/unimind/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	secret, err := auth.LoadOrCreateSecret(filepath.Join(filepath.Dir(dbPath), "token.key"))
	if err != nil {
		return fmt.Errorf("load signing secret: %w", err)
	}
	authService := auth.NewService(st.UserRepo(), st.SessionRepo(), secret)

	client := predict.NewClient(predict.ConfigFromEnv())
	scorer := predict.WithLogging(client, client.PredictURL(), st.EventRepo())

	return app.Run(app.Options{
		Auth:        authService,
		Scorer:      scorer,
		Users:       st.UserRepo(),
		Assessments: st.AssessmentRepo(),
	})
}
