package cmd

import (
	"fmt"

	"expansion/infra"
	"expansion/infra/logger"
	"expansion/internal/reconcile"
	"expansion/pkg/backend"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newReconcileCmd() *cobra.Command {
	var baseURL, token string

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Carrega cidades, planos e blocos do backend e corrige status divergentes",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := infra.NewConfig()
			log, err := logger.New(config.Environment, config.LogDebug)
			if err != nil {
				return err
			}
			defer log.Sync()

			if baseURL == "" {
				baseURL = config.BackendURL
			}
			if token == "" {
				token = config.BackendToken
			}

			client := backend.NewClient(baseURL, token, config.BackendTimeout)
			store := reconcile.NewStore(client,
				reconcile.WithLogger(log),
				reconcile.WithStatusListener(func(change reconcile.StatusChange) {
					log.Info("status alterado",
						zap.Int64("city_id", change.CityID),
						zap.String("from", string(change.From)),
						zap.String("to", string(change.To)))
				}))

			if err := store.Load(cmd.Context()); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), store.Warning())
				return err
			}
			return printJSON(cmd.OutOrStdout(), store.Portfolio())
		},
	}
	cmd.Flags().StringVar(&baseURL, "url", "", "URL base da API (padrão: BACKEND_URL)")
	cmd.Flags().StringVar(&token, "token", "", "token de acesso com permissão de escrita (padrão: BACKEND_TOKEN)")
	return cmd
}
