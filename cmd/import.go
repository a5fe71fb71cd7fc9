package cmd

import (
	"expansion/infra"
	"expansion/internal/importer"
	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	var opts importer.Options

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Importa municípios e indicadores do IBGE para a tabela de cidades",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := infra.NewConfig()
			container := infra.NewContainerDI(cmd.Context(), config)
			defer container.Close()

			if !cmd.Flags().Changed("state") {
				opts.StateCode = config.IbgeStateCode
			}
			result, err := container.ServiceImport.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().IntVar(&opts.StateCode, "state", 31, "código IBGE da UF")
	cmd.Flags().Int64Var(&opts.MinPopulation, "min-population", 0, "população mínima para importar a cidade")
	cmd.Flags().Float64Var(&opts.TargetShare, "target-share", importer.DefaultTargetShare, "fração da população usada como público-alvo quando não há valor gravado")
	cmd.Flags().Int64SliceVar(&opts.Only, "only", nil, "importa apenas estes códigos IBGE")
	return cmd
}
