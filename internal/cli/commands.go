package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Werneck0live/gestao-terceirizados/internal/export"
	"github.com/Werneck0live/gestao-terceirizados/internal/forms"
	"github.com/Werneck0live/gestao-terceirizados/internal/models"
	"github.com/Werneck0live/gestao-terceirizados/internal/render"
	"github.com/Werneck0live/gestao-terceirizados/internal/store"
	"github.com/Werneck0live/gestao-terceirizados/internal/tui"
)

var ErrBadAssignment = errors.New("expected field=value")

func kindArg(args []string) (models.Kind, error) {
	return models.ParseKind(args[0])
}

func kindNames() string {
	names := make([]string, len(models.Kinds))
	for i, k := range models.Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, "|")
}

func newDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Mostra o resumo do dia",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.loader.FetchDashboard(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.Dashboard(a.store.Snapshot().Dashboard))
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list <" + kindNames() + ">",
		Short: "Lista uma coleção com as referências resolvidas",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := kindArg(args)
			if err != nil {
				return err
			}
			// carrega tudo para resolver nomes; falhas parciais só deixam "Não encontrado"
			_ = a.loader.Refetch(cmd.Context(), false, models.Kinds...)
			tb, err := render.Rows(a.store.Snapshot(), kind)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tb.Render(0))
			return nil
		},
	}
}

func newFieldsCmd(*app) *cobra.Command {
	return &cobra.Command{
		Use:         "fields <kind>",
		Short:       "Lista os campos aceitos por create",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{offline: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := kindArg(args)
			if err != nil {
				return err
			}
			d, err := forms.New(kind)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, f := range d.Fields() {
				line := fmt.Sprintf("%-24s %s", f.Name, f.Label)
				if f.Required {
					line += " *"
				}
				if len(f.Options) > 0 {
					line += " [" + strings.Join(f.Options, ", ") + "]"
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}

func newCreateCmd(a *app) *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   "create <kind> --set campo=valor ...",
		Short: "Cadastra um registro",
		Long: `Preenche o formulário do kind campo a campo (na ordem das flags) e envia.
Use "painel fields <kind>" para ver os campos.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := kindArg(args)
			if err != nil {
				return err
			}
			for _, kv := range sets {
				field, value, ok := strings.Cut(kv, "=")
				if !ok {
					return fmt.Errorf("%w: %q", ErrBadAssignment, kv)
				}
				if err := a.store.Dispatch(store.SetField{Kind: kind, Field: strings.TrimSpace(field), Value: value}); err != nil {
					return err
				}
			}

			var created map[string]any
			if err := a.submit.Submit(cmd.Context(), kind, &created); err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(created)
		},
	}
	cmd.Flags().StringArrayVarP(&sets, "set", "s", nil, "campo=valor (repetível)")
	return cmd
}

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Abre o painel em abas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return tui.Run(a.loader, a.submit, a.cfg.HTTPTimeout)
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exporta todas as coleções para XLSX",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.loader.LoadAll(cmd.Context()); err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := export.Write(f, a.store.Snapshot()); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "planilha gravada em", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "terceirizados.xlsx", "arquivo de saída")
	return cmd
}
