package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Werneck0live/gestao-terceirizados/internal/broker"
	"github.com/Werneck0live/gestao-terceirizados/internal/models"
	"github.com/Werneck0live/gestao-terceirizados/internal/render"
	"github.com/Werneck0live/gestao-terceirizados/internal/ws"
)

var ErrMissingWSURL = errors.New("ws_url is required (flag --ws-url or PAINEL_WS_URL)")

func newWatchCmd(a *app) *cobra.Command {
	var kinds []string
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Acompanha os cadastros em tempo real e atualiza o resumo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.WSURL == "" {
				return ErrMissingWSURL
			}
			var filter []models.Kind
			for _, raw := range kinds {
				k, err := models.ParseKind(raw)
				if err != nil {
					return err
				}
				filter = append(filter, k)
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			_ = a.loader.LoadAll(ctx)
			fmt.Fprintln(out, render.Dashboard(a.store.Snapshot().Dashboard))

			err := ws.Subscribe(ctx, a.cfg.WSURL, filter, func(ev broker.Event) {
				fmt.Fprintf(out, "%s  %s\n", ev.Timestamp.Local().Format("15:04:05"), ev.Message)
				if err := a.loader.Refetch(ctx, true, ev.Kind); err == nil {
					fmt.Fprintln(out, render.Dashboard(a.store.Snapshot().Dashboard))
				}
			})
			if errors.Is(err, ctx.Err()) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringSliceVarP(&kinds, "kinds", "k", nil, "só estes kinds (ex.: funcionarios,presenca)")
	return cmd
}
