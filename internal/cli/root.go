// Package cli monta os comandos do painel (cobra + viper).
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Werneck0live/gestao-terceirizados/internal/apiclient"
	"github.com/Werneck0live/gestao-terceirizados/internal/config"
	"github.com/Werneck0live/gestao-terceirizados/internal/store"
	"github.com/Werneck0live/gestao-terceirizados/internal/submit"
)

// app é montado no PersistentPreRunE e compartilhado pelos subcomandos.
type app struct {
	v       *viper.Viper
	cfg     *config.ClientConfig
	store   *store.Store
	loader  *store.Loader
	submit  *submit.Coordinator
	logFile io.Closer
}

// NewRootCmd cria a árvore de comandos; cada chamada tem estado próprio.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "painel",
		Short: "Painel administrativo de terceirização de serviços",
		Long: `painel consulta e cadastra empresas, clientes, funções, funcionários,
presença, atestados e licenças no backend de terceirização.`,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logFile != nil {
				_ = a.logFile.Close()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringP("config", "c", "", "config file (default painel.yaml em . ou $HOME/.config/painel)")
	pf.String("backend-url", "", "URL base do backend (sem /api)")
	pf.String("ws-url", "", "URL do relay de eventos (ws://host:8090/ws)")
	pf.Duration("http-timeout", 0, "timeout de cada requisição")
	pf.String("log-level", "", "debug|info|warn|error")
	pf.String("log-file", "", "grava o log neste arquivo")
	for key, flag := range map[string]string{
		"backend_url":  "backend-url",
		"ws_url":       "ws-url",
		"http_timeout": "http-timeout",
		"log_level":    "log-level",
		"log_file":     "log-file",
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(
		newDashboardCmd(a),
		newListCmd(a),
		newFieldsCmd(a),
		newCreateCmd(a),
		newTUICmd(a),
		newExportCmd(a),
		newWatchCmd(a),
	)
	return root
}

// Execute roda o painel com os argumentos do processo.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// offline marca comandos que não falam com o backend.
const offline = "offline"

func (a *app) init(cmd *cobra.Command) error {
	if _, ok := cmd.Annotations[offline]; ok || cmd.Name() == "help" {
		return nil
	}
	cfgFile, _ := cmd.Flags().GetString("config")
	config.InitClientViper(a.v, cfgFile)

	cfg, err := config.LoadClient(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	// o TUI ocupa a tela: sem arquivo explícito o log vai para painel.log
	logTo := cfg.LogFile
	if logTo == "" && cmd.Name() == "tui" {
		logTo = "painel.log"
	}
	var w io.Writer = os.Stderr
	if logTo != "" {
		f, err := os.OpenFile(logTo, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		a.logFile = f
		w = f
	}
	log := config.InitLoggerTo(w, config.ParseLevel(cfg.LogLevel))

	api, err := apiclient.New(cfg.BackendURL, cfg.HTTPTimeout)
	if err != nil {
		return err
	}
	a.store = store.New()
	a.loader = store.NewLoader(api, a.store, log)
	a.submit = submit.New(a.loader, log)
	slog.Debug("painel_init", "backend", cfg.BackendURL, "cmd", cmd.Name())
	return nil
}
