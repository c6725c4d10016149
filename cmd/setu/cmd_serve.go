package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/setu/config"
	"github.com/shashiranjanraj/setu/internal/demo"
	"github.com/shashiranjanraj/setu/pkg/logger"
	"github.com/shashiranjanraj/setu/pkg/router"
	"github.com/shashiranjanraj/setu/pkg/server"
)

var (
	serveHost string
	servePort uint16
	serveCORS bool
)

// setu serve: start the demo server. Flags override the environment.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the built-in demo server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		// Optional async Mongo log sink, fanned out next to stdout.
		if uri := config.MongoLogURI(); uri != "" {
			mh, err := logger.NewMongoHandler(uri, config.MongoLogDatabase(), "logs")
			if err != nil {
				logger.Warn("mongo log sink unavailable", "error", err.Error())
			} else {
				defer mh.Close()
				logger.L = slog.New(logger.NewMultiHandler(logger.L.Handler(), mh))
				slog.SetDefault(logger.L)
			}
		}

		cfg := server.Config{
			Host:        config.AppHost(),
			Port:        config.AppPort(),
			CORSEnabled: config.CORSEnabled(),
		}
		if cmd.Flags().Changed("host") {
			cfg.Host = serveHost
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		if cmd.Flags().Changed("cors") {
			cfg.CORSEnabled = serveCORS
		}

		return server.New(demo.NewApp(version), cfg).Run()
	},
}

// setu routes: print the demo application's route table.
var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := router.New()
		demo.NewApp(version).Mount(r)

		infos := r.Routes()
		if len(infos) == 0 {
			cmd.Println("No named routes registered.")
			return nil
		}

		sort.Slice(infos, func(i, j int) bool {
			if infos[i].Path != infos[j].Path {
				return infos[i].Path < infos[j].Path
			}
			return infos[i].Method < infos[j].Method
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}

func init() {
	def := server.DefaultConfig()
	serveCmd.Flags().StringVar(&serveHost, "host", def.Host, "bind host")
	serveCmd.Flags().Uint16Var(&servePort, "port", def.Port, "bind port")
	serveCmd.Flags().BoolVar(&serveCORS, "cors", def.CORSEnabled, "attach the permissive CORS layer")
}
