package main

import (
	"encoding/json"
	"io"
	"net/http"
	"os"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"potentialflow/calculator"
	"potentialflow/model"
	"potentialflow/server"
)

var (
	cfgPath string
	cfg     server.Config

	evalOp string
	evalIn string
)

var rootCmd = &cobra.Command{
	Use:   "potentialflow",
	Short: "Stream function and velocity of 2D elementary potential flows.",
	Long: `potentialflow evaluates the stream function and velocity field induced by a
single source, sink or doublet over a meshgrid. Use 'serve' to expose the
evaluator over a websocket, or 'eval' to evaluate one JSON request file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(*cobra.Command, []string) error {
		cfg = server.LoadConfig(cfgPath)
		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return errors.Wrap(err, "log level")
		}
		log.SetLevel(level)
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve evaluation requests on the /ws websocket endpoint.",
	RunE: func(cmd *cobra.Command, args []string) error {
		upgrader := websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		}
		return server.NewServer(cfg, upgrader).Serve()
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate one JSON request and print the result.",
	Long: `eval reads a request of the form
  {"kind": "source", "strength": 6.28, "x0": 0, "y0": 0, "x": [[...]], "y": [[...]]}
from --in ('-' for stdin) and writes the computed field as JSON to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := readRequest(evalIn)
		if err != nil {
			return err
		}
		resp, err := calculator.Evaluate(evalOp, req)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(&resp)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "conf/config.ini", "path to the ini configuration file")
	evalCmd.Flags().StringVar(&evalOp, "op", calculator.OpStreamFunction, "stream_function or velocity")
	evalCmd.Flags().StringVar(&evalIn, "in", "-", "request file, '-' for stdin")
	rootCmd.AddCommand(serveCmd, evalCmd)
}

func readRequest(path string) (model.FlowReq, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return model.FlowReq{}, errors.Wrap(err, "open request")
		}
		defer f.Close()
		r = f
	}
	var req model.FlowReq
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return model.FlowReq{}, errors.Wrap(err, "decode request")
	}
	return req, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
