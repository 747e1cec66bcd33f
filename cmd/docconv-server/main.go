// Copyright 2026 Conductor OSS
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	docconv "github.com/nicholasgasior/docconv-go"
	"github.com/nicholasgasior/docconv-go/internal/server"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "docconv-server",
	Short: "Document conversion tools over MCP",
	Long: `docconv-server exposes document format conversion (txt, md, html,
docx, pdf, rtf) as MCP tools over stdio, streamable HTTP, or SSE.`,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().String("host", "localhost", "Host to bind to")
	rootCmd.Flags().Int("port", 8124, "Port to listen on")
	rootCmd.Flags().String("transport", "http", "Transport: http, sse, or stdio")
	rootCmd.Flags().Bool("check-deps", false, "Print backend availability and exit")

	viper.SetEnvPrefix("DOCCONV")
	viper.AutomaticEnv()
	for _, flag := range []string{"host", "port", "transport"} {
		if err := viper.BindPFlag(flag, rootCmd.Flags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func run(cmd *cobra.Command, args []string) error {
	engine := docconv.New()

	if checkDeps, _ := cmd.Flags().GetBool("check-deps"); checkDeps {
		fmt.Print(engine.FormatReport())
		return nil
	}

	s := server.New(engine, version)
	transport := viper.GetString("transport")

	// stdout carries protocol frames on stdio; logging stays on stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	switch transport {
	case "stdio":
		log.Info("starting document converter", "transport", "stdio", "version", version)
		return server.ServeStdio(s)
	case "sse", "http":
		addr := fmt.Sprintf("%s:%d", viper.GetString("host"), viper.GetInt("port"))
		log.Info("starting document converter", "transport", transport, "addr", addr, "version", version)
		for name, available := range engine.Capabilities() {
			log.Info("backend", "name", name, "available", available)
		}
		if transport == "sse" {
			return server.ServeSSE(s, addr)
		}
		return server.ServeHTTP(s, addr)
	}
	return fmt.Errorf("unknown transport %q (expected http, sse, or stdio)", transport)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
