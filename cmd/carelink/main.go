package main

import (
	"os"

	"github.com/spf13/cobra"

	"carelink-go/pkg/logger"
)

func main() {
	log := logger.NewFromEnv()

	root := &cobra.Command{
		Use:           "carelink",
		Short:         "CareLink API: senior and family caregiving connections",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(log), newMigrateCmd(log))

	if err := root.Execute(); err != nil {
		log.Critical("app: command failed", "err", err)
		os.Exit(1)
	}
}
