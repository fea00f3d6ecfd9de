// @title Yatube
// @version 1.0
// @description Блог-платформа: посты, группы, комментарии и подписки на авторов.
// @BasePath /
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "yatube",
		Short:         "Yatube blog server and admin tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(
		serveCmd(),
		migrateCmd(),
		groupCmd(),
		userCmd(),
	)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
