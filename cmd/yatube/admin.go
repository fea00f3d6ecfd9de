package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/d60-Lab/yatube/internal/app"
	"github.com/d60-Lab/yatube/internal/cache"
	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/internal/service"
	"github.com/d60-Lab/yatube/internal/storage"
	"github.com/d60-Lab/yatube/pkg/database"
	"github.com/d60-Lab/yatube/pkg/logger"
)

// withServices 为管理命令准备服务
func withServices(run func(cmd *cobra.Command, args []string, svc *app.Services) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer logger.Sync()
		defer func() { _ = database.Close(db) }()
		if err := model.AutoMigrate(db); err != nil {
			return err
		}
		pages, closeCache := cache.New(cfg.Redis)
		defer func() { _ = closeCache() }()
		svc := app.NewServices(db, pages, storage.NewLocalStorage(cfg.Media.Root, cfg.Media.URLPrefix))
		return run(cmd, args, svc)
	}
}

func groupCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "group", Short: "Manage groups"}

	create := &cobra.Command{
		Use:   "create <slug> <title>",
		Short: "Create a group",
		Args:  cobra.ExactArgs(2),
		RunE: withServices(func(cmd *cobra.Command, args []string, svc *app.Services) error {
			description, _ := cmd.Flags().GetString("description")
			g, err := svc.Groups.Create(cmd.Context(), args[1], args[0], description)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created group %d %q (/group/%s/)\n", g.ID, g.Title, g.Slug)
			return nil
		}),
	}
	create.Flags().String("description", "", "group description")

	list := &cobra.Command{
		Use:   "list",
		Short: "List groups",
		RunE: withServices(func(cmd *cobra.Command, args []string, svc *app.Services) error {
			groups, err := svc.Groups.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, g := range groups {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", g.ID, g.Slug, g.Title)
			}
			return nil
		}),
	}

	cmd.AddCommand(create, list)
	return cmd
}

func userCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "user", Short: "Manage users"}
	create := &cobra.Command{
		Use:   "create <username> <password>",
		Short: "Create a user",
		Args:  cobra.ExactArgs(2),
		RunE: withServices(func(cmd *cobra.Command, args []string, svc *app.Services) error {
			email, _ := cmd.Flags().GetString("email")
			u, err := svc.Users.Register(cmd.Context(), service.RegisterInput{
				Username: args[0],
				Email:    email,
				Password: args[1],
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user %d %s\n", u.ID, u.Username)
			return nil
		}),
	}
	create.Flags().String("email", "", "user email")
	cmd.AddCommand(create)
	return cmd
}
