package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hajj-guide/cmd/bootstrap"
	"hajj-guide/internal/domain/entity"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

func main() {
	var (
		configPath string
		migrate    bool
		seed       entity.Admin
	)

	flag.StringVar(&configPath, "config", ".env", "path to the .env configuration file")
	flag.BoolVar(&migrate, "migrate", false, "create or update the schema")
	flag.Int64Var(&seed.ID, "seed-admin-id", 0, "id of the admin to create (0 = next free id)")
	flag.StringVar(&seed.Name, "seed-admin-name", "", "name of the admin to create; empty skips seeding")
	flag.StringVar(&seed.Email, "seed-admin-email", "", "email of the admin to create")
	flag.StringVar(&seed.Phone, "seed-admin-phone", "", "phone of the admin to create")
	flag.StringVar(&seed.Password, "seed-admin-password", "", "password of the admin to create")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Initialize application with all dependencies
	app, err := bootstrap.New(ctx, configPath)
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Close()

	if err := run(ctx, app, migrate, seed); err != nil {
		app.Log.Errorf("%v", err)
		app.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, app *bootstrap.App, migrate bool, seed entity.Admin) error {
	if migrate {
		if err := app.Store.Migrate(ctx); err != nil {
			return err
		}
	}

	if seed.Name != "" {
		if _, err := app.Gateways.Admins.Create(ctx, &seed); err != nil {
			return err
		}
		app.Log.Infof("Seeded admin %d", seed.ID)
	}

	if !migrate && seed.Name == "" {
		// Without maintenance work, just check that the store answers.
		if _, err := app.Gateways.Pilgrims.GetAll(ctx); err != nil {
			return err
		}
		app.Log.Info("Store reachable")
	}
	return nil
}
