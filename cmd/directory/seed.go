package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/peoplekit/directory/modules/directory/infrastructure/persistence"
	"github.com/peoplekit/directory/pkg/configuration"
	"github.com/peoplekit/directory/pkg/kv"
	"github.com/peoplekit/directory/pkg/logging"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the default employee dataset if the store is empty",
	RunE: func(cmd *cobra.Command, _ []string) error {
		conf := configuration.Use()
		defer conf.Unload()
		logger := logging.ConsoleLogger(logrus.InfoLevel)

		store, err := kv.NewSQLiteStore(conf.DataPath)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		// The repository seeds on first load when the key is absent.
		repo, err := persistence.NewEmployeeRepository(cmd.Context(), store, logger)
		if err != nil {
			return err
		}
		count, err := repo.Count(cmd.Context())
		if err != nil {
			return err
		}
		logger.WithField("total", count).Info("employee dataset ready")
		return nil
	},
}
