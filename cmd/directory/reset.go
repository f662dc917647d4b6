package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/peoplekit/directory/modules/directory/infrastructure/persistence"
	"github.com/peoplekit/directory/pkg/configuration"
	"github.com/peoplekit/directory/pkg/kv"
	"github.com/peoplekit/directory/pkg/logging"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard all records and restore the default employee dataset",
	RunE: func(cmd *cobra.Command, _ []string) error {
		conf := configuration.Use()
		defer conf.Unload()
		logger := logging.ConsoleLogger(logrus.InfoLevel)

		store, err := kv.NewSQLiteStore(conf.DataPath)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		repo, err := persistence.NewEmployeeRepository(cmd.Context(), store, logger)
		if err != nil {
			return err
		}
		restored, err := repo.ResetToDefault(cmd.Context())
		if err != nil {
			return err
		}
		logger.WithField("total", len(restored)).Info("restored default employee dataset")
		return nil
	},
}
