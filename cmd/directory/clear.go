package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/peoplekit/directory/modules/directory/infrastructure/persistence"
	"github.com/peoplekit/directory/pkg/configuration"
	"github.com/peoplekit/directory/pkg/kv"
	"github.com/peoplekit/directory/pkg/logging"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every employee record",
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
		if err := repo.Clear(cmd.Context()); err != nil {
			return err
		}
		logger.Info("cleared employee dataset")
		return nil
	},
}
