package main

import (
	"github.com/peoplekit/directory/modules"
	"github.com/peoplekit/directory/pkg/application"
	"github.com/peoplekit/directory/pkg/configuration"
	"github.com/peoplekit/directory/pkg/eventbus"
	"github.com/peoplekit/directory/pkg/kv"
)

// buildApp assembles the application over the configured blob store and
// registers every built-in module.
func buildApp(conf *configuration.Configuration) (application.Application, kv.Store, error) {
	store, err := kv.NewSQLiteStore(conf.DataPath)
	if err != nil {
		return nil, nil, err
	}
	app := application.New(&application.ApplicationOptions{
		Store:    store,
		EventBus: eventbus.NewEventPublisher(conf.Logger()),
		Logger:   conf.Logger(),
		Bundle:   application.LoadBundle(),
	})
	if err := modules.Load(app); err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	return app, store, nil
}
