package directory

import (
	"context"
	"embed"

	"github.com/peoplekit/directory/modules/directory/infrastructure/persistence"
	"github.com/peoplekit/directory/modules/directory/presentation/controllers"
	"github.com/peoplekit/directory/modules/directory/services"
	"github.com/peoplekit/directory/pkg/application"
	"github.com/peoplekit/directory/pkg/metrics"
)

//go:embed presentation/locales/*.toml
var LocaleFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct {
}

func (m *Module) Register(app application.Application) error {
	app.RegisterLocaleFiles(&LocaleFiles)

	employeeRepo, err := persistence.NewEmployeeRepository(context.Background(), app.KV(), app.Logger())
	if err != nil {
		return err
	}
	app.RegisterServices(
		services.NewEmployeeService(employeeRepo, app.EventPublisher()),
		services.NewSettingsService(persistence.NewSettingsRepository(app.KV())),
	)
	app.RegisterControllers(
		controllers.NewEmployeeController(app),
		controllers.NewHealthController(),
	)
	metrics.RegisterDirectoryObservers(app.EventPublisher())
	return nil
}

func (m *Module) Name() string {
	return "directory"
}
