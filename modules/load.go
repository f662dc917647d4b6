package modules

import (
	"github.com/peoplekit/directory/modules/directory"
	"github.com/peoplekit/directory/pkg/application"
)

var BuiltInModules = []application.Module{
	directory.NewModule(),
}

func Load(app application.Application, externalModules ...application.Module) error {
	for _, module := range append(BuiltInModules, externalModules...) {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
