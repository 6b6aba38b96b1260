package cli

import (
	"os"

	"github.com/yaptide/materials/config"
	"github.com/yaptide/materials/log"
	"github.com/yaptide/materials/pkg/builder"
	"github.com/yaptide/materials/pkg/element"
	"github.com/yaptide/materials/pkg/manager"
	"github.com/yaptide/materials/pkg/nist"
)

// application holds the single Manager shared by all commands.
type application struct {
	conf    *config.Config
	manager *manager.Manager
	catalog *nist.Catalog
}

func newApplication(conf *config.Config) (*application, error) {
	provider, err := element.NewNistProvider()
	if err != nil {
		return nil, err
	}
	library, err := builder.NewLibrary(provider)
	if err != nil {
		return nil, err
	}
	if conf.LibraryPath != "" {
		if err := loadLibraryFile(library, conf.LibraryPath); err != nil {
			return nil, err
		}
	}
	catalog, err := nist.NewCatalog(provider)
	if err != nil {
		return nil, err
	}
	return &application{
		conf:    conf,
		manager: manager.New(library, catalog),
		catalog: catalog,
	}, nil
}

func loadLibraryFile(b *builder.Builder, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Warning("closing %s: %s", path, closeErr)
		}
	}()
	log.Info("loading materials from %s", path)
	return b.LoadDeclarations(file)
}
