package app

import (
	"net/http"
	"os"

	"github.com/chronoslabs/chronos/internal/adapters/assistant/openaiassist"
	"github.com/chronoslabs/chronos/internal/adapters/httpserver"
	"github.com/chronoslabs/chronos/internal/adapters/repo/blobrepo"
	"github.com/chronoslabs/chronos/internal/domain"
	"github.com/chronoslabs/chronos/internal/usecase"
)

type App struct {
	Store     domain.BlobStore
	CatalogUC *usecase.CatalogUC
	OrderUC   *usecase.OrderUC
	Assistant *openaiassist.Assistant
}

// New wires repositories and use cases over the chosen storage engine. The engine
// itself is the caller's concern (see cmd/chronos).
func New(store domain.BlobStore) *App {
	catalogRepo := blobrepo.NewCatalogRepo(store)
	orderRepo := blobrepo.NewOrderRepo(store)

	a := &App{Store: store}
	a.CatalogUC = &usecase.CatalogUC{Catalog: catalogRepo}
	a.OrderUC = &usecase.OrderUC{Orders: orderRepo, Catalog: catalogRepo}
	a.Assistant = openaiassist.New(os.Getenv("OPENAI_API_KEY"), catalogRepo)
	return a
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.CatalogUC, a.OrderUC, a.Assistant.Reply)
}
