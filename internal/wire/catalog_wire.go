package wire

import (
	"padel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(
	r chi.Router,
	equipmentHandler *adaptor.EquipmentHandler,
	packageHandler *adaptor.PackageHandler,
) {
	r.Route("/api/equipment", func(r chi.Router) {
		r.Get("/", equipmentHandler.ListEquipment)
		r.Post("/", equipmentHandler.CreateEquipment)
		r.Put("/{id}", equipmentHandler.UpdateEquipment)
		r.Delete("/{id}", equipmentHandler.DeleteEquipment)
	})

	r.Route("/api/packages", func(r chi.Router) {
		r.Get("/", packageHandler.ListPackages)
		r.Post("/", packageHandler.CreatePackage)
		r.Put("/{id}", packageHandler.UpdatePackage)
		r.Delete("/{id}", packageHandler.DeletePackage)
	})
}
