package resources

import (
	"net/http"

	"github.com/itsatony/temperature-detector/internal/errors"
	"github.com/swaggo/swag"
	nuts "github.com/vaudience/go-nuts"

	_ "github.com/itsatony/temperature-detector/docs"
)

// @Summary Health check
// @Tags ops
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": nuts.GetVersion(),
	})
}

// Docs serves the registered swagger document
func Docs(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		respondWithError(w, errors.NewInternalError("failed to render api docs", err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc))
}
