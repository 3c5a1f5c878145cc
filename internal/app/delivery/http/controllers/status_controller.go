package controllers

import (
	"net/http"
	"sync"

	"doorspital-service/internal/app/services/shared/loader"
	"doorspital-service/internal/pkg/constvars"
	"doorspital-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type StatusController struct {
	Log     *zap.Logger
	Tracker *loader.Tracker
	Version string
}

var (
	statusControllerInstance *StatusController
	onceStatusController     sync.Once
)

func NewStatusController(logger *zap.Logger, tracker *loader.Tracker, version string) *StatusController {
	onceStatusController.Do(func() {
		statusControllerInstance = &StatusController{
			Log:     logger,
			Tracker: tracker,
			Version: version,
		}
	})
	return statusControllerInstance
}

func (ctrl *StatusController) Status(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.StatusFetchSuccess, map[string]interface{}{
		"version":       ctrl.Version,
		"busy":          ctrl.Tracker.Visible(),
		"inflightCalls": ctrl.Tracker.Count(),
	})
}
