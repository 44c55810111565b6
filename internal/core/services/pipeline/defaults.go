package pipeline

import (
	"github.com/jrzabott/Base64Tool/pkg/logger"
)

func prepareDefaults(svc *Service) {
	if svc.log == nil {
		svc.log = logger.New("pipeline")
	}
}
