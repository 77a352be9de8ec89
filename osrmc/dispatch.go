package osrmc

import (
	"go.uber.org/zap"

	"github.com/moviro-hub/libosrmc/osrm"
)

// translateStatus converts a non-OK engine status into an error. The engine
// is expected to have left a structured error document in the result union;
// when it has not, the caller gets the service fallback record instead.
func translateStatus(service string, status osrm.Status, result *osrm.Result) error {
	if status == osrm.StatusOK {
		return nil
	}
	if doc, ok := result.Document(); ok {
		err := errorFromDocument(doc)
		Logger().Debug("engine returned error document",
			zap.String("service", service),
			zap.String("code", string(err.Code)))
		return err
	}
	Logger().Debug("engine error carries no document", zap.String("service", service))
	return serviceError(service)
}

// dispatch runs one document-service request: it seeds the result union with
// an empty document, invokes the engine and translates a failed status. The
// returned result is owned by the response holder the caller builds from it.
func (o *OSRM) dispatch(service string, call func(*osrm.Result) osrm.Status) (*osrm.Result, error) {
	result := osrm.NewDocumentResult()
	if err := translateStatus(service, call(result), result); err != nil {
		return nil, err
	}
	return result, nil
}
