package v1

import "github.com/koinochrista/backend/internal/models"

// BuildingInfoEditable represents all values of the building info
// that can be set by API consumers.
type BuildingInfoEditable struct {
	Address   string `json:"address" example:"Example Street 32, Athens"`
	Manager   string `json:"manager" example:"K. Ioannou"`
	Processor string `json:"processor" example:"G. Nikolaou"`
	Note      string `json:"note"`
}

// model returns the database resource for the API representation
func (editable BuildingInfoEditable) model() models.BuildingInfo {
	return models.BuildingInfo{
		Address:   editable.Address,
		Manager:   editable.Manager,
		Processor: editable.Processor,
		Note:      editable.Note,
	}
}

// BuildingInfo is the API representation of the building info
type BuildingInfo struct {
	models.Model
	BuildingInfoEditable
}

func newBuildingInfo(model models.BuildingInfo) BuildingInfo {
	return BuildingInfo{
		Model: model.Model,
		BuildingInfoEditable: BuildingInfoEditable{
			Address:   model.Address,
			Manager:   model.Manager,
			Processor: model.Processor,
			Note:      model.Note,
		},
	}
}

type BuildingInfoResponse struct {
	Data  *BuildingInfo `json:"data"`
	Error *string       `json:"error" example:"an error occurred on the server during your request"`
}
