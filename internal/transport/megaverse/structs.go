package megaverse

import "github.com/rocketscienceinc/megaverse-builder/internal/entity"

const (
	polyanetsEndpoint = "polyanets"
	soloonsEndpoint   = "soloons"
	comethsEndpoint   = "comeths"
)

type createRequest struct {
	CandidateID string `json:"candidateId"`
	Row         int    `json:"row"`
	Column      int    `json:"column"`
	Color       string `json:"color,omitempty"`
	Direction   string `json:"direction,omitempty"`
}

type goalResponse struct {
	Goal entity.Grid `json:"goal"`
}
