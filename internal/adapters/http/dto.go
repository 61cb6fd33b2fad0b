package http

import (
	"time"

	"github.com/randomtoy/ideawheel/internal/domain"
)

// IdeaRequest is the body of POST /v1/ideas and PATCH /v1/ideas/:id.
type IdeaRequest struct {
	Title string `json:"title"`
	Note  string `json:"note"`
}

// OrderRequest is the body of PUT /v1/ideas/order.
type OrderRequest struct {
	IDs []string `json:"ids"`
}

type IdeaResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Note      string    `json:"note"`
	Archived  bool      `json:"archived"`
	Favorite  bool      `json:"favorite"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

type IdeaListResponse struct {
	Ideas []IdeaResponse `json:"ideas"`
}

type SectionResponse struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	Index      int     `json:"index"`
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
	Color      string  `json:"color"`
}

// WheelResponse is the JSON shape returned by GET /v1/wheel and
// POST /v1/wheel/spin.
type WheelResponse struct {
	Phase         domain.Phase      `json:"phase"`
	RotationAngle float64           `json:"rotation_angle"`
	DisplayAngle  float64           `json:"display_angle"`
	PointerWobble float64           `json:"pointer_wobble"`
	SpinCount     int               `json:"spin_count"`
	Selected      *domain.Item      `json:"selected,omitempty"`
	Sections      []SectionResponse `json:"sections"`
}

type PickResponse struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	Rotation float64   `json:"rotation"`
	PickedAt time.Time `json:"picked_at"`
}

type HistoryResponse struct {
	Picks []PickResponse `json:"picks"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func toIdea(i domain.Idea) IdeaResponse {
	return IdeaResponse{
		ID:        i.ID,
		Title:     i.Title,
		Note:      i.Note,
		Archived:  i.Archived,
		Favorite:  i.Favorite,
		Position:  i.Position,
		CreatedAt: i.CreatedAt,
	}
}

func toWheel(st domain.SpinState, sections []domain.Section) WheelResponse {
	out := make([]SectionResponse, len(sections))
	for i, s := range sections {
		out[i] = SectionResponse{
			ID:         s.Item.ID,
			Label:      s.Item.Label,
			Index:      s.Index,
			StartAngle: s.StartAngle,
			EndAngle:   s.EndAngle,
			Color:      s.Color,
		}
	}
	return WheelResponse{
		Phase:         st.Phase,
		RotationAngle: st.RotationAngle,
		DisplayAngle:  st.DisplayAngle,
		PointerWobble: st.PointerWobble,
		SpinCount:     st.SpinCount,
		Selected:      st.Selected,
		Sections:      out,
	}
}

func toHistory(picks []domain.Pick) HistoryResponse {
	out := make([]PickResponse, len(picks))
	for i, p := range picks {
		out[i] = PickResponse{
			ID:       p.Item.ID,
			Label:    p.Item.Label,
			Rotation: p.Rotation,
			PickedAt: p.PickedAt,
		}
	}
	return HistoryResponse{Picks: out}
}
