package dto

// PlanTripRequest - запрос на расчет поездки
type PlanTripRequest struct {
	From    string `json:"from" validate:"required,min=1,max=256"`
	To      string `json:"to" validate:"required,min=1,max=256"`
	Vehicle string `json:"vehicle,omitempty" validate:"omitempty,max=32"`
	Units   string `json:"units,omitempty" validate:"omitempty,max=32"`
}

// HistoryListRequest - запрос на чтение архива истории
type HistoryListRequest struct {
	Limit int      `query:"limit" validate:"omitempty,min=1,max=500"`
	Modes []string `query:"modes" validate:"omitempty,dive,oneof=ground air"`
}
