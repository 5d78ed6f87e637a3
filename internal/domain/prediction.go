package domain

// Prediction is the display value shown after a successful draw
type Prediction struct {
	Coefficient float64 `json:"coefficient"`
	Range       string  `json:"range"`
}

// PredictionGenerator produces display predictions. Implementations own their
// state; nothing about them is persisted.
//
//go:generate mockgen -source=prediction.go -destination=mocks/prediction_mock.go -package=mocks
type PredictionGenerator interface {
	Next(chance int) Prediction
}
