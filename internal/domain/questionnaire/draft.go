package questionnaire

import "time"

// Draft is a wizard session persisted between requests.
type Draft struct {
	ID        string    `json:"id"`
	State     Snapshot  `json:"state"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Wizard rebuilds the engine from the stored snapshot.
func (d Draft) Wizard(opts ...Option) *Wizard {
	return Restore(d.State, opts...)
}
