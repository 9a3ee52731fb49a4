package models

// Critic is a derived aggregate: an author email paired with the number of
// comments written from that address. Computed on demand, never persisted.
type Critic struct {
	Email string `json:"email" bson:"_id"`
	Count int64  `json:"count" bson:"count"`
}
