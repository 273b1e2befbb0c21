package model

type ContextKey string

const (
	LearnerIDKey ContextKey = "learnerID"
)
