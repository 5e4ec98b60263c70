package model

type ContextKey string

const (
	OwnerIDKey ContextKey = "ownerID"
)
