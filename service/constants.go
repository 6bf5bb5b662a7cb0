package service

const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 100 // upper bound for a single history page

	cacheKeyPrefix = "calc:"
)
